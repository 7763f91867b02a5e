package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database and returns the handle.
// SQLite ships with foreign key enforcement off, so it is enabled per
// connection via the DSN pragma; the membership cascade depends on it.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
