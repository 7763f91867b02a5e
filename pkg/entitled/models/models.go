package models

import "gorm.io/gorm"

// AllModels returns all models for migration
// Note: User and Group must be migrated before Membership for its foreign keys
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Group{},
		&Membership{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
