// Package store implements the repository layer: every operation runs
// against the database in a single synchronously-committed transaction and
// reports failures as typed errors the handlers map to wire responses.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// Typed outcomes handlers inspect explicitly.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrGroupNotFound  = errors.New("group not found")
	ErrUsernameExists = errors.New("username already exists")
)

// Store runs all entity operations against one database handle.
type Store struct {
	db *gorm.DB
}

// New creates a Store on the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
