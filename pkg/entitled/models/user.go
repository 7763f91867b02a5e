package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account managed by the service.
// Deletes are hard deletes: a removed username must be reusable, and the
// unique index on username would otherwise keep matching soft-deleted rows.
type User struct {
	ID          string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"not null" json:"email"`
	DisplayName string    `gorm:"not null" json:"display_name"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a random ID when none was provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
