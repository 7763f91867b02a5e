package models

import "time"

// Membership represents the many-to-many relationship between users and groups.
// Existence of a row is the membership; there are no attributes beyond the key.
// User and Group are traversed through this table, never through object
// back-references on either side.
type Membership struct {
	UserID    string    `gorm:"type:varchar(36);primaryKey" json:"user_id"`
	GroupID   string    `gorm:"type:varchar(36);primaryKey" json:"group_id"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Group Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
}

// TableName keeps the join table name stable regardless of gorm pluralization.
func (Membership) TableName() string {
	return "user_groups"
}
