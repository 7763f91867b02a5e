package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mikepea/entitled/pkg/entitled/models"
)

// CreateUser inserts a user and, when groupIDs is non-empty, its group
// memberships in one transaction. Duplicate ids in groupIDs collapse to a
// single membership. Any unknown group id fails the whole operation with
// ErrGroupNotFound and writes nothing.
//
// The duplicate-username pre-check only provides the friendly error on the
// common path; the unique index on username is the actual guarantee, so a
// concurrent create slipping past the check still surfaces ErrUsernameExists.
func (s *Store) CreateUser(username, email, displayName string, groupIDs []string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		Username:    username,
		Email:       email,
		DisplayName: displayName,
		IsActive:    true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		ids := dedupe(groupIDs)
		if len(ids) > 0 {
			var count int64
			if err := tx.Model(&models.Group{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(ids)) {
				return ErrGroupNotFound
			}
		}

		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUsernameExists
			}
			return err
		}

		for _, id := range ids {
			m := models.Membership{UserID: user.ID, GroupID: id}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(user.ID)
}

// ListUsers returns one page of users ordered by username ascending, plus
// the total row count. page is zero-based; size is the page length.
func (s *Store) ListUsers(page, size int) ([]models.User, int64, error) {
	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := s.db.Order("username ASC").
		Offset(page * size).
		Limit(size).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// GetUser returns the user with the given id, or ErrUserNotFound.
func (s *Store) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUserActive sets is_active and refreshes updated_at.
func (s *Store) UpdateUserActive(id string, active bool) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user row and all of its membership rows in one
// transaction. Returns ErrUserNotFound when no such user exists.
func (s *Store) DeleteUser(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
