package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mikepea/entitled/pkg/entitled/models"
)

// DefaultGroup is one (name, description) pair seeded at startup.
type DefaultGroup struct {
	Name        string
	Description string
}

// DefaultGroups are created on every process start if not already present.
var DefaultGroups = []DefaultGroup{
	{Name: "SUPER ADMIN", Description: "Super administrators"},
	{Name: "ADMIN", Description: "Administrators"},
	{Name: "EDITOR", Description: "Editors"},
	{Name: "USER", Description: "Standard users"},
}

// ListGroups returns all groups ordered by name ascending.
func (s *Store) ListGroups() ([]models.Group, error) {
	var groups []models.Group
	if err := s.db.Order("name ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// GroupsForUser returns the groups the user belongs to, name ascending.
// Traversal goes through the join table; there is no back-reference to walk.
func (s *Store) GroupsForUser(userID string) ([]models.Group, error) {
	var groups []models.Group
	err := s.db.
		Joins("JOIN user_groups ON user_groups.group_id = groups.id").
		Where("user_groups.user_id = ?", userID).
		Order("groups.name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// AddMembership inserts the (user, group) membership row. Both the user and
// the group must exist; the membership itself is idempotent, so adding an
// existing one is a no-op rather than an error.
func (s *Store) AddMembership(userID, groupID string) error {
	if err := s.checkPairExists(userID, groupID); err != nil {
		return err
	}

	var existing models.Membership
	err := s.db.Where("user_id = ? AND group_id = ?", userID, groupID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	m := models.Membership{UserID: userID, GroupID: groupID}
	if err := s.db.Create(&m).Error; err != nil {
		// Concurrent add won the composite-key race; the end state is the same.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// RemoveMembership deletes the (user, group) membership row. Both the user
// and the group must exist, but the membership need not: removing an absent
// row silently succeeds.
func (s *Store) RemoveMembership(userID, groupID string) error {
	if err := s.checkPairExists(userID, groupID); err != nil {
		return err
	}
	return s.db.Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&models.Membership{}).Error
}

// SeedDefaultGroups inserts each default group unless a group with that name
// already exists. Idempotent; runs on every process start before serving.
func (s *Store) SeedDefaultGroups() error {
	for _, dg := range DefaultGroups {
		var existing models.Group
		err := s.db.Where("name = ?", dg.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		group := models.Group{Name: dg.Name, Description: dg.Description}
		if err := s.db.Create(&group).Error; err != nil {
			// Another instance seeded the same name first.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}
	}
	return nil
}

func (s *Store) checkPairExists(userID, groupID string) error {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	var group models.Group
	if err := s.db.Where("id = ?", groupID).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		return err
	}
	return nil
}
