package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aravind-ihub855/Mom-Automation/internal/model"

	"gorm.io/gorm"
)

// RosterService manages the team-member directory.
type RosterService struct {
	db *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{db: db}
}

// ListNames returns the roster in insertion order.
func (s *RosterService) ListNames(ctx context.Context) ([]string, error) {
	var members []model.Member
	if err := s.db.WithContext(ctx).Order("id").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names, nil
}

func (s *RosterService) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	err := s.db.WithContext(ctx).Create(&model.Member{Name: name}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: user already exists", ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

// Delete removes the member and every report they ever filed, atomically.
// Cached action items for affected dates are left in place.
func (s *RosterService) Delete(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("name = ?", name).Delete(&model.Member{})
		if res.Error != nil {
			return fmt.Errorf("delete member: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: user not found", ErrNotFound)
		}
		if err := tx.Where("member_name = ?", name).Delete(&model.Report{}).Error; err != nil {
			return fmt.Errorf("delete member reports: %w", err)
		}
		return nil
	})
}
