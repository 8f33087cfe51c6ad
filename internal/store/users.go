package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

func (s *gormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (s *gormStore) CreateUser(ctx context.Context, user *model.User) error {
	s.ensureID(&user.ID)
	if user.Role == "" {
		user.Role = model.RoleTechnician
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
