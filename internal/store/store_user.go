package store

import (
	"context"
	"errors"

	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"

	"gorm.io/gorm"
)

func (s *gormStore) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, normalize(err)
	}
	return &user, nil
}

func (s *gormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, normalize(err)
	}
	return &user, nil
}

func (s *gormStore) CreateUser(ctx context.Context, user *model.User) error {
	return normalize(s.db.WithContext(ctx).Create(user).Error)
}

func (s *gormStore) UpdateUser(ctx context.Context, id uint, updates schema.UpdateUserInput) (*model.User, error) {
	m := updates.Updates()
	if len(m) > 0 {
		res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(m)
		if res.Error != nil {
			return nil, normalize(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return s.GetUser(ctx, id)
}

func (s *gormStore) TouchUserActivity(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("last_active_at", s.now()).Error
	return normalize(err)
}
