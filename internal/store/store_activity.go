package store

import (
	"context"

	"dashboard-service/internal/model"
)

const defaultActivityLimit = 10

func (s *gormStore) ListCompanyActivities(ctx context.Context, companyID uint, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	var activities []model.Activity
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, normalize(err)
	}
	return activities, nil
}

func (s *gormStore) CreateActivity(ctx context.Context, activity *model.Activity) error {
	return normalize(s.db.WithContext(ctx).Create(activity).Error)
}
