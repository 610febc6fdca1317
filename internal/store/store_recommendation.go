package store

import (
	"context"
	"errors"

	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"

	"gorm.io/gorm"
)

func (s *gormStore) ListCompanyRecommendations(ctx context.Context, companyID uint) ([]model.AiRecommendation, error) {
	var recs []model.AiRecommendation
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("confidence desc, created_at desc").
		Find(&recs).Error
	if err != nil {
		return nil, normalize(err)
	}
	return recs, nil
}

func (s *gormStore) CreateRecommendation(ctx context.Context, rec *model.AiRecommendation) error {
	return normalize(s.db.WithContext(ctx).Create(rec).Error)
}

func (s *gormStore) UpdateRecommendation(ctx context.Context, companyID, id uint, updates schema.UpdateRecommendationInput) (*model.AiRecommendation, error) {
	var rec model.AiRecommendation
	err := s.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, normalize(err)
	}

	m := updates.Updates()
	// implemented_at is stamped in the same write as the flag flip, and
	// only the first time the recommendation is implemented.
	if updates.IsImplemented != nil && *updates.IsImplemented && rec.ImplementedAt == nil {
		m["implemented_at"] = s.now()
	}
	if len(m) == 0 {
		return &rec, nil
	}

	res := s.db.WithContext(ctx).Model(&model.AiRecommendation{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Updates(m)
	if res.Error != nil {
		return nil, normalize(res.Error)
	}

	err = s.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&rec).Error
	if err != nil {
		return nil, normalize(err)
	}
	return &rec, nil
}
