package store

import (
	"context"
	"errors"

	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"

	"gorm.io/gorm"
)

func (s *gormStore) ListCompanyIntegrations(ctx context.Context, companyID uint) ([]model.Integration, error) {
	var integrations []model.Integration
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&integrations).Error
	if err != nil {
		return nil, normalize(err)
	}
	return integrations, nil
}

func (s *gormStore) GetIntegration(ctx context.Context, companyID, id uint) (*model.Integration, error) {
	var integration model.Integration
	err := s.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&integration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, normalize(err)
	}
	return &integration, nil
}

func (s *gormStore) CreateIntegration(ctx context.Context, integration *model.Integration) error {
	return normalize(s.db.WithContext(ctx).Create(integration).Error)
}

func (s *gormStore) UpdateIntegration(ctx context.Context, companyID, id uint, updates schema.UpdateIntegrationInput) (*model.Integration, error) {
	m := updates.Updates()
	if len(m) > 0 {
		res := s.db.WithContext(ctx).Model(&model.Integration{}).
			Where("id = ? AND company_id = ?", id, companyID).
			Updates(m)
		if res.Error != nil {
			return nil, normalize(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return s.GetIntegration(ctx, companyID, id)
}

func (s *gormStore) DeleteIntegration(ctx context.Context, companyID, id uint) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&model.Integration{})
	if res.Error != nil {
		return false, normalize(res.Error)
	}
	return res.RowsAffected > 0, nil
}
