package store

import (
	"context"
	"errors"

	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"

	"gorm.io/gorm"
)

func (s *gormStore) ListCompanyKpiMetrics(ctx context.Context, companyID uint) ([]model.KpiMetric, error) {
	var metrics []model.KpiMetric
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id asc").
		Find(&metrics).Error
	if err != nil {
		return nil, normalize(err)
	}
	return metrics, nil
}

func (s *gormStore) CreateKpiMetric(ctx context.Context, metric *model.KpiMetric) error {
	return normalize(s.db.WithContext(ctx).Create(metric).Error)
}

func (s *gormStore) UpdateKpiMetric(ctx context.Context, companyID, id uint, updates schema.UpdateKpiMetricInput) (*model.KpiMetric, error) {
	m := updates.Updates()
	if len(m) > 0 {
		res := s.db.WithContext(ctx).Model(&model.KpiMetric{}).
			Where("id = ? AND company_id = ?", id, companyID).
			Updates(m)
		if res.Error != nil {
			return nil, normalize(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	var metric model.KpiMetric
	err := s.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&metric).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, normalize(err)
	}
	return &metric, nil
}
