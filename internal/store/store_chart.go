package store

import (
	"context"

	"dashboard-service/internal/model"
)

func (s *gormStore) ListCompanyChartData(ctx context.Context, companyID uint, chartType string) ([]model.ChartDataPoint, error) {
	query := s.db.WithContext(ctx).Where("company_id = ?", companyID)
	if chartType != "" {
		query = query.Where("chart_type = ?", chartType)
	}
	var points []model.ChartDataPoint
	err := query.Order("date asc").Find(&points).Error
	if err != nil {
		return nil, normalize(err)
	}
	return points, nil
}

func (s *gormStore) CreateChartDataPoint(ctx context.Context, point *model.ChartDataPoint) error {
	return normalize(s.db.WithContext(ctx).Create(point).Error)
}

func (s *gormStore) GetRevenueSeries(ctx context.Context, companyID uint, windowDays int) ([]model.ChartDataPoint, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	cutoff := s.now().AddDate(0, 0, -windowDays)
	var points []model.ChartDataPoint
	err := s.db.WithContext(ctx).
		Where("company_id = ? AND chart_type = ? AND date >= ?", companyID, model.ChartTypeRevenue, cutoff).
		Order("date asc").
		Find(&points).Error
	if err != nil {
		return nil, normalize(err)
	}
	return points, nil
}

func (s *gormStore) GetUserSeries(ctx context.Context, companyID uint) ([]model.ChartDataPoint, error) {
	var points []model.ChartDataPoint
	err := s.db.WithContext(ctx).
		Where("company_id = ? AND chart_type = ?", companyID, model.ChartTypeUsers).
		Order("date asc").
		Find(&points).Error
	if err != nil {
		return nil, normalize(err)
	}
	return points, nil
}
