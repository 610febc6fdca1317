package store

import (
	"context"
	"errors"

	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"

	"gorm.io/gorm"
)

func (s *gormStore) GetCompany(ctx context.Context, id uint) (*model.Company, error) {
	var company model.Company
	err := s.db.WithContext(ctx).First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, normalize(err)
	}
	return &company, nil
}

func (s *gormStore) CreateCompany(ctx context.Context, company *model.Company) error {
	return normalize(s.db.WithContext(ctx).Create(company).Error)
}

func (s *gormStore) UpdateCompany(ctx context.Context, id uint, updates schema.UpdateCompanyInput) (*model.Company, error) {
	m := updates.Updates()
	if len(m) > 0 {
		res := s.db.WithContext(ctx).Model(&model.Company{}).Where("id = ?", id).Updates(m)
		if res.Error != nil {
			return nil, normalize(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return s.GetCompany(ctx, id)
}

func (s *gormStore) ListCompanyUsers(ctx context.Context, companyID uint) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&users).Error
	if err != nil {
		return nil, normalize(err)
	}
	return users, nil
}
