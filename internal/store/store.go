package store

import (
	"context"
	"time"

	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"

	"gorm.io/gorm"
)

// Storage is the single seam between the API and the persistence
// engine. Every tenant-scoped operation takes the company id resolved
// from the session; notification operations are scoped by user id.
//
// Reads and updates whose target does not exist return (nil, nil);
// deletes return (false, nil). Constraint and driver failures surface
// as *StorageError.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, id uint, updates schema.UpdateUserInput) (*model.User, error)
	TouchUserActivity(ctx context.Context, id uint) error

	// Companies
	GetCompany(ctx context.Context, id uint) (*model.Company, error)
	CreateCompany(ctx context.Context, company *model.Company) error
	UpdateCompany(ctx context.Context, id uint, updates schema.UpdateCompanyInput) (*model.Company, error)
	ListCompanyUsers(ctx context.Context, companyID uint) ([]model.User, error)

	// Integrations
	ListCompanyIntegrations(ctx context.Context, companyID uint) ([]model.Integration, error)
	GetIntegration(ctx context.Context, companyID, id uint) (*model.Integration, error)
	CreateIntegration(ctx context.Context, integration *model.Integration) error
	UpdateIntegration(ctx context.Context, companyID, id uint, updates schema.UpdateIntegrationInput) (*model.Integration, error)
	DeleteIntegration(ctx context.Context, companyID, id uint) (bool, error)

	// KPI metrics
	ListCompanyKpiMetrics(ctx context.Context, companyID uint) ([]model.KpiMetric, error)
	CreateKpiMetric(ctx context.Context, metric *model.KpiMetric) error
	UpdateKpiMetric(ctx context.Context, companyID, id uint, updates schema.UpdateKpiMetricInput) (*model.KpiMetric, error)

	// Chart data
	ListCompanyChartData(ctx context.Context, companyID uint, chartType string) ([]model.ChartDataPoint, error)
	CreateChartDataPoint(ctx context.Context, point *model.ChartDataPoint) error
	GetRevenueSeries(ctx context.Context, companyID uint, windowDays int) ([]model.ChartDataPoint, error)
	GetUserSeries(ctx context.Context, companyID uint) ([]model.ChartDataPoint, error)

	// AI recommendations
	ListCompanyRecommendations(ctx context.Context, companyID uint) ([]model.AiRecommendation, error)
	CreateRecommendation(ctx context.Context, rec *model.AiRecommendation) error
	UpdateRecommendation(ctx context.Context, companyID, id uint, updates schema.UpdateRecommendationInput) (*model.AiRecommendation, error)

	// Activities
	ListCompanyActivities(ctx context.Context, companyID uint, limit int) ([]model.Activity, error)
	CreateActivity(ctx context.Context, activity *model.Activity) error

	// Notifications
	ListUserNotifications(ctx context.Context, userID uint) ([]model.Notification, error)
	CreateNotification(ctx context.Context, notification *model.Notification) error
	MarkNotificationRead(ctx context.Context, userID, id uint) (bool, error)
	CountUnreadNotifications(ctx context.Context, userID uint) (int64, error)
}

// gormStore is the relational implementation of Storage. The *gorm.DB
// is handed in at startup; the store never reaches for a global.
type gormStore struct {
	db *gorm.DB

	// now is swappable in tests.
	now func() time.Time
}

// New returns a Storage backed by the given GORM connection.
func New(db *gorm.DB) Storage {
	return &gormStore{db: db, now: time.Now}
}
