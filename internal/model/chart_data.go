package model

import (
	"time"

	"gorm.io/datatypes"
)

// Chart type tags used by the dashboard charts.
const (
	ChartTypeRevenue = "revenue"
	ChartTypeUsers   = "users"
)

// ChartDataPoint is one observation in a company's time series.
// Rows are append-only; Date is the observation time, not the insert time.
type ChartDataPoint struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	CompanyID uint              `json:"company_id" gorm:"index;not null"`
	ChartType string            `json:"chart_type" gorm:"type:varchar(50);index;not null"`
	Label     string            `json:"label" gorm:"type:varchar(100);not null"`
	Value     float64           `json:"value" gorm:"not null"`
	Date      time.Time         `json:"date" gorm:"index;not null"`
	Metadata  datatypes.JSONMap `json:"metadata" gorm:"type:jsonb"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
