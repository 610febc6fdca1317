package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CreateChartDataInput is the insert shape for one time-series
// observation. Date is the observation time, required.
type CreateChartDataInput struct {
	ChartType string            `json:"chart_type" validate:"required,max=50"`
	Label     string            `json:"label" validate:"required,max=100"`
	Value     float64           `json:"value"`
	Date      time.Time         `json:"date" validate:"required"`
	Metadata  datatypes.JSONMap `json:"metadata"`
}
