package model

import "time"

// KpiMetric represents a single KPI card shown on the dashboard.
// Value fields are display strings ("$24.5k", "+12.3%"), formatted upstream.
type KpiMetric struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	CompanyID        uint      `json:"company_id" gorm:"index;not null"`
	Name             string    `json:"name" gorm:"type:varchar(100);not null"`
	Value            string    `json:"value" gorm:"type:varchar(50);not null"`
	PreviousValue    string    `json:"previous_value" gorm:"type:varchar(50)"`
	ChangePercentage string    `json:"change_percentage" gorm:"type:varchar(20)"`
	Period           string    `json:"period" gorm:"type:varchar(50);not null"`
	Icon             string    `json:"icon" gorm:"type:varchar(50);not null"`
	Color            string    `json:"color" gorm:"type:varchar(20);not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
