package model

import (
	"time"

	"gorm.io/datatypes"
)

// Company represents the tenant model stored in the database
// This is the core of our multi-tenant architecture: every business
// entity hangs off a company, and every query is scoped by its id.
type Company struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	Name        string            `json:"name" gorm:"type:varchar(200);not null"`
	Industry    string            `json:"industry" gorm:"type:varchar(100)"`
	Website     string            `json:"website" gorm:"type:varchar(255)"`
	Description string            `json:"description" gorm:"type:text"`
	Logo        string            `json:"logo" gorm:"type:text"`
	Settings    datatypes.JSONMap `json:"settings" gorm:"type:jsonb"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
