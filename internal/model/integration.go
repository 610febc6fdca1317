package model

import (
	"time"

	"gorm.io/datatypes"
)

// Integration statuses.
const (
	IntegrationDisconnected = "disconnected"
	IntegrationConnected    = "connected"
	IntegrationError        = "error"
)

// Integration represents a third-party data source connected to a company
type Integration struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	CompanyID   uint              `json:"company_id" gorm:"index;not null"`
	Name        string            `json:"name" gorm:"type:varchar(100);not null"`
	Type        string            `json:"type" gorm:"type:varchar(50);not null"`
	Provider    string            `json:"provider" gorm:"type:varchar(100);not null"`
	Status      string            `json:"status" gorm:"type:varchar(20);not null;default:'disconnected'"`
	Config      datatypes.JSONMap `json:"config" gorm:"type:jsonb"`
	Credentials datatypes.JSONMap `json:"credentials" gorm:"type:jsonb"`
	LastSyncAt  *time.Time        `json:"last_sync_at,omitempty"`
	DataPoints  int64             `json:"data_points" gorm:"default:0"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
