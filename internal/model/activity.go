package model

import (
	"time"

	"gorm.io/datatypes"
)

// Activity types emitted by the API itself.
const (
	ActivityIntegrationAdded = "integration_added"
)

// Activity is one entry in a company's audit feed, referencing the
// acting user. Append-only.
type Activity struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	CompanyID   uint              `json:"company_id" gorm:"index;not null"`
	UserID      uint              `json:"user_id" gorm:"index;not null"`
	Type        string            `json:"type" gorm:"type:varchar(50);not null"`
	Description string            `json:"description" gorm:"type:text;not null"`
	Source      string            `json:"source" gorm:"type:varchar(100)"`
	Metadata    datatypes.JSONMap `json:"metadata" gorm:"type:jsonb"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
