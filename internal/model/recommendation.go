package model

import (
	"time"

	"gorm.io/datatypes"
)

// AiRecommendation is a generated suggestion for a company. Rows are
// created by the recommendation pipeline and only ever flipped to
// implemented by a user; they are never deleted.
type AiRecommendation struct {
	ID              uint                        `json:"id" gorm:"primaryKey"`
	CompanyID       uint                        `json:"company_id" gorm:"index;not null"`
	Title           string                      `json:"title" gorm:"type:varchar(200);not null"`
	Description     string                      `json:"description" gorm:"type:text;not null"`
	Category        string                      `json:"category" gorm:"type:varchar(100);not null"`
	Priority        string                      `json:"priority" gorm:"type:varchar(20);not null"`
	Confidence      int                         `json:"confidence" gorm:"not null"`
	IsImplemented   bool                        `json:"is_implemented" gorm:"default:false"`
	ImplementedAt   *time.Time                  `json:"implemented_at,omitempty"`
	EstimatedImpact string                      `json:"estimated_impact" gorm:"type:varchar(100);not null"`
	RequiredActions datatypes.JSONSlice[string] `json:"required_actions" gorm:"type:jsonb"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}
