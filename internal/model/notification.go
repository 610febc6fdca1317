package model

import (
	"time"

	"gorm.io/datatypes"
)

// Notification types.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification is a personal message for one user. Scoping is by user
// id only, never by company.
type Notification struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	UserID    uint              `json:"user_id" gorm:"index;not null"`
	Title     string            `json:"title" gorm:"type:varchar(200);not null"`
	Message   string            `json:"message" gorm:"type:text;not null"`
	Type      string            `json:"type" gorm:"type:varchar(50);not null;default:'info'"`
	IsRead    bool              `json:"is_read" gorm:"default:false;index"`
	ReadAt    *time.Time        `json:"read_at,omitempty"`
	Metadata  datatypes.JSONMap `json:"metadata" gorm:"type:jsonb"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
