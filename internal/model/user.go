package model

import (
	"time"
)

// User roles within a company.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// User represents the user model stored in the database
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string     `json:"-" gorm:"type:varchar(255);not null"`
	FirstName    string     `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName     string     `json:"last_name" gorm:"type:varchar(100);not null"`
	JobTitle     string     `json:"job_title" gorm:"type:varchar(100)"`
	Role         string     `json:"role" gorm:"type:varchar(50);not null;default:'member'"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	CompanyID    *uint      `json:"company_id,omitempty" gorm:"index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
