package schema

import "gorm.io/datatypes"

// CreateActivityInput is the insert shape for an audit feed entry.
// Company and acting user are injected from the session.
type CreateActivityInput struct {
	Type        string            `json:"type" validate:"required,max=50"`
	Description string            `json:"description" validate:"required"`
	Source      string            `json:"source" validate:"omitempty,max=100"`
	Metadata    datatypes.JSONMap `json:"metadata"`
}

// CreateNotificationInput is the insert shape for a notification.
// The target user id is explicit because notifications may be raised
// for any user by system actions.
type CreateNotificationInput struct {
	UserID   uint              `json:"user_id" validate:"required"`
	Title    string            `json:"title" validate:"required,max=200"`
	Message  string            `json:"message" validate:"required"`
	Type     string            `json:"type" validate:"required,oneof=info success warning error"`
	Metadata datatypes.JSONMap `json:"metadata"`
}
