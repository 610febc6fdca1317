package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CreateIntegrationInput is the insert shape for an integration. The
// company id is injected from the session by the handler, never taken
// from the client.
type CreateIntegrationInput struct {
	Name        string            `json:"name" validate:"required,max=100"`
	Type        string            `json:"type" validate:"required,max=50"`
	Provider    string            `json:"provider" validate:"required,max=100"`
	Status      string            `json:"status" validate:"omitempty,oneof=disconnected connected error"`
	Config      datatypes.JSONMap `json:"config"`
	Credentials datatypes.JSONMap `json:"credentials"`
}

// UpdateIntegrationInput is the partial-update shape, used both for
// the configure flow and the synchronous sync status flip.
type UpdateIntegrationInput struct {
	Name        *string            `json:"name" validate:"omitempty,min=1,max=100"`
	Type        *string            `json:"type" validate:"omitempty,min=1,max=50"`
	Provider    *string            `json:"provider" validate:"omitempty,min=1,max=100"`
	Status      *string            `json:"status" validate:"omitempty,oneof=disconnected connected error"`
	Config      *datatypes.JSONMap `json:"config"`
	Credentials *datatypes.JSONMap `json:"credentials"`
	LastSyncAt  *time.Time         `json:"last_sync_at"`
	DataPoints  *int64             `json:"data_points" validate:"omitempty,min=0"`
}

// Updates returns the set fields as a column map for the store.
func (in UpdateIntegrationInput) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Type != nil {
		m["type"] = *in.Type
	}
	if in.Provider != nil {
		m["provider"] = *in.Provider
	}
	if in.Status != nil {
		m["status"] = *in.Status
	}
	if in.Config != nil {
		m["config"] = *in.Config
	}
	if in.Credentials != nil {
		m["credentials"] = *in.Credentials
	}
	if in.LastSyncAt != nil {
		m["last_sync_at"] = *in.LastSyncAt
	}
	if in.DataPoints != nil {
		m["data_points"] = *in.DataPoints
	}
	return m
}
