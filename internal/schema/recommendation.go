package schema

import "gorm.io/datatypes"

// CreateRecommendationInput is the insert shape for an AI
// recommendation, posted by the generation pipeline.
type CreateRecommendationInput struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Description     string   `json:"description" validate:"required"`
	Category        string   `json:"category" validate:"required,max=100"`
	Priority        string   `json:"priority" validate:"required,max=20"`
	Confidence      int      `json:"confidence" validate:"min=0,max=100"`
	EstimatedImpact string   `json:"estimated_impact" validate:"required,max=100"`
	RequiredActions []string `json:"required_actions"`
}

// UpdateRecommendationInput is the partial-update shape. Flipping
// IsImplemented to true stamps implemented_at in the store if it is
// not already set.
type UpdateRecommendationInput struct {
	Title           *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string   `json:"description" validate:"omitempty,min=1"`
	Category        *string   `json:"category" validate:"omitempty,min=1,max=100"`
	Priority        *string   `json:"priority" validate:"omitempty,min=1,max=20"`
	Confidence      *int      `json:"confidence" validate:"omitempty,min=0,max=100"`
	IsImplemented   *bool     `json:"is_implemented"`
	EstimatedImpact *string   `json:"estimated_impact" validate:"omitempty,min=1,max=100"`
	RequiredActions *[]string `json:"required_actions"`
}

// Updates returns the set fields as a column map for the store. The
// implemented_at stamp is handled by the store, not here, because it
// depends on the row's current state.
func (in UpdateRecommendationInput) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Title != nil {
		m["title"] = *in.Title
	}
	if in.Description != nil {
		m["description"] = *in.Description
	}
	if in.Category != nil {
		m["category"] = *in.Category
	}
	if in.Priority != nil {
		m["priority"] = *in.Priority
	}
	if in.Confidence != nil {
		m["confidence"] = *in.Confidence
	}
	if in.IsImplemented != nil {
		m["is_implemented"] = *in.IsImplemented
	}
	if in.EstimatedImpact != nil {
		m["estimated_impact"] = *in.EstimatedImpact
	}
	if in.RequiredActions != nil {
		m["required_actions"] = datatypes.NewJSONSlice(*in.RequiredActions)
	}
	return m
}
