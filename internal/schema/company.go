package schema

import "gorm.io/datatypes"

// UpdateCompanyInput is the partial-update shape for the tenant
// profile. Settings is an opaque JSON object, validated structurally
// by the bind.
type UpdateCompanyInput struct {
	Name        *string            `json:"name" validate:"omitempty,min=1,max=200"`
	Industry    *string            `json:"industry" validate:"omitempty,max=100"`
	Website     *string            `json:"website" validate:"omitempty,max=255"`
	Description *string            `json:"description"`
	Logo        *string            `json:"logo"`
	Settings    *datatypes.JSONMap `json:"settings"`
}

// Updates returns the set fields as a column map for the store.
func (in UpdateCompanyInput) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Industry != nil {
		m["industry"] = *in.Industry
	}
	if in.Website != nil {
		m["website"] = *in.Website
	}
	if in.Description != nil {
		m["description"] = *in.Description
	}
	if in.Logo != nil {
		m["logo"] = *in.Logo
	}
	if in.Settings != nil {
		m["settings"] = *in.Settings
	}
	return m
}
