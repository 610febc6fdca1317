package schema

// CreateKpiMetricInput is the insert shape for a KPI card.
type CreateKpiMetricInput struct {
	Name             string `json:"name" validate:"required,max=100"`
	Value            string `json:"value" validate:"required,max=50"`
	PreviousValue    string `json:"previous_value" validate:"omitempty,max=50"`
	ChangePercentage string `json:"change_percentage" validate:"omitempty,max=20"`
	Period           string `json:"period" validate:"required,max=50"`
	Icon             string `json:"icon" validate:"required,max=50"`
	Color            string `json:"color" validate:"required,max=20"`
}

// UpdateKpiMetricInput is the partial-update shape for a KPI card.
type UpdateKpiMetricInput struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=100"`
	Value            *string `json:"value" validate:"omitempty,min=1,max=50"`
	PreviousValue    *string `json:"previous_value" validate:"omitempty,max=50"`
	ChangePercentage *string `json:"change_percentage" validate:"omitempty,max=20"`
	Period           *string `json:"period" validate:"omitempty,min=1,max=50"`
	Icon             *string `json:"icon" validate:"omitempty,min=1,max=50"`
	Color            *string `json:"color" validate:"omitempty,min=1,max=20"`
}

// Updates returns the set fields as a column map for the store.
func (in UpdateKpiMetricInput) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Value != nil {
		m["value"] = *in.Value
	}
	if in.PreviousValue != nil {
		m["previous_value"] = *in.PreviousValue
	}
	if in.ChangePercentage != nil {
		m["change_percentage"] = *in.ChangePercentage
	}
	if in.Period != nil {
		m["period"] = *in.Period
	}
	if in.Icon != nil {
		m["icon"] = *in.Icon
	}
	if in.Color != nil {
		m["color"] = *in.Color
	}
	return m
}
