package schema

// RegisterInput is the payload for account registration. The company
// is created alongside the admin user, so its name rides in here.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	JobTitle    string `json:"job_title" validate:"omitempty,max=100"`
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Industry    string `json:"industry" validate:"omitempty,max=100"`
}

// LoginInput is the payload for credential login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput is the partial-update shape for a user's own
// profile. Email, password and company membership are not editable
// through this shape.
type UpdateUserInput struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	JobTitle  *string `json:"job_title" validate:"omitempty,max=100"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin member viewer"`
	IsActive  *bool   `json:"is_active"`
}

// Updates returns the set fields as a column map for the store.
func (in UpdateUserInput) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if in.FirstName != nil {
		m["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		m["last_name"] = *in.LastName
	}
	if in.JobTitle != nil {
		m["job_title"] = *in.JobTitle
	}
	if in.Role != nil {
		m["role"] = *in.Role
	}
	if in.IsActive != nil {
		m["is_active"] = *in.IsActive
	}
	return m
}
