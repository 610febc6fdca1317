package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(ve *ValidationError) []string {
	names := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateRegisterInput(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&RegisterInput{
		Email:       "jane@acme.com",
		Password:    "secret123",
		FirstName:   "Jane",
		LastName:    "Doe",
		CompanyName: "Acme",
	})
	assert.NoError(t, err)

	err = v.Validate(&RegisterInput{
		Email:    "not-an-email",
		Password: "123",
	})
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	names := fieldNames(ve)
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "password")
	assert.Contains(t, names, "firstname")
	assert.Contains(t, names, "companyname")
}

func TestValidateIntegrationStatus(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&CreateIntegrationInput{
		Name:     "Stripe",
		Type:     "payments",
		Provider: "stripe",
		Status:   "connected",
	})
	assert.NoError(t, err)

	// Empty status is allowed; the handler defaults it
	err = v.Validate(&CreateIntegrationInput{
		Name:     "Stripe",
		Type:     "payments",
		Provider: "stripe",
	})
	assert.NoError(t, err)

	err = v.Validate(&CreateIntegrationInput{
		Name:     "Stripe",
		Type:     "payments",
		Provider: "stripe",
		Status:   "sideways",
	})
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "status", ve.Fields[0].Field)
	assert.Equal(t, "oneof", ve.Fields[0].Rule)
}

func TestValidateConfidenceRange(t *testing.T) {
	v := NewValidator()

	base := CreateRecommendationInput{
		Title:           "Consolidate ad spend",
		Description:     "Shift budget to the best channel",
		Category:        "marketing",
		Priority:        "high",
		EstimatedImpact: "+12% ROAS",
	}

	for _, confidence := range []int{0, 50, 100} {
		in := base
		in.Confidence = confidence
		assert.NoError(t, v.Validate(&in))
	}

	in := base
	in.Confidence = 150
	err := v.Validate(&in)
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "confidence", ve.Fields[0].Field)
	assert.Equal(t, "max", ve.Fields[0].Rule)
}

func TestPartialUpdateSkipsUnsetFields(t *testing.T) {
	v := NewValidator()

	// No fields set is a valid no-op update
	assert.NoError(t, v.Validate(&UpdateUserInput{}))
	assert.Empty(t, UpdateUserInput{}.Updates())

	role := "superuser"
	err := v.Validate(&UpdateUserInput{Role: &role})
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "role", ve.Fields[0].Field)

	title := "CTO"
	in := UpdateUserInput{JobTitle: &title}
	require.NoError(t, v.Validate(&in))
	updates := in.Updates()
	require.Len(t, updates, 1)
	assert.Equal(t, "CTO", updates["job_title"])
}
