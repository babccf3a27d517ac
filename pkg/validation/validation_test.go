package validation

import (
	"testing"

	"github.com/sangkips/menu-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name       string   `json:"name" validate:"notblank,max=5" label:"Category name"`
	Tax        *float64 `json:"tax" validate:"omitempty,gte=0" label:"Tax"`
	TaxType    string   `json:"taxType" validate:"omitempty,oneof=percentage fixed" label:"Tax type"`
	CategoryID string   `json:"categoryId" validate:"omitempty,uuid" label:"Category ID"`
}

func TestStruct_Valid(t *testing.T) {
	tax := 5.0
	err := New().Struct(&sample{Name: "Soda", Tax: &tax, TaxType: "fixed"})
	assert.NoError(t, err)
}

func TestStruct_CollectsAllFieldErrors(t *testing.T) {
	tax := -1.0
	err := New().Struct(&sample{Name: "   ", Tax: &tax, TaxType: "flat", CategoryID: "nope"})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "Validation failed", appErr.Message)
	assert.ElementsMatch(t, []apperror.FieldError{
		{Field: "name", Message: "Category name is required"},
		{Field: "tax", Message: "Tax must be a non-negative number"},
		{Field: "taxType", Message: "Tax type must be one of: percentage, fixed"},
		{Field: "categoryId", Message: "Invalid category id"},
	}, appErr.Errors)
}

func TestStruct_MaxLength(t *testing.T) {
	err := Default().Struct(&sample{Name: "Espresso"})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "Category name cannot exceed 5 characters", appErr.Errors[0].Message)
}
