package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError_PassesThroughAppError(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", NewNotFoundError("Category"))

	appErr := GetAppError(wrapped)

	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.Equal(t, "Category not found", appErr.Message)
}

func TestGetAppError_HidesUnknownErrors(t *testing.T) {
	appErr := GetAppError(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.EqualError(t, appErr.Cause(), "pq: connection refused")
}

func TestNewDuplicateError_NamesField(t *testing.T) {
	err := NewDuplicateError("name", errors.New("duplicate key"))

	assert.Equal(t, "Name already exists", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.True(t, IsKind(err, KindDuplicate))
}

func TestNewUpstreamError_KeepsCause(t *testing.T) {
	cause := errors.New("s3 timeout")
	err := NewUpstreamError(cause, "Failed to upload image")

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, fmt.Sprintf("%+v", err.Cause()), "errors_test.go")
}

func TestKindsMapToStatusClasses(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"validation", NewValidationError(nil), http.StatusBadRequest},
		{"business rule", NewBusinessRuleError("Discount cannot exceed base amount"), http.StatusBadRequest},
		{"not found", NewNotFoundError("Item"), http.StatusNotFound},
		{"upload", ErrFileTooLarge, http.StatusBadRequest},
		{"upstream", NewUpstreamError(errors.New("x"), "y"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}
