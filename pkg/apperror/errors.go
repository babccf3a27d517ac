package apperror

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies an AppError independently of its HTTP status
type Kind string

const (
	KindValidation   Kind = "validation"
	KindBusinessRule Kind = "business_rule"
	KindNotFound     Kind = "not_found"
	KindDuplicate    Kind = "duplicate"
	KindUpload       Kind = "upload"
	KindUpstream     Kind = "upstream"
	KindInternal     Kind = "internal"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`

	cause error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any
func (e *AppError) Unwrap() error {
	return e.cause
}

// Cause returns the wrapped error that produced this AppError
func (e *AppError) Cause() error {
	return e.cause
}

// Common errors
var (
	ErrInternalServer  = &AppError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: "Internal server error"}
	ErrInvalidID       = &AppError{Code: http.StatusBadRequest, Kind: KindValidation, Message: "Invalid ID format"}
	ErrRouteNotFound   = &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: "Route not found"}
	ErrFileTooLarge    = &AppError{Code: http.StatusBadRequest, Kind: KindUpload, Message: "File size too large. Maximum size is 5MB"}
	ErrInvalidFileType = &AppError{Code: http.StatusBadRequest, Kind: KindUpload, Message: "Invalid file type. Only JPEG, PNG, and WEBP images are allowed"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kindForStatus(code),
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewBusinessRuleError creates an error for a rejected business rule
func NewBusinessRuleError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindBusinessRule,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewDuplicateError reports a unique key collision on field
func NewDuplicateError(field string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindDuplicate,
		Message: capitalize(field) + " already exists",
		cause:   cause,
	}
}

// NewUploadError creates an error raised by the upload layer
func NewUploadError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindUpload,
		Message: message,
	}
}

// NewUpstreamError wraps a failure of an external collaborator (image store, cache)
func NewUpstreamError(err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindUpstream,
		Message: message,
		cause:   pkgerrors.WithStack(err),
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// GetAppError converts an error to AppError if possible. Unknown errors
// become a generic 500 so internal details never reach the client.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: ErrInternalServer.Message,
		cause:   pkgerrors.WithStack(err),
	}
}

func kindForStatus(code int) Kind {
	switch {
	case code == http.StatusNotFound:
		return KindNotFound
	case code >= 500:
		return KindInternal
	default:
		return KindValidation
	}
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
