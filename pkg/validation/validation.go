// Package validation runs the declarative field checks that precede any
// business rule. Inputs describe their schema with `validate` tags and an
// optional `label` tag used in messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sangkips/menu-api/pkg/apperror"
)

var (
	once     sync.Once
	instance *Validator
)

// Validator wraps go-playground/validator and renders field errors the way
// the API reports them.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator using json tag names for field identifiers.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return true
			}
			field = field.Elem()
		}
		return strings.TrimSpace(field.String()) != ""
	})
	return &Validator{validate: v}
}

// Default returns the process-wide Validator.
func Default() *Validator {
	once.Do(func() { instance = New() })
	return instance
}

// Struct validates s and returns an *apperror.AppError listing every failing
// field, or nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.NewBadRequestError(err.Error())
	}

	labels := labelsOf(s)
	fieldErrors := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		label := labels[fe.StructField()]
		if label == "" {
			label = fe.Field()
		}
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   fe.Field(),
			Message: message(label, fe),
		})
	}
	return apperror.NewValidationError(fieldErrors)
}

func message(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "max":
		if isNumeric(fe.Kind()) {
			return fmt.Sprintf("%s cannot exceed %s", label, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
	case "min", "gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be a non-negative number", label)
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid", "uuid4":
		return fmt.Sprintf("Invalid %s", strings.ToLower(label))
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func labelsOf(s interface{}) map[string]string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	labels := make(map[string]string)
	if t.Kind() != reflect.Struct {
		return labels
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if label := f.Tag.Get("label"); label != "" {
			labels[f.Name] = label
		}
	}
	return labels
}
