package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validators "github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError describes one failed rule on one field
type FieldError struct {
	// Path is the JSON pointer of the field, e.g. "/title"
	Path    string
	Field   string
	Tag     string
	Param   string
	Message string
}

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
	// Describe turns an error returned by ValidateStruct into one
	// FieldError per failed field. Other errors yield nil.
	Describe(err error) []FieldError
}

type validator struct {
	validator *validators.Validate
}

// New Validator func
// The returned validator is safe for concurrent use and is meant to be built
// once at startup and shared.
func New() Validator {
	v := validators.New()
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("notblank", nonstandard.NotBlank); err != nil {
		panic(err)
	}
	return &validator{
		validator: v,
	}
}

// ValidateStruct func
func (v *validator) ValidateStruct(inf interface{}) error {
	return v.validator.Struct(inf)
}

// Describe func
func (v *validator) Describe(err error) []FieldError {
	var validationErrors validators.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Path:    "/" + fe.Field(),
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		})
	}
	return fields
}

func message(fe validators.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("must have required property '%s'", fe.Field())
	case "notblank":
		return "must NOT be blank"
	case "min":
		return fmt.Sprintf("must NOT have fewer than %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must NOT have more than %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must have exactly %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}
