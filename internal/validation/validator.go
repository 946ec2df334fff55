package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"sat-prep/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs by struct tag and reports field errors
// using the names clients send (json or query tag).
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the custom "section" tag registered
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("section", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseSection(fl.Field().String())
		return ok
	})
	return &Validator{validate: v}
}

// Struct validates s. It returns nil when s is valid.
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{
			Field:   "",
			Code:    domain.CodeValidation,
			Message: err.Error(),
		}}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(field)
	case "section":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeInvalidSection,
			Message: fmt.Sprintf("%s must be one of %s", field, sectionNames()),
			Value:   fe.Value(),
		}
	case "min", "max":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeOutOfRange,
			Message: fmt.Sprintf("%s violates %s=%s", field, fe.Tag(), fe.Param()),
			Value:   fe.Value(),
		}
	default:
		return domain.NewInvalidFormatError(field, fe.Value())
	}
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query", "params"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func sectionNames() string {
	names := make([]string, 0, len(domain.AllSections))
	for _, s := range domain.AllSections {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
