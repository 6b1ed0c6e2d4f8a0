package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"tag-validator/internal/domain"
	"tag-validator/internal/util"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance. Field names in errors are
// taken from the json or form tag so they match what the client sent.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return &Validator{validate: v}
}

// ValidateStruct runs the struct's validate tags and converts failures to
// domain.ValidationErrors. It returns nil when the struct is valid.
func (v *Validator) ValidateStruct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{Field: "", Code: domain.CodeValidation, Message: err.Error()}}
	}

	var out domain.ValidationErrors
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(fe.Field())
	case "gte", "lte", "min", "max", "gt", "lt":
		return domain.ValidationError{
			Field:   fe.Field(),
			Code:    domain.CodeOutOfRange,
			Message: fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param()),
			Value:   fe.Value(),
		}
	case "oneof":
		return domain.ValidationError{
			Field:   fe.Field(),
			Code:    domain.CodeInvalidFormat,
			Message: fmt.Sprintf("must be one of [%s]", fe.Param()),
			Value:   fe.Value(),
		}
	default:
		return domain.NewInvalidFormatError(fe.Field(), fe.Value())
	}
}

// ValidateRunID checks a run identifier taken from the path.
func (v *Validator) ValidateRunID(runID string) domain.ValidationErrors {
	if strings.TrimSpace(runID) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("run_id")}
	}
	if !util.IsULID(runID) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("run_id", runID)}
	}
	return nil
}
