package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

var validate = validator.New()

// Struct checks the `validate` tags of a model before it is persisted.
// Failures wrap apperrors.ErrMissingAttrs and name the offending fields.
func Struct(model interface{}) error {
	err := validate.Struct(model)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, FormatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrMissingAttrs, strings.Join(fields, "; "))
}

// FormatFieldError renders one failed rule as "<Field> is required" and the like.
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
