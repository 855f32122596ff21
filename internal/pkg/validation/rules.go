package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/college/internal/pkg/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Record validates a single record against its `validate` struct tags
func Record(record interface{}) error {
	if err := validate.Struct(record); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, formatValidationError(fe))
			}
			return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	return nil
}

// Batch validates every record and fails on the first invalid one, naming its
// position so the caller can report which record blocked the write.
func Batch[T any](records []T) error {
	for i := range records {
		if err := Record(&records[i]); err != nil {
			return apperrors.NewCustomError(err, fmt.Sprintf("record %d: %v", i, err)).
				WithDetails(map[string]interface{}{"index": i})
		}
	}
	return nil
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
