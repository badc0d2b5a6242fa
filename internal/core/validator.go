package core

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"atmosai/internal/types"
)

// Validator wraps go-playground/validator and translates validation failures
// into structured AppErrors so handlers can return them directly.
type Validator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewValidator creates a new Validator.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		validate: validator.New(),
		logger:   logger,
	}
}

// ValidateStruct validates a struct using its `validate` tags. On failure it
// returns a *types.AppError whose details map each offending field to the
// rule it violated; field names and tags are safe to expose to clients.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]any, len(verrs))
		code := types.ErrCodeValidationInvalidField
		for _, fe := range verrs {
			details[fe.Namespace()] = fe.Tag()
			if fe.Tag() == "required" {
				code = types.ErrCodeValidationMissingField
			}
		}
		return types.NewAppErrorWithDetails(code, "request validation failed", err, details)
	}

	// InvalidValidationError: the value passed in was not a struct. This is
	// a programming error, not client input.
	v.logger.Error("validator invoked with non-struct value", slog.String("error", err.Error()))
	return types.NewAppError(types.ErrCodeInternalUnexpected, "request validation failed", err)
}
