package exceptions

import (
	"appointment-booking-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	customMessage, ok := constvars.CustomValidationErrorMessages[firstErr.Tag()]
	if !ok {
		customMessage = "is invalid"
	}
	if strings.Contains(customMessage, "%s") {
		customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
	}
	return fieldName + " " + customMessage
}
