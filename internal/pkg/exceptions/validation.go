package exceptions

import (
	"dermacare-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BuildFieldErrors maps validator violations to the errors[] payload
// carried by validation responses, one entry per failing field.
func BuildFieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: constvars.ResponseUnknown, Message: constvars.ErrDevInvalidInput}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   lowerFirst(fieldErr.Field()),
			Message: formatTagMessage(fieldErr),
		})
	}
	return fieldErrors
}

func formatTagMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return customMessage
}

func lowerFirst(fieldName string) string {
	if fieldName == "" {
		return fieldName
	}
	return strings.ToLower(fieldName[:1]) + fieldName[1:]
}
