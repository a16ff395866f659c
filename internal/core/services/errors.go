package services

import (
	"errors"
	"strings"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
)

const genericFailureMessage = "Something went wrong. Please try again."

// failureMessage turns an error into the message shown to the user.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrImportParse):
		return "Import failed. Invalid file."
	case errors.Is(err, apperrors.ErrNotFound):
		return "Record not found."
	case errors.Is(err, apperrors.ErrValidation):
		msg := strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error()+": ")
		if msg == "" {
			return "Please fill in the required fields."
		}
		return strings.ToUpper(msg[:1]) + msg[1:] + "."
	default:
		return genericFailureMessage
	}
}
