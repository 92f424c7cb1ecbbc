package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/curioyard/studio-api/internal/auth"
	"github.com/curioyard/studio-api/internal/domain"
	"github.com/curioyard/studio-api/internal/service"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondHTML(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(html))
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			fieldName := toJSONFieldName(fe.Field())
			errors[fieldName] = formatValidationError(fe)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: errors,
	})
}

// respondRuleError reports a failed ledger rule under its stable rule tag
func respondRuleError(w http.ResponseWriter, ve *domain.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: ve.Message,
		Errors: map[string]string{string(ve.Rule): ve.Message},
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "url":
		return "Must be a valid URL"
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	// Convert first character to lowercase for camelCase
	return strings.ToLower(field[:1]) + field[1:]
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   getErrorType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return domain.ErrorTypeUnauthorized
	case http.StatusForbidden:
		return domain.ErrorTypeForbidden
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	default:
		return domain.ErrorTypeInternal
	}
}

// userID resolves the authenticated user scoping the request. The auth
// middleware guarantees the context is present on protected routes.
func userID(r *http.Request) string {
	return auth.MustFromContext(r.Context()).UserID
}

// respondServiceError maps known service and ledger errors to status
// codes; unknown errors fall through to the caller for logging.
func respondServiceError(w http.ResponseWriter, err error) bool {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondRuleError(w, ve)
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, service.ErrPaymentEntryNotFound):
		respondWithError(w, http.StatusNotFound, "Payment entry not found")
	case errors.Is(err, service.ErrInvalidAmount):
		respondWithError(w, http.StatusBadRequest, "Invalid amount")
	case errors.Is(err, service.ErrInvalidContractType):
		respondWithError(w, http.StatusBadRequest, "Invalid contract type")
	case errors.Is(err, domain.ErrPaymentNotPositive):
		respondWithError(w, http.StatusBadRequest, "Payment amount must be greater than zero")
	case errors.Is(err, domain.ErrPaymentMethodRequired):
		respondWithError(w, http.StatusBadRequest, "Payment method is required")
	case errors.Is(err, domain.ErrPaymentExceedsBalance):
		respondWithError(w, http.StatusUnprocessableEntity, "Payment exceeds the outstanding balance")
	default:
		return false
	}
	return true
}
