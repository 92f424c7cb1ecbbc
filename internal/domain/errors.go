package domain

// APIError represents a standardized API error with HTTP status code
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// ValidationRule tags a ledger validation failure so clients can react to
// the specific rule instead of parsing message text.
type ValidationRule string

const (
	RuleClientNameRequired   ValidationRule = "client-name-required"
	RuleServiceRequired      ValidationRule = "service-required"
	RulePaymentInfoRequired  ValidationRule = "payment-info-required"
	RuleTotalMustBePositive  ValidationRule = "total-must-be-positive"
	RuleProjectTitleRequired ValidationRule = "project-title-required"
	RuleAmountRequired       ValidationRule = "amount-required"
)

// ValidationError is a ledger validation failure. Validation runs before
// any mutation, so a returned ValidationError guarantees unchanged state.
type ValidationError struct {
	Rule    ValidationRule `json:"rule"`
	Message string         `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a tagged validation error
func NewValidationError(rule ValidationRule, message string) *ValidationError {
	return &ValidationError{Rule: rule, Message: message}
}

// GetValidationMessage returns a human-readable message for a validator tag
func GetValidationMessage(tag string) string {
	if msg, ok := validationMessages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}

var validationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Must be a valid email address",
	"max":      "Exceeds maximum length",
	"min":      "Below minimum length",
	"gte":      "Must be greater than or equal to minimum value",
	"gt":       "Must be greater than minimum value",
	"lte":      "Must be less than or equal to maximum value",
	"oneof":    "Must be one of the allowed values",
	"uuid":     "Must be a valid UUID",
	"numeric":  "Must be a numeric value",
}

// Common error types for RFC 7807 Problem Details
const (
	ErrorTypeValidation   = "validation_error"
	ErrorTypeNotFound     = "not_found"
	ErrorTypeBadRequest   = "bad_request"
	ErrorTypeConflict     = "conflict"
	ErrorTypeUnauthorized = "unauthorized"
	ErrorTypeForbidden    = "forbidden"
	ErrorTypeInternal     = "internal_error"
)
