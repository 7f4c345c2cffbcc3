package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Catalog-specific errors
	ErrCoffeeNotFound    = "COFFEE_NOT_FOUND"
	ErrCoffeeInvalidData = "COFFEE_INVALID_DATA"
	ErrSizeNotFound      = "SIZE_NOT_FOUND"
	ErrExtraNotFound     = "EXTRA_NOT_FOUND"
	ErrDuplicateKey      = "DUPLICATE_KEY"

	// Session/auth errors
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
	ErrSessionExpired     = "SESSION_EXPIRED"
	ErrNotPrivileged      = "NOT_PRIVILEGED"

	// Delete-confirmation errors
	ErrConfirmationUnknown = "CONFIRMATION_UNKNOWN"
	ErrConfirmationExpired = "CONFIRMATION_EXPIRED"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
