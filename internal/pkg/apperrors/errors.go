package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrRoleMismatch     = errors.New("operation not allowed for this role")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidDateTime  = errors.New("invalid date/time format")

	// Internal errors
	ErrInternal = errors.New("internal error")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCannotDeleteAdmin  = errors.New("cannot delete admin users")
)

// Profile errors
var (
	ErrStudentProfileNotFound = errors.New("student profile not found")
	ErrMentorProfileNotFound  = errors.New("mentor profile not found")
	ErrMentorNotFound         = errors.New("mentor not found")
)

// Mentorship errors
var (
	ErrMentorNotVerified       = errors.New("mentor is not verified")
	ErrRequestNotFound         = errors.New("mentorship request not found")
	ErrRequestAlreadyPending   = errors.New("a request for this mentor is already pending")
	ErrInvalidRequestDecision  = errors.New("decision must be approved or rejected")
	ErrInvalidVerificationStat = errors.New("verification status must be verified or rejected")
)

// Session errors
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidTransition = errors.New("session status change not allowed from current state")
)

// Messaging errors
var (
	ErrMessageNotFound = errors.New("message not found")
	ErrEmptyContent    = errors.New("message content cannot be empty")
)

// Progress tracker errors
var (
	ErrTrackerNotFound = errors.New("progress tracker not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping a sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a field-specific message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewForbiddenError creates a permission denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewNotFoundError creates a resource not found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}
