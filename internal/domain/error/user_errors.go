// Package error defines domain-specific errors for the application.
package error

import "errors"

// User profile domain errors.
var (
	// ErrEmailInUse is returned when a profile update targets an email owned by another account.
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCurrency is returned when the currency is not a supported code.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrEmptyName is returned when the profile name is blank.
	ErrEmptyName = errors.New("name must not be empty")
)

// UserErrorCode defines error codes for user profile errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	ErrCodeProfileUserNotFound UserErrorCode = "USR-010001"
	ErrCodeEmailInUse          UserErrorCode = "USR-010002"
	ErrCodeInvalidCurrency     UserErrorCode = "USR-010003"
	ErrCodeEmptyName           UserErrorCode = "USR-010004"
)

// UserError represents a user profile error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
