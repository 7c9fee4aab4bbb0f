// Package error defines domain-specific errors for the application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrNegativeCurrentAmount is returned when the current amount is negative.
	ErrNegativeCurrentAmount = errors.New("current amount must not be negative")

	// ErrInvalidProgressAmount is returned when a progress contribution is not positive.
	ErrInvalidProgressAmount = errors.New("progress amount must be positive")

	// ErrEmptyGoalName is returned when the goal name is blank.
	ErrEmptyGoalName = errors.New("goal name must not be empty")

	// ErrUnauthorizedGoalAccess is returned when a goal belongs to another user.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound          GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount   GoalErrorCode = "GOL-010002"
	ErrCodeNegativeCurrentAmount GoalErrorCode = "GOL-010003"
	ErrCodeInvalidProgressAmount GoalErrorCode = "GOL-010004"
	ErrCodeEmptyGoalName         GoalErrorCode = "GOL-010005"
	ErrCodeUnauthorizedGoal      GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields     GoalErrorCode = "GOL-010007"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
