// Package error defines domain-specific errors for the application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNegativeAmount is returned when the amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrEmptyCategory is returned when the category is blank.
	ErrEmptyCategory = errors.New("category must not be empty")

	// ErrInvalidTransactionType is returned when the type is not income or expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidPaymentMethod is returned when the payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidRecurrence is returned when the recurrence tag is unknown.
	ErrInvalidRecurrence = errors.New("invalid recurrence")

	// ErrUnauthorizedTransactionAccess is returned when a transaction belongs to another user.
	ErrUnauthorizedTransactionAccess = errors.New("unauthorized access to transaction")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeTransactionNotFound     TransactionErrorCode = "TXN-010001"
	ErrCodeNegativeAmount          TransactionErrorCode = "TXN-010002"
	ErrCodeEmptyCategory           TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionType  TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidPaymentMethod    TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidRecurrence       TransactionErrorCode = "TXN-010006"
	ErrCodeUnauthorizedTransaction TransactionErrorCode = "TXN-010007"
	ErrCodeMissingTransactionField TransactionErrorCode = "TXN-010008"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
