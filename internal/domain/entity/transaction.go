// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether the transaction type is a known value.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodCash         PaymentMethod = "cash"
)

// IsValid reports whether the payment method is a known value.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodBankTransfer, PaymentMethodPix, PaymentMethodCash:
		return true
	}
	return false
}

// Recurrence is a descriptive tag on a transaction. It never generates
// future transactions; it exists only for display and filtering.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// IsValid reports whether the recurrence tag is a known value.
func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Transaction represents a single income or expense record. Amount is
// always non-negative; Type determines the sign when deriving balances.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Category      string
	Description   string
	Type          TransactionType
	PaymentMethod PaymentMethod
	Recurrence    Recurrence
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	category string,
	description string,
	transactionType TransactionType,
	paymentMethod PaymentMethod,
	recurrence Recurrence,
	tags []string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        amount,
		Date:          date,
		Category:      category,
		Description:   description,
		Type:          transactionType,
		PaymentMethod: paymentMethod,
		Recurrence:    recurrence,
		Tags:          tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SignedAmount returns the amount with income positive and expense negative.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
