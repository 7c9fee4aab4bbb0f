// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Currency represents the user's preferred display currency.
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// IsValid reports whether the currency is one of the supported codes.
func (c Currency) IsValid() bool {
	return c == CurrencyBRL || c == CurrencyUSD || c == CurrencyEUR
}

// User represents a registered account in the system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	AvatarURL    *string
	Currency     Currency
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values. The email is stored
// lowercased so uniqueness checks are case-insensitive.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        strings.ToLower(email),
		Name:         name,
		PasswordHash: passwordHash,
		Currency:     CurrencyBRL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
