// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal. CurrentAmount is the stored sum of
// progress contributions and may overshoot TargetAmount; the clamp to the
// target happens only at display time via DisplayAmount.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, name string, targetAmount, currentAmount decimal.Decimal, targetDate time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DisplayAmount returns min(CurrentAmount, TargetAmount). The stored value
// is never clamped.
func (g *Goal) DisplayAmount() decimal.Decimal {
	if g.CurrentAmount.GreaterThan(g.TargetAmount) {
		return g.TargetAmount
	}
	return g.CurrentAmount
}

// Progress returns the completion ratio in [0, 1] based on the displayed
// amount.
func (g *Goal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	ratio, _ := g.DisplayAmount().Div(g.TargetAmount).Float64()
	return ratio
}
