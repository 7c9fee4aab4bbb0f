package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestGoalDisplayAmount(t *testing.T) {
	targetDate := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)

	t.Run("under target returns stored amount", func(t *testing.T) {
		goal := NewGoal(uuid.New(), "Viagem de Férias",
			decimal.NewFromInt(5000), decimal.NewFromInt(1250), targetDate)

		if got := goal.DisplayAmount(); !got.Equal(decimal.NewFromInt(1250)) {
			t.Errorf("expected 1250, got %s", got)
		}
	})

	t.Run("overshoot is clamped to target", func(t *testing.T) {
		goal := NewGoal(uuid.New(), "Viagem de Férias",
			decimal.NewFromInt(5000), decimal.NewFromInt(5250), targetDate)

		if got := goal.DisplayAmount(); !got.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected clamp to 5000, got %s", got)
		}
		// The stored value keeps the overshoot.
		if !goal.CurrentAmount.Equal(decimal.NewFromInt(5250)) {
			t.Errorf("stored amount must stay 5250, got %s", goal.CurrentAmount)
		}
	})

	t.Run("exactly at target", func(t *testing.T) {
		goal := NewGoal(uuid.New(), "Novo Celular",
			decimal.NewFromInt(3000), decimal.NewFromInt(3000), targetDate)

		if got := goal.DisplayAmount(); !got.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected 3000, got %s", got)
		}
	})
}

func TestGoalProgress(t *testing.T) {
	targetDate := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)

	t.Run("partial progress", func(t *testing.T) {
		goal := NewGoal(uuid.New(), "Viagem de Férias",
			decimal.NewFromInt(5000), decimal.NewFromInt(1250), targetDate)

		if got := goal.Progress(); got != 0.25 {
			t.Errorf("expected 0.25, got %f", got)
		}
	})

	t.Run("overshoot caps at one", func(t *testing.T) {
		goal := NewGoal(uuid.New(), "Viagem de Férias",
			decimal.NewFromInt(5000), decimal.NewFromInt(9000), targetDate)

		if got := goal.Progress(); got != 1.0 {
			t.Errorf("expected 1.0, got %f", got)
		}
	})

	t.Run("zero target yields zero progress", func(t *testing.T) {
		goal := NewGoal(uuid.New(), "Vazio", decimal.Zero, decimal.NewFromInt(10), targetDate)

		if got := goal.Progress(); got != 0 {
			t.Errorf("expected 0, got %f", got)
		}
	})
}

func TestTransactionSignedAmount(t *testing.T) {
	income := NewTransaction(uuid.New(), decimal.NewFromInt(3500), time.Now().UTC(),
		"Salário", "Salário Mensal", TransactionTypeIncome, PaymentMethodBankTransfer,
		RecurrenceMonthly, []string{"trabalho"})
	expense := NewTransaction(uuid.New(), decimal.RequireFromString("75.50"), time.Now().UTC(),
		"Transporte", "Gasolina", TransactionTypeExpense, PaymentMethodCreditCard,
		RecurrenceNone, nil)

	if got := income.SignedAmount(); !got.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("expected income signed amount 3500, got %s", got)
	}
	if got := expense.SignedAmount(); !got.Equal(decimal.RequireFromString("-75.50")) {
		t.Errorf("expected expense signed amount -75.50, got %s", got)
	}
}
