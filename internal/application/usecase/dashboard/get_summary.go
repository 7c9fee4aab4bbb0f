// Package dashboard contains dashboard-related use cases that compose the
// derived-metrics engine over the user's collections.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/entity"
	"github.com/financas-pro/backend/internal/domain/metrics"
)

// recentActivityCount is how many transactions the summary lists.
const recentActivityCount = 5

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID    uuid.UUID
	Reference time.Time // anchors the monthly aggregates; zero means now
}

// GoalProgress is one goal with its display-clamped current amount.
type GoalProgress struct {
	Goal          *entity.Goal
	DisplayAmount decimal.Decimal
}

// GetSummaryOutput represents the output of the dashboard summary.
type GetSummaryOutput struct {
	TotalBalance   decimal.Decimal
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	RecentActivity []*entity.Transaction
	Goals          []GoalProgress
}

// GetSummaryUseCase computes the dashboard headline figures.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
	}
}

// Execute computes total balance, current-month income/expense, the five
// most recent transactions and per-goal progress.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	monthly := metrics.MonthlyIncomeExpense(transactions, reference)

	progress := make([]GoalProgress, len(goals))
	for i, g := range goals {
		progress[i] = GoalProgress{Goal: g, DisplayAmount: g.DisplayAmount()}
	}

	return &GetSummaryOutput{
		TotalBalance:   metrics.TotalBalance(transactions),
		MonthlyIncome:  monthly.Income,
		MonthlyExpense: monthly.Expense,
		RecentActivity: metrics.RecentActivity(transactions, recentActivityCount),
		Goals:          progress,
	}, nil
}
