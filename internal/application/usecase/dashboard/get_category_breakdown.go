// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/metrics"
)

// GetCategoryBreakdownInput represents the input for the expense breakdown.
type GetCategoryBreakdownInput struct {
	UserID uuid.UUID
}

// GetCategoryBreakdownOutput represents the output of the expense breakdown.
type GetCategoryBreakdownOutput struct {
	Categories []metrics.CategoryTotal
}

// GetCategoryBreakdownUseCase computes per-category expense totals for the
// pie chart.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the expense totals per category.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetCategoryBreakdownOutput{
		Categories: metrics.CategoryBreakdown(transactions),
	}, nil
}
