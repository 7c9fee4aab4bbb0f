// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/entity"
	"github.com/financas-pro/backend/internal/domain/metrics"
)

// GetNetWorthInput represents the input for a net-worth computation. The
// out-of-ledger positions are declared by the caller; the balance comes
// from the stored transactions.
type GetNetWorthInput struct {
	UserID         uuid.UUID
	Investments    []entity.Investment
	PhysicalAssets []entity.PhysicalAsset
	Debts          []entity.Debt
}

// GetNetWorthOutput represents the output of a net-worth computation.
type GetNetWorthOutput struct {
	Snapshot entity.NetWorthSnapshot
	NetWorth decimal.Decimal
}

// GetNetWorthUseCase computes net worth:
// balance + investments + physical assets - debts.
type GetNetWorthUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetNetWorthUseCase creates a new GetNetWorthUseCase instance.
func NewGetNetWorthUseCase(transactionRepo adapter.TransactionRepository) *GetNetWorthUseCase {
	return &GetNetWorthUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the net worth snapshot for the user.
func (uc *GetNetWorthUseCase) Execute(ctx context.Context, input GetNetWorthInput) (*GetNetWorthOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	snapshot := entity.NetWorthSnapshot{
		Balance:        metrics.TotalBalance(transactions),
		Investments:    input.Investments,
		PhysicalAssets: input.PhysicalAssets,
		Debts:          input.Debts,
	}

	return &GetNetWorthOutput{
		Snapshot: snapshot,
		NetWorth: metrics.NetWorth(snapshot),
	}, nil
}
