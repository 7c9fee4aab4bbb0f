// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/metrics"
)

// GetBalanceTrendInput represents the input for the balance trend chart.
type GetBalanceTrendInput struct {
	UserID    uuid.UUID
	Timeframe metrics.Timeframe
	Now       time.Time // zero means time.Now
}

// GetBalanceTrendOutput represents the output of the balance trend chart.
type GetBalanceTrendOutput struct {
	Timeframe metrics.Timeframe
	Points    []metrics.TrendPoint
}

// GetBalanceTrendUseCase computes the monthly balance trend series.
type GetBalanceTrendUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetBalanceTrendUseCase creates a new GetBalanceTrendUseCase instance.
func NewGetBalanceTrendUseCase(transactionRepo adapter.TransactionRepository) *GetBalanceTrendUseCase {
	return &GetBalanceTrendUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute buckets the user's transactions into calendar months within the
// requested timeframe.
func (uc *GetBalanceTrendUseCase) Execute(ctx context.Context, input GetBalanceTrendInput) (*GetBalanceTrendOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	points, err := metrics.BalanceTrend(transactions, input.Timeframe, now)
	if err != nil {
		return nil, err
	}

	return &GetBalanceTrendOutput{
		Timeframe: input.Timeframe,
		Points:    points,
	}, nil
}
