package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
	"github.com/financas-pro/backend/internal/domain/metrics"
)

// SummaryResponse represents the dashboard summary in API responses.
type SummaryResponse struct {
	TotalBalance   decimal.Decimal       `json:"total_balance"`
	MonthlyIncome  decimal.Decimal       `json:"monthly_income"`
	MonthlyExpense decimal.Decimal       `json:"monthly_expense"`
	RecentActivity []TransactionResponse `json:"recent_activity"`
	Goals          []GoalResponse        `json:"goals"`
}

// CategoryTotalResponse is one category slice of the expense breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryBreakdownResponse represents the expense-by-category breakdown.
type CategoryBreakdownResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
}

// TrendPointResponse is one month of the balance trend series.
type TrendPointResponse struct {
	Month          time.Time       `json:"month"`
	Label          string          `json:"label"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	Net            decimal.Decimal `json:"net"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// BalanceTrendResponse represents the balance trend in API responses.
type BalanceTrendResponse struct {
	Timeframe string               `json:"timeframe"`
	Points    []TrendPointResponse `json:"points"`
}

// NetWorthPositionRequest is one declared out-of-ledger position.
type NetWorthPositionRequest struct {
	Name  string          `json:"name" binding:"required,min=1,max=100"`
	Value decimal.Decimal `json:"value" binding:"required"`
}

// NetWorthRequest represents the request body for a net-worth computation.
type NetWorthRequest struct {
	Investments    []NetWorthPositionRequest `json:"investments"`
	PhysicalAssets []NetWorthPositionRequest `json:"physical_assets"`
	Debts          []NetWorthPositionRequest `json:"debts"`
}

// NetWorthResponse represents the net-worth computation in API responses.
type NetWorthResponse struct {
	Balance        decimal.Decimal `json:"balance"`
	Investments    decimal.Decimal `json:"investments"`
	PhysicalAssets decimal.Decimal `json:"physical_assets"`
	Debts          decimal.Decimal `json:"debts"`
	NetWorth       decimal.Decimal `json:"net_worth"`
}

// ToCategoryBreakdownResponse converts category totals to the response DTO.
func ToCategoryBreakdownResponse(totals []metrics.CategoryTotal) CategoryBreakdownResponse {
	categories := make([]CategoryTotalResponse, 0, len(totals))
	for _, total := range totals {
		categories = append(categories, CategoryTotalResponse{
			Category: total.Category,
			Total:    total.Total,
		})
	}
	return CategoryBreakdownResponse{Categories: categories}
}

// ToBalanceTrendResponse converts trend points to the response DTO.
func ToBalanceTrendResponse(timeframe metrics.Timeframe, points []metrics.TrendPoint) BalanceTrendResponse {
	items := make([]TrendPointResponse, 0, len(points))
	for _, point := range points {
		items = append(items, TrendPointResponse{
			Month:          point.Month,
			Label:          point.Label,
			Income:         point.Income,
			Expense:        point.Expense,
			Net:            point.Net,
			RunningBalance: point.RunningBalance,
		})
	}
	return BalanceTrendResponse{
		Timeframe: string(timeframe),
		Points:    items,
	}
}

// ToNetWorthInputs converts declared positions to domain value types.
func (r NetWorthRequest) ToNetWorthInputs() ([]entity.Investment, []entity.PhysicalAsset, []entity.Debt) {
	investments := make([]entity.Investment, 0, len(r.Investments))
	for _, position := range r.Investments {
		investments = append(investments, entity.Investment{Name: position.Name, MarketValue: position.Value})
	}
	assets := make([]entity.PhysicalAsset, 0, len(r.PhysicalAssets))
	for _, position := range r.PhysicalAssets {
		assets = append(assets, entity.PhysicalAsset{Name: position.Name, CurrentValue: position.Value})
	}
	debts := make([]entity.Debt, 0, len(r.Debts))
	for _, position := range r.Debts {
		debts = append(debts, entity.Debt{Name: position.Name, Outstanding: position.Value})
	}
	return investments, assets, debts
}
