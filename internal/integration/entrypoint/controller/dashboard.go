package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/application/usecase/dashboard"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
	"github.com/financas-pro/backend/internal/domain/metrics"
	"github.com/financas-pro/backend/internal/integration/entrypoint/dto"
	"github.com/financas-pro/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard metric endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	trendUseCase     *dashboard.GetBalanceTrendUseCase
	netWorthUseCase  *dashboard.GetNetWorthUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	trendUseCase *dashboard.GetBalanceTrendUseCase,
	netWorthUseCase *dashboard.GetNetWorthUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
		trendUseCase:     trendUseCase,
		netWorthUseCase:  netWorthUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard summary",
		})
		return
	}

	recent := make([]dto.TransactionResponse, 0, len(output.RecentActivity))
	for _, tx := range output.RecentActivity {
		recent = append(recent, dto.ToTransactionResponse(tx))
	}
	goals := make([]dto.GoalResponse, 0, len(output.Goals))
	for _, progress := range output.Goals {
		goals = append(goals, dto.ToGoalResponse(progress.Goal))
	}

	ctx.JSON(http.StatusOK, dto.SummaryResponse{
		TotalBalance:   output.TotalBalance,
		MonthlyIncome:  output.MonthlyIncome,
		MonthlyExpense: output.MonthlyExpense,
		RecentActivity: recent,
		Goals:          goals,
	})
}

// Breakdown handles GET /dashboard/breakdown requests.
func (c *DashboardController) Breakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute category breakdown",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output.Categories))
}

// Trend handles GET /dashboard/trend requests. The timeframe query
// parameter defaults to six months.
func (c *DashboardController) Trend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	timeframe := metrics.Timeframe(ctx.DefaultQuery("timeframe", string(metrics.TimeframeSixMonths)))

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), dashboard.GetBalanceTrendInput{
		UserID:    userID,
		Timeframe: timeframe,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceTrendResponse(output.Timeframe, output.Points))
}

// NetWorth handles POST /dashboard/net-worth requests. The caller declares
// its out-of-ledger positions in the body; the balance comes from the stored
// transactions.
func (c *DashboardController) NetWorth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.NetWorthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	investments, physicalAssets, debts := req.ToNetWorthInputs()

	output, err := c.netWorthUseCase.Execute(ctx.Request.Context(), dashboard.GetNetWorthInput{
		UserID:         userID,
		Investments:    investments,
		PhysicalAssets: physicalAssets,
		Debts:          debts,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute net worth",
		})
		return
	}

	investmentTotal := decimal.Zero
	for _, inv := range output.Snapshot.Investments {
		investmentTotal = investmentTotal.Add(inv.MarketValue)
	}
	assetTotal := decimal.Zero
	for _, asset := range output.Snapshot.PhysicalAssets {
		assetTotal = assetTotal.Add(asset.CurrentValue)
	}
	debtTotal := decimal.Zero
	for _, debt := range output.Snapshot.Debts {
		debtTotal = debtTotal.Add(debt.Outstanding)
	}

	ctx.JSON(http.StatusOK, dto.NetWorthResponse{
		Balance:        output.Snapshot.Balance,
		Investments:    investmentTotal,
		PhysicalAssets: assetTotal,
		Debts:          debtTotal,
		NetWorth:       output.NetWorth,
	})
}

// handleDashboardError maps dashboard errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
