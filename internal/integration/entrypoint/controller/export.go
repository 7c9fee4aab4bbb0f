package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/application/usecase/transaction"
	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
	"github.com/financas-pro/backend/internal/integration/entrypoint/dto"
	"github.com/financas-pro/backend/internal/integration/entrypoint/middleware"
	"github.com/financas-pro/backend/internal/integration/export"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportController handles transaction statement export endpoints.
type ExportController struct {
	listUseCase *transaction.ListTransactionsUseCase
	userRepo    adapter.UserRepository
}

// NewExportController creates a new export controller instance.
func NewExportController(listUseCase *transaction.ListTransactionsUseCase, userRepo adapter.UserRepository) *ExportController {
	return &ExportController{
		listUseCase: listUseCase,
		userRepo:    userRepo,
	}
}

// Export handles GET /transactions/export requests. The format query
// parameter selects xlsx or pdf.
func (c *ExportController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	format := ctx.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "pdf" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unsupported export format",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	currency := entity.CurrencyBRL
	if profile, err := c.userRepo.FindByID(ctx.Request.Context(), userID); err == nil {
		currency = profile.Currency
	}

	stamp := time.Now().UTC().Format("2006-01-02")

	switch format {
	case "pdf":
		data, err := export.TransactionsPDF(output.Transactions, currency)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to render export",
			})
			return
		}
		ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transacoes-%s.pdf"`, stamp))
		ctx.Data(http.StatusOK, contentTypePDF, data)
	default:
		data, err := export.TransactionsXLSX(output.Transactions)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to render export",
			})
			return
		}
		ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transacoes-%s.xlsx"`, stamp))
		ctx.Data(http.StatusOK, contentTypeXLSX, data)
	}
}
