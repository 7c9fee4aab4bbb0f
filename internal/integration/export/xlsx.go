// Package export renders transaction statements as XLSX and PDF files.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/financas-pro/backend/internal/domain/entity"
)

// transactionHeaders is the column layout of the transaction sheet.
var transactionHeaders = []string{
	"Data",
	"Descrição",
	"Categoria",
	"Tipo",
	"Valor",
	"Método de Pagamento",
	"Recorrência",
}

const (
	sheetName = "Transações"
	// dateLayout renders dates in pt-BR day-first order.
	dateLayout = "02/01/2006"
)

// typeLabel maps a transaction type to its report label.
func typeLabel(t entity.TransactionType) string {
	if t == entity.TransactionTypeIncome {
		return "Receita"
	}
	return "Despesa"
}

// TransactionsXLSX renders the given transactions as an XLSX workbook. The
// caller provides transactions already in the order they should appear.
func TransactionsXLSX(transactions []*entity.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, header := range transactionHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for row, tx := range transactions {
		amount, _ := tx.Amount.Float64()
		values := []interface{}{
			tx.Date.Format(dateLayout),
			tx.Description,
			tx.Category,
			typeLabel(tx.Type),
			amount,
			string(tx.PaymentMethod),
			string(tx.Recurrence),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := autoFitColumns(f, transactions); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// autoFitColumns widens each column to its longest cell plus padding.
func autoFitColumns(f *excelize.File, transactions []*entity.Transaction) error {
	widths := make([]int, len(transactionHeaders))
	for i, header := range transactionHeaders {
		widths[i] = len([]rune(header))
	}
	for _, tx := range transactions {
		cells := []string{
			tx.Date.Format(dateLayout),
			tx.Description,
			tx.Category,
			typeLabel(tx.Type),
			tx.Amount.StringFixed(2),
			string(tx.PaymentMethod),
			string(tx.Recurrence),
		}
		for i, cell := range cells {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width+2)); err != nil {
			return err
		}
	}
	return nil
}
