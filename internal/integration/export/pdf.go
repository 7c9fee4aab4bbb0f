package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
	"github.com/financas-pro/backend/internal/domain/metrics"
)

// Table styling shared by both reports.
var (
	headerFill = [3]int{37, 99, 235}
	stripeFill = [3]int{243, 244, 246}
)

// TransactionsPDF renders the given transactions as a PDF statement. Amounts
// are formatted in the user's currency.
func TransactionsPDF(transactions []*entity.Transaction, currency entity.Currency) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Relatório de Transações"))
	pdf.Ln(14)

	headers := []string{"Data", "Descrição", "Categoria", "Tipo", "Valor"}
	widths := []float64{25, 55, 40, 25, 45}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, tr(header), "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, tx := range transactions {
		fill := i%2 == 1
		pdf.SetFillColor(stripeFill[0], stripeFill[1], stripeFill[2])
		cells := []string{
			tx.Date.Format(dateLayout),
			tx.Description,
			tx.Category,
			typeLabel(tx.Type),
			FormatAmount(tx.Amount, currency),
		}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 7, tr(cell), "", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// NetWorthPDF renders a net-worth report from a snapshot: the account
// balance, each declared position, and the resulting total.
func NetWorthPDF(snapshot entity.NetWorthSnapshot, currency entity.Currency) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Relatório de Patrimônio"))
	pdf.Ln(14)

	writeSection := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
	}
	writeLine := func(name string, value decimal.Decimal) {
		pdf.CellFormat(120, 7, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(FormatAmount(value, currency)), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	writeSection("Saldo em conta")
	writeLine("Saldo", snapshot.Balance)
	pdf.Ln(3)

	if len(snapshot.Investments) > 0 {
		writeSection("Investimentos")
		for _, inv := range snapshot.Investments {
			writeLine(inv.Name, inv.MarketValue)
		}
		pdf.Ln(3)
	}

	if len(snapshot.PhysicalAssets) > 0 {
		writeSection("Bens físicos")
		for _, asset := range snapshot.PhysicalAssets {
			writeLine(asset.Name, asset.CurrentValue)
		}
		pdf.Ln(3)
	}

	if len(snapshot.Debts) > 0 {
		writeSection("Dívidas")
		for _, debt := range snapshot.Debts {
			writeLine(debt.Name, debt.Outstanding.Neg())
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 9, tr("Patrimônio líquido"), "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 9, tr(FormatAmount(metrics.NetWorth(snapshot), currency)), "T", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatAmount formats an amount with the symbol and digit grouping of the
// given currency. BRL and EUR use pt-BR style separators, USD uses en-US.
func FormatAmount(amount decimal.Decimal, currency entity.Currency) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var formatted string
	switch currency {
	case entity.CurrencyUSD:
		formatted = fmt.Sprintf("$%s.%s", groupDigits(intPart, ","), fracPart)
	case entity.CurrencyEUR:
		formatted = fmt.Sprintf("€ %s,%s", groupDigits(intPart, "."), fracPart)
	default:
		formatted = fmt.Sprintf("R$ %s,%s", groupDigits(intPart, "."), fracPart)
	}

	if negative {
		return "-" + formatted
	}
	return formatted
}

// groupDigits inserts the separator every three digits from the right.
func groupDigits(digits, separator string) string {
	if len(digits) <= 3 {
		return digits
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, separator)
}
