package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/financas-pro/backend/internal/domain/entity"
)

func sampleTransactions() []*entity.Transaction {
	userID := uuid.New()
	return []*entity.Transaction{
		entity.NewTransaction(userID, decimal.NewFromInt(3500),
			time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			"Salário", "Salário Mensal", entity.TransactionTypeIncome,
			entity.PaymentMethodBankTransfer, entity.RecurrenceMonthly, []string{"trabalho"}),
		entity.NewTransaction(userID, decimal.RequireFromString("75.50"),
			time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			"Transporte", "Gasolina", entity.TransactionTypeExpense,
			entity.PaymentMethodCreditCard, entity.RecurrenceNone, nil),
	}
}

func TestTransactionsXLSX(t *testing.T) {
	data, err := TransactionsXLSX(sampleTransactions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty workbook")
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated workbook does not open: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows("Transações")
	if err != nil {
		t.Fatalf("expected sheet Transações: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	if rows[0][0] != "Data" || rows[0][1] != "Descrição" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "01/03/2026" {
		t.Errorf("expected date 01/03/2026, got %q", rows[1][0])
	}
	if rows[1][3] != "Receita" {
		t.Errorf("expected type label Receita, got %q", rows[1][3])
	}
	if rows[2][3] != "Despesa" {
		t.Errorf("expected type label Despesa, got %q", rows[2][3])
	}
}

func TestTransactionsXLSX_Empty(t *testing.T) {
	data, err := TransactionsXLSX(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated workbook does not open: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows("Transações")
	if err != nil {
		t.Fatalf("expected sheet Transações: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}

func TestTransactionsPDF(t *testing.T) {
	data, err := TransactionsPDF(sampleTransactions(), entity.CurrencyBRL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("expected output to start with the PDF magic")
	}
}

func TestNetWorthPDF(t *testing.T) {
	snapshot := entity.NetWorthSnapshot{
		Balance: decimal.RequireFromString("1824.50"),
		Investments: []entity.Investment{
			{Name: "Tesouro Direto", MarketValue: decimal.NewFromInt(10000)},
		},
		Debts: []entity.Debt{
			{Name: "Financiamento", Outstanding: decimal.NewFromInt(5000)},
		},
	}

	data, err := NetWorthPDF(snapshot, entity.CurrencyBRL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("expected output to start with the PDF magic")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency entity.Currency
		want     string
	}{
		{"brl with thousands", "1234.56", entity.CurrencyBRL, "R$ 1.234,56"},
		{"brl small", "75.50", entity.CurrencyBRL, "R$ 75,50"},
		{"brl millions", "1234567.89", entity.CurrencyBRL, "R$ 1.234.567,89"},
		{"usd", "1234.56", entity.CurrencyUSD, "$1,234.56"},
		{"eur", "1234.56", entity.CurrencyEUR, "€ 1.234,56"},
		{"negative", "-400.00", entity.CurrencyBRL, "-R$ 400,00"},
		{"zero", "0", entity.CurrencyUSD, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmount(decimal.RequireFromString(tt.amount), tt.currency)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1.234"},
		{"1234567", "1.234.567"},
	}

	for _, tt := range tests {
		if got := groupDigits(tt.in, "."); got != tt.want {
			t.Errorf("groupDigits(%q): expected %q, got %q", tt.in, got, tt.want)
		}
	}
}
