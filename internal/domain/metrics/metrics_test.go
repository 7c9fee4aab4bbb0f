package metrics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
)

func newTransaction(t *testing.T, txType entity.TransactionType, amount string, category string, date time.Time) *entity.Transaction {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid amount %q: %v", amount, err)
	}

	return entity.NewTransaction(
		uuid.New(),
		value,
		date,
		category,
		category+" transaction",
		txType,
		entity.PaymentMethodPix,
		entity.RecurrenceNone,
		nil,
	)
}

// demoDataset mirrors the seeded demo account: one salary income plus four
// expenses in the current month.
func demoDataset(t *testing.T, month time.Time) []*entity.Transaction {
	t.Helper()

	day := func(d int) time.Time {
		return time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, time.UTC)
	}

	return []*entity.Transaction{
		newTransaction(t, entity.TransactionTypeIncome, "3500", "Salário", day(1)),
		newTransaction(t, entity.TransactionTypeExpense, "1200", "Moradia", day(2)),
		newTransaction(t, entity.TransactionTypeExpense, "75.50", "Transporte", day(5)),
		newTransaction(t, entity.TransactionTypeExpense, "250", "Alimentação", day(10)),
		newTransaction(t, entity.TransactionTypeExpense, "150", "Lazer", day(12)),
	}
}

func TestTotalBalance(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty set has zero balance", func(t *testing.T) {
		if got := TotalBalance(nil); !got.IsZero() {
			t.Errorf("expected zero balance, got %s", got)
		}
	})

	t.Run("income minus expenses", func(t *testing.T) {
		transactions := demoDataset(t, month)

		got := TotalBalance(transactions)
		want := decimal.RequireFromString("1824.50")

		if !got.Equal(want) {
			t.Errorf("expected balance %s, got %s", want, got)
		}
	})

	t.Run("order independent", func(t *testing.T) {
		transactions := demoDataset(t, month)

		forward := TotalBalance(transactions)

		reversed := make([]*entity.Transaction, len(transactions))
		for i, tx := range transactions {
			reversed[len(transactions)-1-i] = tx
		}
		backward := TotalBalance(reversed)

		if !forward.Equal(backward) {
			t.Errorf("balance depends on order: %s vs %s", forward, backward)
		}
	})

	t.Run("expense only is negative", func(t *testing.T) {
		expense := newTransaction(t, entity.TransactionTypeExpense, "99.90", "Lazer", month)

		got := TotalBalance([]*entity.Transaction{expense})
		want := decimal.RequireFromString("-99.90")

		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestMonthlyIncomeExpense(t *testing.T) {
	reference := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("only the reference month counts", func(t *testing.T) {
		transactions := demoDataset(t, reference)
		transactions = append(transactions,
			newTransaction(t, entity.TransactionTypeIncome, "9999", "Salário",
				time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)),
			newTransaction(t, entity.TransactionTypeExpense, "500", "Moradia",
				time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)),
		)

		totals := MonthlyIncomeExpense(transactions, reference)

		if want := decimal.NewFromInt(3500); !totals.Income.Equal(want) {
			t.Errorf("expected income %s, got %s", want, totals.Income)
		}
		if want := decimal.RequireFromString("1675.50"); !totals.Expense.Equal(want) {
			t.Errorf("expected expense %s, got %s", want, totals.Expense)
		}
	})

	t.Run("same month of a different year is excluded", func(t *testing.T) {
		lastYear := newTransaction(t, entity.TransactionTypeIncome, "100", "Salário",
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

		totals := MonthlyIncomeExpense([]*entity.Transaction{lastYear}, reference)

		if !totals.Income.IsZero() {
			t.Errorf("expected zero income, got %s", totals.Income)
		}
	})

	t.Run("empty month yields zero totals", func(t *testing.T) {
		totals := MonthlyIncomeExpense(nil, reference)

		if !totals.Income.IsZero() || !totals.Expense.IsZero() {
			t.Errorf("expected zero totals, got income=%s expense=%s", totals.Income, totals.Expense)
		}
	})
}

func TestRecentActivity(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns n most recent date-descending", func(t *testing.T) {
		transactions := demoDataset(t, month)

		recent := RecentActivity(transactions, 3)

		if len(recent) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(recent))
		}
		for i := 1; i < len(recent); i++ {
			if recent[i].Date.After(recent[i-1].Date) {
				t.Errorf("transactions not date-descending at index %d", i)
			}
		}
		if recent[0].Category != "Lazer" {
			t.Errorf("expected most recent category Lazer, got %s", recent[0].Category)
		}
	})

	t.Run("n larger than set returns all", func(t *testing.T) {
		transactions := demoDataset(t, month)

		recent := RecentActivity(transactions, 50)

		if len(recent) != len(transactions) {
			t.Errorf("expected %d transactions, got %d", len(transactions), len(recent))
		}
	})

	t.Run("equal dates keep insertion order", func(t *testing.T) {
		first := newTransaction(t, entity.TransactionTypeExpense, "10", "Lazer", month)
		second := newTransaction(t, entity.TransactionTypeExpense, "20", "Lazer", month)

		recent := RecentActivity([]*entity.Transaction{first, second}, 2)

		if recent[0].ID != first.ID || recent[1].ID != second.ID {
			t.Error("stable sort should preserve insertion order for equal dates")
		}
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		transactions := demoDataset(t, month)
		originalFirst := transactions[0].ID

		RecentActivity(transactions, 2)

		if transactions[0].ID != originalFirst {
			t.Error("input slice was reordered")
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("groups expenses and ignores income", func(t *testing.T) {
		transactions := demoDataset(t, month)
		transactions = append(transactions,
			newTransaction(t, entity.TransactionTypeExpense, "50", "Transporte", month),
		)

		breakdown := CategoryBreakdown(transactions)

		if len(breakdown) != 4 {
			t.Fatalf("expected 4 categories, got %d", len(breakdown))
		}
		for _, entry := range breakdown {
			if entry.Category == "Salário" {
				t.Error("income category must not appear in the breakdown")
			}
			if entry.Category == "Transporte" {
				if want := decimal.RequireFromString("125.50"); !entry.Total.Equal(want) {
					t.Errorf("expected Transporte total %s, got %s", want, entry.Total)
				}
			}
		}
	})

	t.Run("ordered largest first with name tiebreak", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTransaction(t, entity.TransactionTypeExpense, "100", "Lazer", month),
			newTransaction(t, entity.TransactionTypeExpense, "300", "Moradia", month),
			newTransaction(t, entity.TransactionTypeExpense, "100", "Alimentação", month),
		}

		breakdown := CategoryBreakdown(transactions)

		want := []string{"Moradia", "Alimentação", "Lazer"}
		for i, category := range want {
			if breakdown[i].Category != category {
				t.Errorf("position %d: expected %s, got %s", i, category, breakdown[i].Category)
			}
		}
	})

	t.Run("no expenses yields empty breakdown", func(t *testing.T) {
		income := newTransaction(t, entity.TransactionTypeIncome, "3500", "Salário", month)

		breakdown := CategoryBreakdown([]*entity.Transaction{income})

		if len(breakdown) != 0 {
			t.Errorf("expected empty breakdown, got %d entries", len(breakdown))
		}
	})
}

func TestNetWorth(t *testing.T) {
	t.Run("balance plus assets minus debts", func(t *testing.T) {
		snapshot := entity.NetWorthSnapshot{
			Balance: decimal.RequireFromString("1824.50"),
			Investments: []entity.Investment{
				{Name: "Tesouro Direto", MarketValue: decimal.NewFromInt(10000)},
				{Name: "Ações", MarketValue: decimal.NewFromInt(5000)},
			},
			PhysicalAssets: []entity.PhysicalAsset{
				{Name: "Carro", CurrentValue: decimal.NewFromInt(35000)},
			},
			Debts: []entity.Debt{
				{Name: "Financiamento", Outstanding: decimal.NewFromInt(20000)},
			},
		}

		got := NetWorth(snapshot)
		want := decimal.RequireFromString("31824.50")

		if !got.Equal(want) {
			t.Errorf("expected net worth %s, got %s", want, got)
		}
	})

	t.Run("debts can push net worth negative", func(t *testing.T) {
		snapshot := entity.NetWorthSnapshot{
			Balance: decimal.NewFromInt(100),
			Debts: []entity.Debt{
				{Name: "Empréstimo", Outstanding: decimal.NewFromInt(500)},
			},
		}

		got := NetWorth(snapshot)
		want := decimal.NewFromInt(-400)

		if !got.Equal(want) {
			t.Errorf("expected net worth %s, got %s", want, got)
		}
	})

	t.Run("empty snapshot equals balance", func(t *testing.T) {
		snapshot := entity.NetWorthSnapshot{Balance: decimal.NewFromInt(42)}

		if got := NetWorth(snapshot); !got.Equal(decimal.NewFromInt(42)) {
			t.Errorf("expected 42, got %s", got)
		}
	})
}

func TestSortGoalsByTargetDate(t *testing.T) {
	later := entity.NewGoal(uuid.New(), "Viagem", decimal.NewFromInt(5000), decimal.Zero,
		time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC))
	sooner := entity.NewGoal(uuid.New(), "Celular", decimal.NewFromInt(3000), decimal.Zero,
		time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC))

	sorted := SortGoalsByTargetDate([]*entity.Goal{later, sooner})

	if sorted[0].ID != sooner.ID {
		t.Errorf("expected earliest target date first, got %s", sorted[0].Name)
	}
	if sorted[1].ID != later.ID {
		t.Errorf("expected latest target date last, got %s", sorted[1].Name)
	}
}
