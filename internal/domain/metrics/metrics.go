// Package metrics computes derived figures (balances, aggregates, trends)
// from in-memory transaction and goal collections. Every function here is
// pure: no I/O, no mutation of its inputs.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
)

// TotalBalance returns the net balance of the given transactions:
// the sum of income amounts minus the sum of expense amounts. The result
// does not depend on input order.
func TotalBalance(transactions []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.SignedAmount())
	}
	return total
}

// MonthlyTotals holds the income and expense sums for a single month.
type MonthlyTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyIncomeExpense sums income and expense separately over the
// transactions whose (month, year) equal the reference date's. Transactions
// outside the reference month contribute to neither sum.
func MonthlyIncomeExpense(transactions []*entity.Transaction, reference time.Time) MonthlyTotals {
	totals := MonthlyTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range transactions {
		if tx.Date.Year() != reference.Year() || tx.Date.Month() != reference.Month() {
			continue
		}
		if tx.Type == entity.TransactionTypeIncome {
			totals.Income = totals.Income.Add(tx.Amount)
		} else {
			totals.Expense = totals.Expense.Add(tx.Amount)
		}
	}
	return totals
}

// RecentActivity returns the n most recent transactions, date-descending.
// The sort is stable: same-date transactions keep their original order.
// The input slice is not modified.
func RecentActivity(transactions []*entity.Transaction, n int) []*entity.Transaction {
	sorted := SortByDateDesc(transactions)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// SortByDateDesc returns a new slice sorted by date descending with a stable
// sort, so transactions with equal timestamps keep insertion order.
func SortByDateDesc(transactions []*entity.Transaction) []*entity.Transaction {
	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// SortGoalsByTargetDate returns a new slice sorted by target date ascending
// with a stable sort.
func SortGoalsByTargetDate(goals []*entity.Goal) []*entity.Goal {
	sorted := make([]*entity.Goal, len(goals))
	copy(sorted, goals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TargetDate.Before(sorted[j].TargetDate)
	})
	return sorted
}

// CategoryTotal is one slice of the expense pie.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryBreakdown groups expense transactions by category and sums the
// amount per category. Income transactions are ignored. The result is
// ordered largest total first, category name breaking ties, so the output
// is deterministic.
func CategoryBreakdown(transactions []*entity.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// NetWorth computes balance + investment market values + physical asset
// values - outstanding debts.
func NetWorth(snapshot entity.NetWorthSnapshot) decimal.Decimal {
	total := snapshot.Balance
	for _, inv := range snapshot.Investments {
		total = total.Add(inv.MarketValue)
	}
	for _, asset := range snapshot.PhysicalAssets {
		total = total.Add(asset.CurrentValue)
	}
	for _, debt := range snapshot.Debts {
		total = total.Sub(debt.Outstanding)
	}
	return total
}
