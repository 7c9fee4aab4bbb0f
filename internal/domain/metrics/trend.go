package metrics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
)

// Timeframe selects the window of a balance trend.
type Timeframe string

const (
	TimeframeSixMonths    Timeframe = "6m"
	TimeframeTwelveMonths Timeframe = "12m"
	TimeframeYearToDate   Timeframe = "ytd"
)

// IsValid reports whether the timeframe is a known value.
func (t Timeframe) IsValid() bool {
	return t == TimeframeSixMonths || t == TimeframeTwelveMonths || t == TimeframeYearToDate
}

// TrendPoint is one calendar-month bucket of a balance trend.
type TrendPoint struct {
	Month          time.Time // first day of the bucket month, UTC
	Label          string    // e.g. "Mar 2025"
	Income         decimal.Decimal
	Expense        decimal.Decimal
	Net            decimal.Decimal // income - expense within the bucket
	RunningBalance decimal.Decimal // cumulative net across the window
}

var monthAbbreviations = [...]string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// BalanceTrend buckets transactions into calendar months within the
// requested window and computes per-bucket income, expense and net balance
// plus a running balance. The series is gapless: months with no
// transactions appear with zero values. now anchors the window so callers
// (and tests) control the clock.
func BalanceTrend(transactions []*entity.Transaction, timeframe Timeframe, now time.Time) ([]TrendPoint, error) {
	var start time.Time
	end := monthStart(now)

	switch timeframe {
	case TimeframeSixMonths:
		start = end.AddDate(0, -5, 0)
	case TimeframeTwelveMonths:
		start = end.AddDate(0, -11, 0)
	case TimeframeYearToDate:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTimeframe,
			"timeframe must be '6m', '12m', or 'ytd'",
			domainerror.ErrInvalidTimeframe,
		)
	}

	buckets := make(map[time.Time]*TrendPoint)
	for _, tx := range transactions {
		bucket := monthStart(tx.Date)
		if bucket.Before(start) || bucket.After(end) {
			continue
		}
		point, ok := buckets[bucket]
		if !ok {
			point = &TrendPoint{Month: bucket}
			buckets[bucket] = point
		}
		if tx.Type == entity.TransactionTypeIncome {
			point.Income = point.Income.Add(tx.Amount)
		} else {
			point.Expense = point.Expense.Add(tx.Amount)
		}
	}

	// Emit every month in the window so chart rendering has no gaps.
	var points []TrendPoint
	running := decimal.Zero
	for month := start; !month.After(end); month = month.AddDate(0, 1, 0) {
		point := TrendPoint{
			Month:   month,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		if bucketed, ok := buckets[month]; ok {
			point.Income = bucketed.Income
			point.Expense = bucketed.Expense
		}
		point.Net = point.Income.Sub(point.Expense)
		running = running.Add(point.Net)
		point.RunningBalance = running
		point.Label = fmt.Sprintf("%s %d", monthAbbreviations[month.Month()], month.Year())
		points = append(points, point)
	}

	return points, nil
}

// monthStart truncates a time to the first day of its month in UTC.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
