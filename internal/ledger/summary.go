// Package ledger derives read-only views over a transaction set: wallet
// balance, month-over-month expense comparison and category distributions.
// Every value is recomputed from the full set on each call; nothing here
// holds state or mutates the store.
package ledger

import (
	"sort"

	"wallet/internal/core"
)

// RecentIncomeLimit caps the recent-deposit history shown on the dashboard.
const RecentIncomeLimit = 5

const (
	TrendHigher Trend = "higher"
	TrendLower  Trend = "lower"
	TrendFlat   Trend = "no_change"
)

type (
	// Trend is the direction of the month-over-month expense change.
	Trend string

	// Summary is the dashboard view for a reference month.
	Summary struct {
		Month                 core.MonthBucket   `json:"-"`
		Balance               core.Money         `json:"balance"`
		MonthExpenses         core.Money         `json:"month_expenses"`
		PreviousMonthExpenses core.Money         `json:"previous_month_expenses"`
		ChangePercent         float64            `json:"change_percent"`
		Trend                 Trend              `json:"trend"`
		RecentIncomes         []core.Transaction `json:"recent_incomes"`
	}
)

// Summarize computes the dashboard summary for the given reference month
// from a snapshot of the full transaction set. An empty snapshot yields
// zero-valued totals and an empty recent list.
func Summarize(txs []core.Transaction, ref core.MonthBucket) Summary {
	prev := ref.Previous()

	var balance, current, previous int64
	for _, tx := range txs {
		balance += tx.Signed()
		if tx.Type != core.Expense {
			continue
		}
		switch {
		case ref.Contains(tx.Date):
			current += tx.Amount.Cents
		case prev.Contains(tx.Date):
			previous += tx.Amount.Cents
		}
	}

	change := PercentChange(previous, current)

	return Summary{
		Month:                 ref,
		Balance:               core.Money{Cents: balance},
		MonthExpenses:         core.Money{Cents: current},
		PreviousMonthExpenses: core.Money{Cents: previous},
		ChangePercent:         change,
		Trend:                 trendOf(change),
		RecentIncomes:         RecentIncomes(txs, RecentIncomeLimit),
	}
}

// PercentChange compares expense totals of two adjacent months. A previous
// month of zero with new spending reports a flat +100: there is no defined
// percentage change from zero, and the dashboard renders it as "spending
// appeared".
func PercentChange(previousCents, currentCents int64) float64 {
	switch {
	case previousCents > 0:
		return float64(currentCents-previousCents) / float64(previousCents) * 100
	case currentCents > 0:
		return 100
	default:
		return 0
	}
}

func trendOf(change float64) Trend {
	switch {
	case change > 0:
		return TrendHigher
	case change < 0:
		return TrendLower
	default:
		return TrendFlat
	}
}

// RecentIncomes returns up to limit income transactions, newest date first.
// The sort is stable so same-day deposits keep their store order.
func RecentIncomes(txs []core.Transaction, limit int) []core.Transaction {
	incomes := make([]core.Transaction, 0, limit)
	for _, tx := range txs {
		if tx.Type == core.Income {
			incomes = append(incomes, tx)
		}
	}
	sort.SliceStable(incomes, func(i, j int) bool {
		return incomes[i].Date.After(incomes[j].Date.Time)
	})
	if len(incomes) > limit {
		incomes = incomes[:limit]
	}
	return incomes
}

// Balance sums the signed contribution of every transaction, regardless of
// month.
func Balance(txs []core.Transaction) core.Money {
	var cents int64
	for _, tx := range txs {
		cents += tx.Signed()
	}
	return core.Money{Cents: cents}
}
