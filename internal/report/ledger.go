// Package report computes derived views over windowed entity sequences. All
// functions are pure: they never mutate their input and must be re-invoked
// whenever the filtered sequence changes.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"lifetrack/internal/domain"
)

// Summary holds the windowed ledger totals.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// Summarize computes income, expense and net totals over the given
// transactions.
func Summarize(transactions []domain.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case domain.EntryIncome:
			income = income.Add(t.Amount)
		case domain.EntryExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// BalancePoint is one step of the running-balance series. Position is
// 1-indexed over the date-sorted sequence.
type BalancePoint struct {
	Position int
	Balance  decimal.Decimal
}

// RunningBalance produces the cumulative net balance over the transactions
// sorted by date ascending. The sort is stable: same-day transactions
// accumulate in their original entry order, so the series is deterministic
// under date ties.
func RunningBalance(transactions []domain.Transaction) []BalancePoint {
	ordered := make([]domain.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OccurredOn.Before(ordered[j].OccurredOn)
	})

	points := make([]BalancePoint, 0, len(ordered))
	balance := decimal.Zero
	for i, t := range ordered {
		balance = balance.Add(t.Signed())
		points = append(points, BalancePoint{Position: i + 1, Balance: balance})
	}
	return points
}
