package domain

import (
	"github.com/shopspring/decimal"

	"lifetrack/internal/dates"
)

// EntryType classifies a ledger entry. The values are the wire strings the
// original data files use, so persisted state stays readable by both.
type EntryType string

const (
	EntryIncome  EntryType = "pemasukan"
	EntryExpense EntryType = "pengeluaran"
)

// IsValid reports whether the entry type is one of the two known kinds.
func (e EntryType) IsValid() bool {
	return e == EntryIncome || e == EntryExpense
}

// Transaction is a single ledger entry. Immutable after creation except for
// deletion; the kind is fixed at creation.
type Transaction struct {
	ID          string
	Type        EntryType
	Amount      decimal.Decimal
	Description string
	OccurredOn  dates.Date
}

// Signed returns the amount with the entry's sign applied: positive for
// income, negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == EntryExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
