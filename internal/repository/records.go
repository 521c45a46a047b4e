package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"lifetrack/internal/dates"
	"lifetrack/internal/domain"
)

// transactionRecord is the persisted form of a ledger entry. Dates travel as
// ISO-8601 strings and amounts as bare JSON numbers; this is the only place
// where the wire format and the in-memory model differ.
type transactionRecord struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
}

// taskRecord is the persisted form of a todo entry.
type taskRecord struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
	DueDate   string `json:"dueDate"`
}

func toTransactionRecord(t domain.Transaction) transactionRecord {
	return transactionRecord{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      json.Number(t.Amount.String()),
		Description: t.Description,
		Date:        t.OccurredOn.String(),
	}
}

func fromTransactionRecord(r transactionRecord) (domain.Transaction, error) {
	if r.ID == "" {
		return domain.Transaction{}, fmt.Errorf("transaction record has no id")
	}
	kind := domain.EntryType(r.Type)
	if !kind.IsValid() {
		return domain.Transaction{}, fmt.Errorf("transaction %s has unknown type %q", r.ID, r.Type)
	}
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s has invalid amount %q: %w", r.ID, r.Amount, err)
	}
	occurredOn, err := dates.Parse(r.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", r.ID, err)
	}
	return domain.Transaction{
		ID:          r.ID,
		Type:        kind,
		Amount:      amount,
		Description: r.Description,
		OccurredOn:  occurredOn,
	}, nil
}

func toTaskRecord(t domain.Task) taskRecord {
	return taskRecord{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		DueDate:   t.DueDate.String(),
	}
}

func fromTaskRecord(r taskRecord) (domain.Task, error) {
	if r.ID == "" {
		return domain.Task{}, fmt.Errorf("task record has no id")
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s has invalid createdAt %q: %w", r.ID, r.CreatedAt, err)
	}
	dueDate, err := dates.Parse(r.DueDate)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %s: %w", r.ID, err)
	}
	return domain.Task{
		ID:        r.ID,
		Text:      r.Text,
		Completed: r.Completed,
		CreatedAt: createdAt,
		DueDate:   dueDate,
	}, nil
}
