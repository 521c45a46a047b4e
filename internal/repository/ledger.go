// Package repository persists the entity collections through the blob store.
// Each collection lives under one key as a JSON array; every save
// re-serializes the whole collection.
package repository

import (
	"encoding/json"

	"lifetrack/internal/domain"
	"lifetrack/internal/errors"
	"lifetrack/internal/storage"
)

// TransactionsKey is the store key the ledger collection persists under.
const TransactionsKey = "transactions"

// LedgerRepository loads and saves the transaction collection.
type LedgerRepository struct {
	store storage.Store
}

// NewLedgerRepository creates a ledger repository over the given store.
func NewLedgerRepository(store storage.Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// Load returns the persisted transactions in stored order. A missing key
// yields an empty collection. Malformed payloads yield a CorruptState error.
func (r *LedgerRepository) Load() ([]domain.Transaction, error) {
	raw, ok, err := r.store.Get(TransactionsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []transactionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.NewCorruptStateError(TransactionsKey, err)
	}

	transactions := make([]domain.Transaction, 0, len(records))
	for _, record := range records {
		t, err := fromTransactionRecord(record)
		if err != nil {
			return nil, errors.NewCorruptStateError(TransactionsKey, err)
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// Save persists the whole collection, preserving order.
func (r *LedgerRepository) Save(transactions []domain.Transaction) error {
	records := make([]transactionRecord, len(transactions))
	for i, t := range transactions {
		records[i] = toTransactionRecord(t)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return errors.NewPersistenceError("encode transactions", err)
	}
	return r.store.Set(TransactionsKey, raw)
}
