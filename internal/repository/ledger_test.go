package repository

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetrack/internal/dates"
	"lifetrack/internal/domain"
	"lifetrack/internal/errors"
	"lifetrack/internal/storage"
)

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:          "a",
			Type:        domain.EntryIncome,
			Amount:      decimal.NewFromInt(100000),
			Description: "gaji",
			OccurredOn:  dates.MustParse("2024-01-01"),
		},
		{
			ID:          "b",
			Type:        domain.EntryExpense,
			Amount:      decimal.NewFromInt(40000),
			Description: "makan siang",
			OccurredOn:  dates.MustParse("2024-01-02"),
		},
	}
}

func TestLedgerRepository_LoadMissingKey(t *testing.T) {
	repo := NewLedgerRepository(storage.NewMemoryStore())
	got, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLedgerRepository_RoundTrip(t *testing.T) {
	repo := NewLedgerRepository(storage.NewMemoryStore())
	want := sampleTransactions()

	require.NoError(t, repo.Save(want))
	got, err := repo.Load()
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Type, got[i].Type)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].OccurredOn, got[i].OccurredOn)
		assert.True(t, want[i].Amount.Equal(got[i].Amount))
	}
}

func TestLedgerRepository_WireFormat(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewLedgerRepository(store)
	require.NoError(t, repo.Save(sampleTransactions()))

	raw, ok, err := store.Get(TransactionsKey)
	require.NoError(t, err)
	require.True(t, ok)

	var payload []map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload, 2)

	assert.Equal(t, "pemasukan", payload[0]["type"])
	assert.Equal(t, "pengeluaran", payload[1]["type"])
	assert.Equal(t, "2024-01-01", payload[0]["date"])
	// Amounts are bare JSON numbers, not quoted strings.
	assert.Equal(t, float64(100000), payload[0]["amount"])
}

func TestLedgerRepository_CorruptPayload(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(TransactionsKey, []byte(`{"not":"an array"}`)))

	_, err := NewLedgerRepository(store).Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCorruptState))
}

func TestLedgerRepository_CorruptRecord(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"missing id", `[{"type":"pemasukan","amount":1,"description":"x","date":"2024-01-01"}]`},
		{"unknown type", `[{"id":"a","type":"transfer","amount":1,"description":"x","date":"2024-01-01"}]`},
		{"bad date", `[{"id":"a","type":"pemasukan","amount":1,"description":"x","date":"tomorrow"}]`},
		{"bad amount", `[{"id":"a","type":"pemasukan","amount":"ten","description":"x","date":"2024-01-01"}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			require.NoError(t, store.Set(TransactionsKey, []byte(tc.payload)))

			_, err := NewLedgerRepository(store).Load()
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCorruptState))
		})
	}
}

func TestLedgerRepository_LegacyTimestampDates(t *testing.T) {
	// Payloads written by the original app carry full timestamps.
	store := storage.NewMemoryStore()
	payload := `[{"id":"a","type":"pemasukan","amount":100000,"description":"gaji","date":"2024-01-01T00:00:00Z"}]`
	require.NoError(t, store.Set(TransactionsKey, []byte(payload)))

	got, err := NewLedgerRepository(store).Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, dates.MustParse("2024-01-01"), got[0].OccurredOn)
}

func TestLedgerRepository_SaveEmpty(t *testing.T) {
	repo := NewLedgerRepository(storage.NewMemoryStore())
	require.NoError(t, repo.Save(nil))
	got, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
