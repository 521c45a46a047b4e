package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetrack/internal/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_GetMissing(t *testing.T) {
	s := newTestStore(t)
	v, ok, err := s.Get("transactions")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestStore_SetGet(t *testing.T) {
	s := newTestStore(t)
	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, s.Set("transactions", payload))

	v, ok, err := s.Get("transactions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, v)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set("todos", []byte("old")))
	require.NoError(t, s.Set("todos", []byte("new")))

	v, ok, err := s.Get("todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), v)
}

func TestStore_Remove(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set("userPin", []byte("1304")))
	require.NoError(t, s.Remove("userPin"))

	_, ok, err := s.Get("userPin")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Remove("userPin"), "removing a missing key is a no-op")
}

func TestStore_KeysAreIndependent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set("transactions", []byte("a")))
	require.NoError(t, s.Set("todos", []byte("b")))
	require.NoError(t, s.Remove("transactions"))

	v, ok, err := s.Get("todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("b"), v)
}

func TestStore_ErrorsArePersistenceErrors(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())

	err := s.Set("k", []byte("v"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypePersistence))
}
