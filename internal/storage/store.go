// Package storage defines the string-keyed blob store the collections
// persist through. The store is a dumb byte sink: (de)serialization and all
// date handling happen one layer up, in the repositories.
package storage

import "sync"

// Store is a synchronous key/value blob store.
type Store interface {
	// Get returns the blob stored under key. The boolean reports whether the
	// key existed; a missing key is not an error.
	Get(key string) ([]byte, bool, error)

	// Set stores the blob under key, replacing any previous value.
	Set(key string, value []byte) error

	// Remove deletes the key. Removing a missing key is a no-op.
	Remove(key string) error

	// Close releases any resources held by the store.
	Close() error
}

// MemoryStore is an in-process Store used by tests and the "memory" backend.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns the blob stored under key.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set stores the blob under key.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

// Remove deletes the key.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
