// Package sqlite implements the blob store on a single-file SQLite database.
package sqlite

import (
	"database/sql"

	"lifetrack/internal/errors"
	"lifetrack/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store implements storage.Store backed by a blobs table.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and runs pending migrations.
// Use ":memory:" for an ephemeral store.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewPersistenceError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewPersistenceError("run migrations", err)
	}

	return &Store{db: db}, nil
}

// Get returns the blob stored under key.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.NewPersistenceError("get blob", err).WithContext("key", key)
	}
	return value, true, nil
}

// Set stores the blob under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	query := `
	INSERT INTO blobs (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := s.db.Exec(query, key, value); err != nil {
		return errors.NewPersistenceError("set blob", err).WithContext("key", key)
	}
	return nil
}

// Remove deletes the key. Removing a missing key is a no-op.
func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return errors.NewPersistenceError("remove blob", err).WithContext("key", key)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
