package config

import (
	"fmt"
	"os"

	"lifetrack/internal/storage"
	"lifetrack/internal/storage/sqlite"
)

// CreateStore creates the blob store selected by the configuration.
func CreateStore(cfg *Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "sqlite":
		if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
		store, err := sqlite.New(cfg.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
