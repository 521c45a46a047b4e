package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds all configuration options for the application
type Config struct {
	Storage StorageConfig
	Auth    AuthConfig
	Chat    ChatConfig
	Display DisplayConfig
}

// StorageConfig holds blob-store configuration
type StorageConfig struct {
	Backend  string `env:"LT_STORAGE_BACKEND"`
	Dir      string `env:"LT_DB_DIR"`
	Filename string `env:"LT_DB_FILENAME"`
}

// AuthConfig holds PIN-gate configuration
type AuthConfig struct {
	PIN string `env:"LT_PIN"`
}

// ChatConfig holds assistant configuration
type ChatConfig struct {
	ReplyDelay time.Duration `env:"LT_CHAT_REPLY_DELAY"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	CurrencyPrefix string `env:"LT_DISPLAY_CURRENCY"`
	DateFormat     string `env:"LT_DISPLAY_DATE_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".lt")

	return &Config{
		Storage: StorageConfig{
			Backend:  "sqlite",
			Dir:      defaultDir,
			Filename: "lt.db",
		},
		Auth: AuthConfig{
			PIN: "1304",
		},
		Chat: ChatConfig{
			ReplyDelay: time.Second,
		},
		Display: DisplayConfig{
			CurrencyPrefix: "Rp",
			DateFormat:     "2006-01-02",
		},
	}
}

// LoadFromEnvironment overrides configuration values from LT_* variables
func (c *Config) LoadFromEnvironment() error {
	if v := os.Getenv("LT_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("LT_DB_DIR"); v != "" {
		c.Storage.Dir = v
	}
	if v := os.Getenv("LT_DB_FILENAME"); v != "" {
		c.Storage.Filename = v
	}
	if v := os.Getenv("LT_PIN"); v != "" {
		c.Auth.PIN = v
	}
	if v := os.Getenv("LT_CHAT_REPLY_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LT_CHAT_REPLY_DELAY %q: %w", v, err)
		}
		c.Chat.ReplyDelay = d
	}
	if v := os.Getenv("LT_DISPLAY_CURRENCY"); v != "" {
		c.Display.CurrencyPrefix = v
	}
	if v := os.Getenv("LT_DISPLAY_DATE_FORMAT"); v != "" {
		c.Display.DateFormat = v
	}
	return nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	var problems []string

	switch c.Storage.Backend {
	case "sqlite", "memory":
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be sqlite or memory", c.Storage.Backend))
	}

	if c.Storage.Backend == "sqlite" {
		if c.Storage.Dir == "" {
			problems = append(problems, "storage dir must not be empty")
		}
		if c.Storage.Filename == "" {
			problems = append(problems, "storage filename must not be empty")
		}
	}

	if len(c.Auth.PIN) < 4 {
		problems = append(problems, "PIN must be at least 4 characters")
	}

	if c.Chat.ReplyDelay < 0 {
		problems = append(problems, "chat reply delay must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}
