package config

import (
	"fmt"
	"os"

	"github.com/jwanderson/weddingsite/internal/repository"
)

// Store backends the server can run against.
const (
	StoreSheets   = "sheets"
	StorePostgres = "postgres"
	StoreMem      = "mem"
)

// Config holds all configuration for the application.
type Config struct {
	Port         string
	LogLevel     string
	StoreBackend string
	WriteMode    repository.WriteMode

	// Postgres backend.
	DatabaseURL string

	// Google Sheets backend. The private key may contain literal `\n`
	// sequences, as produced when pasting a service-account key into an
	// environment variable; the sheets client unescapes them.
	SpreadsheetID     string
	SheetsClientEmail string
	SheetsPrivateKey  string
}

// Load loads configuration from environment variables. Credentials that
// the selected store backend needs are required here, at startup, so a
// misconfigured deployment fails before it serves a single request.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		StoreBackend: getEnvOrDefault("STORE_BACKEND", StoreSheets),
		WriteMode:    repository.WriteMode(getEnvOrDefault("RSVP_WRITE_MODE", string(repository.WriteModeReplace))),
	}

	if cfg.WriteMode != repository.WriteModeReplace && cfg.WriteMode != repository.WriteModeAppend {
		return nil, fmt.Errorf("RSVP_WRITE_MODE must be %q or %q", repository.WriteModeReplace, repository.WriteModeAppend)
	}

	switch cfg.StoreBackend {
	case StoreSheets:
		if cfg.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"); cfg.SpreadsheetID == "" {
			return nil, fmt.Errorf("GOOGLE_SHEETS_SPREADSHEET_ID environment variable is required")
		}
		if cfg.SheetsClientEmail = os.Getenv("GOOGLE_SHEETS_CLIENT_EMAIL"); cfg.SheetsClientEmail == "" {
			return nil, fmt.Errorf("GOOGLE_SHEETS_CLIENT_EMAIL environment variable is required")
		}
		if cfg.SheetsPrivateKey = os.Getenv("GOOGLE_SHEETS_PRIVATE_KEY"); cfg.SheetsPrivateKey == "" {
			return nil, fmt.Errorf("GOOGLE_SHEETS_PRIVATE_KEY environment variable is required")
		}
	case StorePostgres:
		if cfg.DatabaseURL = os.Getenv("DATABASE_URL"); cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StoreMem:
		// Nothing to configure; fixture data is compiled in.
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
