package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseList is where the report and build commands look for the
	// base word list when nothing else is configured.
	DefaultBaseList = "base_filtered.txt"

	// DefaultOutDir receives blocklist.json, words.txt and merkle-proofs.json.
	DefaultOutDir = "dictionary"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	BaseList string     // base word list, e.g. base_filtered.txt
	OutDir   string     // output directory for build artifacts
	LogLevel slog.Level // SPELLBLOCK_LOG_LEVEL
}

// LoadConfig reads .env (if present) then SPELLBLOCK_* environment variables.
func LoadConfig() Config {
	// Best-effort: a missing .env is fine.
	_ = godotenv.Load()

	cfg := Config{
		BaseList: strings.TrimSpace(os.Getenv("SPELLBLOCK_BASE_LIST")),
		OutDir:   strings.TrimSpace(os.Getenv("SPELLBLOCK_OUT_DIR")),
		LogLevel: parseLevel(os.Getenv("SPELLBLOCK_LOG_LEVEL")),
	}
	if cfg.BaseList == "" {
		cfg.BaseList = DefaultBaseList
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	return cfg
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
