package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const DefaultLogLevel = "info"

// CatalogDBPath returns the catalog database path from REDPOINT_CATALOG_DB,
// falling back to $XDG_DATA_HOME/redpoint/catalog.db
func CatalogDBPath() string {
	if env := os.Getenv("REDPOINT_CATALOG_DB"); env != "" {
		return env
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "redpoint", "catalog.db")
}

// LogLevel returns the log level name from REDPOINT_LOG_LEVEL,
// falling back to DefaultLogLevel
func LogLevel() string {
	if env := os.Getenv("REDPOINT_LOG_LEVEL"); env != "" {
		return env
	}
	return DefaultLogLevel
}

// ParseLevel maps a level name to a slog level; unknown names mean info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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
