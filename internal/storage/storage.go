package storage

import (
	"strings"

	"github.com/habitgenius/habitgenius/internal/logger"
	"github.com/habitgenius/habitgenius/internal/storage/postgres"
)

// NewStore selects a backend from the config value: a postgres:// URL
// picks PostgreSQL, a path ending in .json picks the JSON file store,
// anything else is treated as a SQLite database path.
func NewStore(config string) Provider {
	switch {
	case postgres.IsConnString(config):
		logger.Debug("Selected storage backend", "backend", "postgres")
		return NewPostgresStore(config)
	case strings.HasSuffix(config, ".json"):
		logger.Debug("Selected storage backend", "backend", "json", "path", config)
		return NewJSONStore(config)
	default:
		logger.Debug("Selected storage backend", "backend", "sqlite", "path", config)
		return NewSQLiteStore(config)
	}
}
