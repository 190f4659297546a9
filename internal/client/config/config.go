package config

import (
	"time"

	"github.com/dmitrijs2005/treekeeper/internal/logging"
)

// Config holds runtime settings for the treekeeper CLI.
//
// Fields:
//   - DataDir: directory holding the local database (created on start).
//   - DatabaseFile: database file name inside DataDir.
//   - NotificationTimeout: how long a notification stays visible.
//   - LogLevel: debug, info, warn or error.
//   - LogBackend: slog or zap.
type Config struct {
	DataDir             string
	DatabaseFile        string
	NotificationTimeout time.Duration
	LogLevel            string
	LogBackend          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.DatabaseFile = "treekeeper.db"
	c.NotificationTimeout = 3 * time.Second
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
