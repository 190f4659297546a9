package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvDataDir             = "TREEKEEPER_DATA_DIR"
	EnvDatabaseFile        = "TREEKEEPER_DATABASE_FILE"
	EnvNotificationTimeout = "TREEKEEPER_NOTIFICATION_TIMEOUT"
	EnvLogLevel            = "TREEKEEPER_LOG_LEVEL"
	EnvLogBackend          = "TREEKEEPER_LOG_BACKEND"
)

// envFile is loaded before the environment is read. A missing file is fine;
// variables already set in the process win over the file.
var envFile = ".env"

// parseEnv overlays Config with TREEKEEPER_* variables. The notification
// timeout accepts a duration ("5s") or whole seconds ("5").
func parseEnv(cfg *Config) {
	_ = godotenv.Load(envFile)

	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseFile); ok && v != "" {
		cfg.DatabaseFile = v
	}
	if v, ok := os.LookupEnv(EnvNotificationTimeout); ok && v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			panic(err)
		}
		cfg.NotificationTimeout = d
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogBackend); ok && v != "" {
		cfg.LogBackend = v
	}
}

func parseSeconds(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
