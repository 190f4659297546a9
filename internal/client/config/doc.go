// Package config loads runtime configuration for the treekeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables TREEKEEPER_*, optionally preloaded from .env.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   data directory
//	-f string   database file name
//	-t int      notification timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "data_dir": "data",
//	  "database_file": "treekeeper.db",
//	  "notification_timeout": "3s",
//	  "log_level": "info",
//	  "log_backend": "slog"
//	}
package config
