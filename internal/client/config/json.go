package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/treekeeper/internal/flagx"
	"github.com/dmitrijs2005/treekeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as
// a string like "3s" or as integer nanoseconds. Empty fields leave the
// current value untouched.
type JsonConfig struct {
	DataDir             string          `json:"data_dir"`
	DatabaseFile        string          `json:"database_file"`
	NotificationTimeout *timex.Duration `json:"notification_timeout"`
	LogLevel            string          `json:"log_level"`
	LogBackend          string          `json:"log_backend"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag nothing is loaded. Read and unmarshal
// errors panic, like flag errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.NotificationTimeout != nil {
		cfg.NotificationTimeout = jc.NotificationTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
}
