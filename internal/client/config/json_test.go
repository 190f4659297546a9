package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"data_dir":             "/srv/trees",
		"notification_timeout": "10s",
		"log_backend":          "zap",
	})

	t.Run("loads from flags", func(t *testing.T) {
		isolate(t, "-config", pathFlag)

		cfg := &Config{DatabaseFile: "keep.db"}
		parseJson(cfg)

		assert.Equal(t, "/srv/trees", cfg.DataDir)
		assert.Equal(t, 10*time.Second, cfg.NotificationTimeout)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Equal(t, "keep.db", cfg.DatabaseFile, "absent field keeps its value")
	})

	t.Run("nanosecond timeout", func(t *testing.T) {
		p := writeTempJSON(t, dir, "ns.json", map[string]any{"notification_timeout": 2_000_000_000})
		isolate(t, "-c", p)

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, 2*time.Second, cfg.NotificationTimeout)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		isolate(t)

		cfg := &Config{DataDir: "defaults", NotificationTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "defaults", cfg.DataDir)
		assert.Equal(t, 42*time.Second, cfg.NotificationTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		isolate(t, "-config", bad)

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		isolate(t, "-c", filepath.Join(dir, "nope.json"))

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
