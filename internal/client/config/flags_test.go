package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"-d", "/tmp/trees", "-f", "x.db", "-t", "10", "-l", "debug"}, expectPanic: false,
			expected: &Config{DataDir: "/tmp/trees", DatabaseFile: "x.db", NotificationTimeout: 10 * time.Second, LogLevel: "debug"}},
		{name: "Test2 config flag ignored", args: []string{"-c", "cfg.json", "-d", "/tmp/trees"}, expectPanic: false,
			expected: &Config{DataDir: "/tmp/trees"}},
		{name: "Test3 incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, tt.args...)

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutWithoutFlag(t *testing.T) {
	isolate(t, "-l", "warn")

	config := &Config{NotificationTimeout: 1500 * time.Millisecond}
	parseFlags(config)

	assert.Equal(t, 1500*time.Millisecond, config.NotificationTimeout)
	assert.Equal(t, "warn", config.LogLevel)
}
