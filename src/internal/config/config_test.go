// FILE: fslog/src/internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"fslog/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()

	assert.Equal(t, core.DefaultLogDirectory, cfg.Log.Directory)
	assert.Equal(t, "fslog", cfg.Log.Name)
	assert.Equal(t, int64(core.DefaultFlushMaxBytes), cfg.Flush.MaxBytes)
	assert.Equal(t, int64(core.DefaultFlushMaxSeconds), cfg.Flush.MaxSeconds)
	assert.Equal(t, 10*time.Second, cfg.Flush.Interval())
	assert.Equal(t, core.DefaultDumpChunkSize, cfg.Dump.ChunkSize)

	require.NoError(t, cfg.validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		errText string
	}{
		{"EmptyName", func(c *Config) { c.Log.Name = "" }, "log name"},
		{"EmptyDirectory", func(c *Config) { c.Log.Directory = "" }, "log directory"},
		{"BadLevel", func(c *Config) { c.Log.Level = "verbose" }, "log level"},
		{"BadFilterLevel", func(c *Config) {
			c.Log.Filters = []CategoryFilter{{Category: "app.gps", Level: "loud"}}
		}, "filter[0]"},
		{"EmptyFilterCategory", func(c *Config) {
			c.Log.Filters = []CategoryFilter{{Category: "", Level: "TRACE"}}
		}, "empty category"},
		{"ZeroMaxBytes", func(c *Config) { c.Flush.MaxBytes = 0 }, "max_bytes"},
		{"ZeroMaxSeconds", func(c *Config) { c.Flush.MaxSeconds = 0 }, "max_seconds"},
		{"ZeroChunkSize", func(c *Config) { c.Dump.ChunkSize = 0 }, "chunk_size"},
		{"BadStatusPort", func(c *Config) {
			c.Status.Enabled = true
			c.Status.Port = 70000
		}, "status port"},
		{"BadLoggingOutput", func(c *Config) { c.Logging.Output = "syslog" }, "logging output"},
		{"TinyDemoInterval", func(c *Config) { c.Demo.IntervalMS = 1 }, "demo interval"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaults()
			tc.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errText)
		})
	}
}

func TestValidate_FiltersAccepted(t *testing.T) {
	cfg := defaults()
	cfg.Log.Level = "NONE"
	cfg.Log.Filters = []CategoryFilter{
		{Category: "app.gps.nmea", Level: "TRACE"},
		{Category: "app.gps.ubx", Level: "TRACE"},
	}

	assert.NoError(t, cfg.validate())
}
