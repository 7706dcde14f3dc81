// FILE: fslog/src/internal/config/config.go
package config

import (
	"time"

	"fslog/src/internal/core"
)

type Config struct {
	Log     LogConfig     `toml:"log"`
	Flush   FlushConfig   `toml:"flush"`
	Dump    DumpConfig    `toml:"dump"`
	Status  StatusConfig  `toml:"status"`
	Logging LoggingConfig `toml:"logging"`
	Demo    DemoConfig    `toml:"demo"`
}

// LogConfig describes the file sink and its registration with the
// dispatch manager.
type LogConfig struct {
	Directory string           `toml:"directory"`
	Name      string           `toml:"name"`
	Enabled   bool             `toml:"enabled"`
	Level     string           `toml:"level"`
	Filters   []CategoryFilter `toml:"filters"`
}

// CategoryFilter overrides the threshold for one category subtree.
type CategoryFilter struct {
	Category string `toml:"category"`
	Level    string `toml:"level"`
}

// FlushConfig is the sink's durability policy.
type FlushConfig struct {
	MaxBytes   int64 `toml:"max_bytes"`
	MaxSeconds int64 `toml:"max_seconds"`
}

func (f FlushConfig) Interval() time.Duration {
	return time.Duration(f.MaxSeconds) * time.Second
}

// DumpConfig drives the demo's periodic incremental dump.
type DumpConfig struct {
	ChunkSize       int     `toml:"chunk_size"`
	IntervalSeconds int     `toml:"interval_seconds"`
	ChunksPerSecond float64 `toml:"chunks_per_second"`
}

// StatusConfig configures the optional HTTP status endpoint.
type StatusConfig struct {
	Enabled bool   `toml:"enabled"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
}

// LoggingConfig configures the application's own diagnostics, the
// side channel that sink failures are reported to.
type LoggingConfig struct {
	Output    string `toml:"output"` // stdout, stderr, file, none
	Level     string `toml:"level"`
	Directory string `toml:"directory"`
	Name      string `toml:"name"`
}

// DemoConfig drives the synthetic traffic generator.
type DemoConfig struct {
	Enabled        bool  `toml:"enabled"`
	IntervalMS     int64 `toml:"interval_ms"`
	ClearOnStartup bool  `toml:"clear_on_startup"`
}

func defaults() *Config {
	return &Config{
		Log: LogConfig{
			Directory: core.DefaultLogDirectory,
			Name:      "fslog",
			Enabled:   true,
			Level:     "INFO",
		},
		Flush: FlushConfig{
			MaxBytes:   core.DefaultFlushMaxBytes,
			MaxSeconds: core.DefaultFlushMaxSeconds,
		},
		Dump: DumpConfig{
			ChunkSize:       core.DefaultDumpChunkSize,
			IntervalSeconds: 30,
			ChunksPerSecond: 0,
		},
		Status: StatusConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    8080,
		},
		Logging: LoggingConfig{
			Output: "stderr",
			Level:  "info",
		},
		Demo: DemoConfig{
			Enabled:        true,
			IntervalMS:     1000,
			ClearOnStartup: true,
		},
	}
}
