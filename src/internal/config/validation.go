// FILE: fslog/src/internal/config/validation.go
package config

import (
	"fmt"

	"fslog/src/internal/core"
)

func (c *Config) validate() error {
	if c.Log.Name == "" {
		return fmt.Errorf("log name must not be empty")
	}
	if c.Log.Directory == "" {
		return fmt.Errorf("log directory must not be empty")
	}
	if _, err := core.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	for i, f := range c.Log.Filters {
		if f.Category == "" {
			return fmt.Errorf("filter[%d]: empty category", i)
		}
		if _, err := core.ParseLevel(f.Level); err != nil {
			return fmt.Errorf("filter[%d] (%s): %w", i, f.Category, err)
		}
	}

	if c.Flush.MaxBytes <= 0 {
		return fmt.Errorf("flush max_bytes must be positive: %d", c.Flush.MaxBytes)
	}
	if c.Flush.MaxSeconds <= 0 {
		return fmt.Errorf("flush max_seconds must be positive: %d", c.Flush.MaxSeconds)
	}

	if c.Dump.ChunkSize <= 0 {
		return fmt.Errorf("dump chunk_size must be positive: %d", c.Dump.ChunkSize)
	}
	if c.Dump.IntervalSeconds <= 0 {
		return fmt.Errorf("dump interval_seconds must be positive: %d", c.Dump.IntervalSeconds)
	}
	if c.Dump.ChunksPerSecond < 0 {
		return fmt.Errorf("dump chunks_per_second must not be negative: %f", c.Dump.ChunksPerSecond)
	}

	if c.Status.Enabled {
		if c.Status.Port < 1 || c.Status.Port > 65535 {
			return fmt.Errorf("status port out of range: %d", c.Status.Port)
		}
	}

	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true, "none": true,
	}
	if !validOutputs[c.Logging.Output] {
		return fmt.Errorf("invalid logging output mode: %s", c.Logging.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	if c.Demo.Enabled && c.Demo.IntervalMS < 10 {
		return fmt.Errorf("demo interval too small: %d ms", c.Demo.IntervalMS)
	}

	return nil
}
