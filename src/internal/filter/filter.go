// FILE: fslog/src/internal/filter/filter.go
package filter

import (
	"strings"
	"sync/atomic"

	"fslog/src/internal/core"
)

// Category overrides the severity threshold for one category subtree.
// The prefix matches the category itself and any dotted descendant:
// "app.gps" covers "app.gps" and "app.gps.nmea" but not "app.gpsx".
type Category struct {
	Prefix string
	Level  core.Level
}

// Set decides which records a handler accepts: a base severity
// threshold plus per-category overrides, most specific prefix wins.
type Set struct {
	base    core.Level
	filters []Category

	// Statistics
	totalChecked atomic.Uint64
	totalPassed  atomic.Uint64
}

// NewSet creates a filter set with the given base threshold.
func NewSet(base core.Level, filters ...Category) *Set {
	return &Set{base: base, filters: filters}
}

// Threshold returns the effective severity threshold for a category.
// Records without a category always use the base threshold.
func (s *Set) Threshold(category string) core.Level {
	level := s.base
	matched := -1

	for _, f := range s.filters {
		if !matches(f.Prefix, category) {
			continue
		}
		if len(f.Prefix) > matched {
			matched = len(f.Prefix)
			level = f.Level
		}
	}
	return level
}

// Accepts reports whether the record passes the set.
func (s *Set) Accepts(rec core.Record) bool {
	s.totalChecked.Add(1)
	if rec.Level >= core.LevelNone {
		return false
	}
	if rec.Level < s.Threshold(rec.Category) {
		return false
	}
	s.totalPassed.Add(1)
	return true
}

// GetStats returns counters for the status surface.
func (s *Set) GetStats() map[string]any {
	return map[string]any{
		"base_level":    s.base.String(),
		"filter_count":  len(s.filters),
		"total_checked": s.totalChecked.Load(),
		"total_passed":  s.totalPassed.Load(),
	}
}

func matches(prefix, category string) bool {
	if category == "" || prefix == "" {
		return false
	}
	if !strings.HasPrefix(category, prefix) {
		return false
	}
	return len(category) == len(prefix) || category[len(prefix)] == '.'
}
