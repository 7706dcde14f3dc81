// FILE: fslog/src/internal/filter/filter_test.go
package filter

import (
	"testing"

	"fslog/src/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestSet_Threshold(t *testing.T) {
	set := NewSet(core.LevelNone,
		Category{Prefix: "app.gps", Level: core.LevelDebug},
		Category{Prefix: "app.gps.nmea", Level: core.LevelTrace},
		Category{Prefix: "net", Level: core.LevelWarn},
	)

	testCases := []struct {
		name     string
		category string
		expected core.Level
	}{
		{"ExactMatch", "app.gps", core.LevelDebug},
		{"MostSpecificWins", "app.gps.nmea", core.LevelTrace},
		{"SubtreeInherits", "app.gps.ubx", core.LevelDebug},
		{"SiblingPrefixNoMatch", "app.gpsx", core.LevelNone},
		{"OtherSubtree", "net.ppp.client", core.LevelWarn},
		{"NoCategoryUsesBase", "", core.LevelNone},
		{"UnrelatedUsesBase", "system", core.LevelNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, set.Threshold(tc.category))
		})
	}
}

func TestSet_Accepts(t *testing.T) {
	set := NewSet(core.LevelInfo,
		Category{Prefix: "app.gps", Level: core.LevelTrace},
	)

	t.Run("BaseThresholdBlocks", func(t *testing.T) {
		assert.False(t, set.Accepts(core.Record{Level: core.LevelDebug, Category: "system"}))
	})

	t.Run("BaseThresholdPasses", func(t *testing.T) {
		assert.True(t, set.Accepts(core.Record{Level: core.LevelWarn, Category: "system"}))
	})

	t.Run("OverridePassesTrace", func(t *testing.T) {
		assert.True(t, set.Accepts(core.Record{Level: core.LevelTrace, Category: "app.gps.nmea"}))
	})

	t.Run("NoneLevelRecordNeverPasses", func(t *testing.T) {
		assert.False(t, set.Accepts(core.Record{Level: core.LevelNone}))
	})

	t.Run("NoneBaseBlocksEverythingOutsideOverrides", func(t *testing.T) {
		quiet := NewSet(core.LevelNone, Category{Prefix: "app.gps", Level: core.LevelTrace})
		assert.False(t, quiet.Accepts(core.Record{Level: core.LevelError, Category: "system"}))
		assert.True(t, quiet.Accepts(core.Record{Level: core.LevelTrace, Category: "app.gps"}))
	})
}
