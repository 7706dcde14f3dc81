// FILE: fslog/src/internal/format/line_test.go
package format

import (
	"testing"

	"fslog/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func TestNew(t *testing.T) {
	logger := newTestLogger()

	t.Run("LineFormatter", func(t *testing.T) {
		f, err := New("line", logger)
		require.NoError(t, err)
		assert.Equal(t, "line", f.Name())
	})

	t.Run("DefaultToLine", func(t *testing.T) {
		f, err := New("", logger)
		require.NoError(t, err)
		assert.Equal(t, "line", f.Name())
	})

	t.Run("UnknownFormatter", func(t *testing.T) {
		f, err := New("xml", logger)
		assert.Error(t, err)
		assert.Nil(t, f)
	})
}

func TestLineFormatter_Format(t *testing.T) {
	f := NewLineFormatter(newTestLogger())

	t.Run("AllFieldsInOrder", func(t *testing.T) {
		rec := core.Record{
			Level:    core.LevelTrace,
			Message:  "fix acquired",
			Category: "app.gps.nmea",
			File:     "src/gps/nmea.cpp",
			Line:     128,
			Function: "void GPS::parseSentence(const char *buf)",
			Details:  "3D fix",
			Uptime:   12345,
			HasTime:  true,
			Code:     7,
			HasCode:  true,
		}

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t,
			"0000012345 [app.gps.nmea] nmea.cpp:128, parseSentence(): TRACE: fix acquired [code = 7, details = 3D fix]\n",
			string(out))
	})

	t.Run("MinimalRecord", func(t *testing.T) {
		rec := core.Record{Level: core.LevelInfo, Message: "hello"}

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t, "INFO: hello\n", string(out))
	})

	t.Run("TimestampZeroPadded", func(t *testing.T) {
		rec := core.Record{Level: core.LevelInfo, Message: "boot", Uptime: 7, HasTime: true}

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t, "0000000007 INFO: boot\n", string(out))
	})

	t.Run("FileWithoutLineOrFunction", func(t *testing.T) {
		rec := core.Record{Level: core.LevelWarn, Message: "m", File: "a/b/main.go"}

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t, "main.go: WARN: m\n", string(out))
	})

	t.Run("FileLineThenFunctionSeparator", func(t *testing.T) {
		rec := core.Record{
			Level:    core.LevelDebug,
			Message:  "m",
			File:     "loop.go",
			Line:     9,
			Function: "tick",
		}

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t, "loop.go:9, tick(): DEBUG: m\n", string(out))
	})

	t.Run("CodeOnly", func(t *testing.T) {
		rec := core.Record{Level: core.LevelError, Message: "io", Code: -5, HasCode: true}

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t, "ERROR: io [code = -5]\n", string(out))
	})

	t.Run("DetailsOnly", func(t *testing.T) {
		rec := core.Record{Level: core.LevelError, Message: "io", Details: "enospc"}

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t, "ERROR: io [details = enospc]\n", string(out))
	})

	t.Run("AbsentFieldsLeaveNoPlaceholders", func(t *testing.T) {
		rec := core.Record{Level: core.LevelInfo, Message: "m"}

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "[")
		assert.NotContains(t, string(out), "()")
	})

	t.Run("SingleTerminator", func(t *testing.T) {
		rec := core.Record{Level: core.LevelInfo, Message: "m"}

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t, byte('\n'), out[len(out)-1])
		assert.NotContains(t, string(out[:len(out)-1]), "\n")
	})
}

func TestBareFuncName(t *testing.T) {
	testCases := []struct {
		name     string
		sig      string
		expected string
	}{
		{"PlainName", "loop", "loop"},
		{"NameWithArgs", "loop(int n)", "loop"},
		{"ReturnTypeStripped", "void setup()", "setup"},
		{"QualifiedMethod", "bool GPS::poll(uint32_t timeout)", "GPS::poll"},
		{"PointerReturn", "const char *name(void)", "*name"},
		{"GoRuntimeName", "main.main", "main.main"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bareFuncName(tc.sig))
		})
	}
}
