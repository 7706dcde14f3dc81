// FILE: fslog/src/internal/format/line.go
package format

import (
	"bytes"
	"fmt"
	"strings"

	"fslog/src/internal/core"

	"github.com/lixenwraith/log"
)

// Produces one newline-terminated text line per record.
//
// Field order when present:
//
//	0000012345 [app.gps.nmea] main.go:42, loop(): TRACE: message [code = 7, details = x]
//
// Absent optional fields are omitted entirely, separators included.
type LineFormatter struct {
	logger *log.Logger
}

// Creates a new line formatter
func NewLineFormatter(logger *log.Logger) *LineFormatter {
	return &LineFormatter{logger: logger}
}

// Format renders the record. It is pure: no formatter or writer state
// is read or mutated, so identical records always render identically.
func (f *LineFormatter) Format(rec core.Record) ([]byte, error) {
	var b bytes.Buffer

	if rec.HasTime {
		fmt.Fprintf(&b, "%010d ", rec.Uptime)
	}

	if rec.Category != "" {
		b.WriteByte('[')
		b.WriteString(rec.Category)
		b.WriteString("] ")
	}

	if rec.File != "" {
		b.WriteString(baseName(rec.File))
		if rec.Line > 0 {
			fmt.Fprintf(&b, ":%d", rec.Line)
		}
		if rec.Function != "" {
			b.WriteString(", ")
		} else {
			b.WriteString(": ")
		}
	}

	if rec.Function != "" {
		b.WriteString(bareFuncName(rec.Function))
		b.WriteString("(): ")
	}

	b.WriteString(rec.Level.String())
	b.WriteString(": ")
	b.WriteString(rec.Message)

	if rec.HasCode || rec.Details != "" {
		b.WriteString(" [")
		if rec.HasCode {
			fmt.Fprintf(&b, "code = %d", rec.Code)
		}
		if rec.Details != "" {
			if rec.HasCode {
				b.WriteString(", ")
			}
			b.WriteString("details = ")
			b.WriteString(rec.Details)
		}
		b.WriteByte(']')
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// Returns the formatter name
func (f *LineFormatter) Name() string {
	return "line"
}

// baseName strips the directory part of a source file path.
func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// bareFuncName reduces a function signature to the bare name: the
// argument list is everything from the first '(', the return type is
// everything up to the last space before the name.
func bareFuncName(sig string) string {
	name := sig
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, ' '); i >= 0 {
		name = name[i+1:]
	}
	return name
}
