// FILE: fslog/src/internal/format/format.go
package format

import (
	"fmt"

	"fslog/src/internal/core"

	"github.com/lixenwraith/log"
)

// Formatter transforms a log record into the bytes appended to the file.
type Formatter interface {
	// Format renders one record as a complete, terminated output unit
	Format(rec core.Record) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// New creates a Formatter by type name. Empty defaults to "line".
func New(name string, logger *log.Logger) (Formatter, error) {
	if name == "" {
		name = "line"
	}

	switch name {
	case "line":
		return NewLineFormatter(logger), nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
