// FILE: fslog/src/internal/dispatch/emitter.go
package dispatch

import (
	"fmt"
	"runtime"
	"strings"

	"fslog/src/internal/core"
)

// Emitter is a convenience producer bound to one category. It fills
// in source location and function name from the call site before
// handing the record to the manager.
type Emitter struct {
	m        *Manager
	category string
}

// Category returns an emitter for the given dotted category.
func (m *Manager) Category(name string) *Emitter {
	return &Emitter{m: m, category: name}
}

func (e *Emitter) Trace(format string, args ...any) { e.emit(core.LevelTrace, format, args...) }
func (e *Emitter) Debug(format string, args ...any) { e.emit(core.LevelDebug, format, args...) }
func (e *Emitter) Info(format string, args ...any)  { e.emit(core.LevelInfo, format, args...) }
func (e *Emitter) Warn(format string, args ...any)  { e.emit(core.LevelWarn, format, args...) }
func (e *Emitter) Error(format string, args ...any) { e.emit(core.LevelError, format, args...) }

// Code emits a record carrying a numeric code and details string.
func (e *Emitter) Code(level core.Level, code int64, details string, format string, args ...any) {
	rec := e.record(2, level, format, args...)
	rec.Code = code
	rec.HasCode = true
	rec.Details = details
	e.m.Dispatch(rec)
}

func (e *Emitter) emit(level core.Level, format string, args ...any) {
	e.m.Dispatch(e.record(3, level, format, args...))
}

// skip counts stack frames from record up to the emitting call site.
func (e *Emitter) record(skip int, level core.Level, format string, args ...any) core.Record {
	rec := core.Record{
		Level:    level,
		Message:  fmt.Sprintf(format, args...),
		Category: e.category,
	}

	if pc, file, line, ok := runtime.Caller(skip); ok {
		rec.File = file
		rec.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			rec.Function = shortFuncName(fn.Name())
		}
	}
	return rec
}

// shortFuncName reduces a runtime name like "pkg/path.(*Type).Method"
// to "Type.Method".
func shortFuncName(full string) string {
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.IndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}
	full = strings.ReplaceAll(full, "(*", "")
	return strings.ReplaceAll(full, ")", "")
}
