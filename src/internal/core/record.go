// FILE: fslog/src/internal/core/record.go
package core

// Record is a single structured log record delivered to handlers.
// It is transient: produced per call, rendered, never stored.
//
// Optional string fields use "" as absent. Line uses 0 as absent.
// Uptime and Code keep an explicit presence flag because 0 is a
// legitimate value for both.
type Record struct {
	Level    Level
	Message  string
	Category string // hierarchical dotted label, e.g. "app.gps.nmea"
	File     string // source file path, basename is rendered
	Line     int
	Function string // raw signature, return/argument types are stripped
	Details  string
	Uptime   int64 // monotonic seconds since boot
	HasTime  bool
	Code     int64
	HasCode  bool
}
