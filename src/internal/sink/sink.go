// FILE: fslog/src/internal/sink/sink.go
package sink

import "time"

// Stats is a point-in-time snapshot of a sink's counters, safe to
// take while the host loop is writing.
type Stats struct {
	Path           string        `json:"path"`
	Enabled        bool          `json:"enabled"`
	Open           bool          `json:"open"`
	SizeBytes      int64         `json:"size_bytes"`
	PendingBytes   int64         `json:"pending_bytes"`
	TotalRecords   uint64        `json:"total_records"`
	TotalBytes     uint64        `json:"total_bytes"`
	DroppedRecords uint64        `json:"dropped_records"`
	Syncs          uint64        `json:"syncs"`
	OpenFailures   uint64        `json:"open_failures"`
	FlushMaxBytes  int64         `json:"flush_max_bytes"`
	FlushInterval  time.Duration `json:"flush_interval_ns"`
}
