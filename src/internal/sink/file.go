// FILE: fslog/src/internal/sink/file.go
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"fslog/src/internal/core"
	"fslog/src/internal/dispatch"
	"fslog/src/internal/format"

	"github.com/lixenwraith/log"
)

// Writes formatted log records to a single append-only file, with a
// byte/time flush policy driven by the host's Tick calls.
//
// The write path, Tick, Clear and Close belong to one host goroutine.
// Stats, Size, Path and the enabled flag are safe to call from other
// goroutines. Failures never propagate out of the write path:
// the record is dropped and the failure goes to the diagnostic
// logger, never into this sink's own file.
type FileSink struct {
	path string
	dir  string

	enabled atomic.Bool

	file         *os.File // written only by the host goroutine, under mu
	truncateNext bool
	lastSync     time.Time
	now          func() time.Time

	mu          sync.Mutex // guards flush policy and cross-goroutine reads of file
	maxBytes    int64
	maxInterval time.Duration

	formatter format.Formatter
	logger    *log.Logger

	// Statistics
	pending        atomic.Int64
	totalRecords   atomic.Uint64
	totalBytes     atomic.Uint64
	droppedRecords atomic.Uint64
	syncCount      atomic.Uint64
	openFailures   atomic.Uint64
}

// Compile-time check that the sink is usable as a dispatch handler
var _ dispatch.Handler = (*FileSink)(nil)

// Options configures a file sink. Zero values select the defaults.
type Options struct {
	Directory   string        // default /log
	Name        string        // file name without extension
	Enabled     bool          // accept records immediately
	MaxBytes    int64         // flush when more bytes than this are pending
	MaxInterval time.Duration // flush when pending bytes are older than this
}

// Creates a new file sink. The path is derived once; the file itself
// is opened lazily on the first accepted record.
func NewFileSink(opts Options, formatter format.Formatter, logger *log.Logger) *FileSink {
	if opts.Directory == "" {
		opts.Directory = core.DefaultLogDirectory
	}
	if opts.Name == "" {
		opts.Name = "fslog"
		logger.Warn("msg", "No log name provided, using default",
			"component", "file_sink",
			"name", opts.Name)
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = core.DefaultFlushMaxBytes
	}
	if opts.MaxInterval <= 0 {
		opts.MaxInterval = core.DefaultFlushMaxSeconds * time.Second
	}

	s := &FileSink{
		path:         filepath.Join(opts.Directory, opts.Name+core.LogFileExtension),
		dir:          opts.Directory,
		truncateNext: true,
		now:          time.Now,
		maxBytes:     opts.MaxBytes,
		maxInterval:  opts.MaxInterval,
		formatter:    formatter,
		logger:       logger,
	}
	s.enabled.Store(opts.Enabled)
	return s
}

// Path returns the full log file path.
func (s *FileSink) Path() string {
	return s.path
}

// SetEnabled gates record acceptance. It never opens or closes the
// file; a disabled sink keeps its handle and resumes appending on
// re-enable.
func (s *FileSink) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

// Enabled reports whether records are currently accepted.
func (s *FileSink) Enabled() bool {
	return s.enabled.Load()
}

// ConfigureFlush replaces the flush policy. Takes effect on the next
// Tick.
func (s *FileSink) ConfigureFlush(maxBytes int64, maxInterval time.Duration) {
	s.mu.Lock()
	s.maxBytes = maxBytes
	s.maxInterval = maxInterval
	s.mu.Unlock()
}

// LogMessage implements dispatch.Handler. Disabled sinks drop the
// record outright, without buffering. Open and write failures are
// reported to the diagnostic logger and drop the record; an open
// failure is retried on the next call, a write failure is not.
func (s *FileSink) LogMessage(rec core.Record) {
	if !s.enabled.Load() {
		return
	}

	if err := s.ensureOpen(); err != nil {
		s.droppedRecords.Add(1)
		s.openFailures.Add(1)
		s.logger.Warn("msg", "Log file open failed",
			"component", "file_sink",
			"path", s.path,
			"error", err)
		return
	}

	line, err := s.formatter.Format(rec)
	if err != nil {
		s.droppedRecords.Add(1)
		s.logger.Error("msg", "Failed to format log record",
			"component", "file_sink",
			"error", err)
		return
	}

	n, err := s.file.Write(line)
	if err != nil {
		// Pending counter deliberately untouched: bytes that may have
		// landed are picked up by the next successful sync anyway.
		s.droppedRecords.Add(1)
		s.logger.Error("msg", "Log write failed",
			"component", "file_sink",
			"path", s.path,
			"error", err)
		return
	}

	s.pending.Add(int64(n))
	s.totalRecords.Add(1)
	s.totalBytes.Add(uint64(n))
}

// Tick evaluates the flush policy. The host must call it at a cadence
// finer than the configured interval. A sync is forced when pending
// bytes exceed the byte threshold, or when any bytes are pending and
// the interval since the last sync has elapsed. Both triggers reset
// together after a sync.
func (s *FileSink) Tick() {
	if s.file == nil {
		return
	}
	pending := s.pending.Load()
	if pending == 0 {
		return
	}

	s.mu.Lock()
	maxBytes, maxInterval := s.maxBytes, s.maxInterval
	s.mu.Unlock()

	if pending > maxBytes || s.now().Sub(s.lastSync) > maxInterval {
		if err := s.file.Sync(); err != nil {
			s.logger.Error("msg", "Log file sync failed",
				"component", "file_sink",
				"path", s.path,
				"error", err)
			return
		}
		s.pending.Store(0)
		s.lastSync = s.now()
		s.syncCount.Add(1)
	}
}

// Clear syncs and closes the file if open, deletes it, and arms
// truncation for the next open. Safe to call at any point in the
// lifecycle. A close error does not keep the stale file alive: the
// delete and the truncation arming happen regardless.
func (s *FileSink) Clear() error {
	closeErr := s.Close()
	s.truncateNext = true

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	return closeErr
}

// Size returns the current log file length in bytes: from the open
// handle when open, from the path otherwise, 0 when the file does not
// exist.
func (s *FileSink) Size() int64 {
	s.mu.Lock()
	f := s.file
	s.mu.Unlock()

	var (
		info os.FileInfo
		err  error
	)
	if f != nil {
		info, err = f.Stat()
	} else {
		info, err = os.Stat(s.path)
	}
	if err != nil {
		return 0
	}
	return info.Size()
}

// Close syncs and closes the file if open. Callers that registered
// the sink with a dispatch manager must remove it first, so no record
// can arrive against the closing handle.
func (s *FileSink) Close() error {
	f := s.file
	if f == nil {
		return nil
	}

	// Take the handle out of view before touching it, so a concurrent
	// stats snapshot never observes a handle mid-teardown.
	s.mu.Lock()
	s.file = nil
	s.mu.Unlock()
	s.pending.Store(0)

	if err := f.Sync(); err != nil {
		s.logger.Error("msg", "Sync on close failed",
			"component", "file_sink",
			"path", s.path,
			"error", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	return nil
}

// Stats returns a snapshot for the status surface.
func (s *FileSink) Stats() Stats {
	s.mu.Lock()
	maxBytes, maxInterval := s.maxBytes, s.maxInterval
	open := s.file != nil
	s.mu.Unlock()

	return Stats{
		Path:           s.path,
		Enabled:        s.enabled.Load(),
		Open:           open,
		SizeBytes:      s.Size(),
		PendingBytes:   s.pending.Load(),
		TotalRecords:   s.totalRecords.Load(),
		TotalBytes:     s.totalBytes.Load(),
		DroppedRecords: s.droppedRecords.Load(),
		Syncs:          s.syncCount.Load(),
		OpenFailures:   s.openFailures.Load(),
		FlushMaxBytes:  maxBytes,
		FlushInterval:  maxInterval,
	}
}

// ensureOpen opens the file on first use. The first open after
// construction or Clear truncates; any later reopen appends, so an
// enable/disable cycle never loses earlier records.
func (s *FileSink) ensureOpen() error {
	if s.file != nil {
		return nil
	}

	if err := EnsureDir(s.dir); err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE
	if s.truncateNext {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(s.path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.file = f
	s.mu.Unlock()
	s.truncateNext = false
	s.lastSync = s.now()

	s.logger.Debug("msg", "Log file opened",
		"component", "file_sink",
		"path", s.path,
		"truncated", flags&os.O_TRUNC != 0)
	return nil
}
