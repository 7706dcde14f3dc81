// FILE: fslog/src/internal/tail/reader.go
package tail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"fslog/src/internal/core"

	"github.com/lixenwraith/log"
	"golang.org/x/time/rate"
)

// ErrNoLogFile reports a dump against a log file that does not exist.
var ErrNoLogFile = errors.New("log file does not exist")

// Reader extracts log data incrementally. It keeps a byte cursor
// across Dump calls so each call yields only what was appended since
// the previous one, and opens its own read-only handle so dumping
// never contends with the writer's handle.
//
// The cursor belongs to this instance. Independent readers over
// different files do not interact.
type Reader struct {
	path      string
	chunkSize int
	limiter   *rate.Limiter
	logger    *log.Logger

	mu     sync.Mutex
	cursor int64
}

// Options configures a dump reader. Zero values select the defaults.
type Options struct {
	ChunkSize       int     // bytes per read, default 1024
	ChunksPerSecond float64 // pacing; 0 disables the limiter
}

// NewReader creates a reader over the given log file path.
func NewReader(path string, opts Options, logger *log.Logger) *Reader {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = core.DefaultDumpChunkSize
	}

	r := &Reader{
		path:      path,
		chunkSize: opts.ChunkSize,
		logger:    logger,
	}
	if opts.ChunksPerSecond > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(opts.ChunksPerSecond), 1)
	}
	return r
}

// Dump streams file content from the cursor (or from the start when
// fromBeginning is set) to the sink in fixed-size chunks, yielding
// between chunks so a large dump cannot starve other work. The cursor
// advances after every chunk the sink accepted, so a delivered chunk
// is never re-delivered even when a later chunk fails. Returns the
// number of bytes delivered.
func (r *Reader) Dump(ctx context.Context, sink io.Writer, fromBeginning bool) (int64, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNoLogFile
		}
		return 0, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	r.mu.Lock()
	if fromBeginning {
		r.cursor = 0
	}
	offset := r.cursor
	r.mu.Unlock()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek %s to %d: %w", r.path, offset, err)
	}

	buf := make([]byte, r.chunkSize)
	var delivered int64

	for {
		if err := ctx.Err(); err != nil {
			return delivered, err
		}
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return delivered, err
			}
		}

		n, rerr := f.Read(buf)
		if n > 0 {
			if _, werr := sink.Write(buf[:n]); werr != nil {
				return delivered, fmt.Errorf("dump sink: %w", werr)
			}
			delivered += int64(n)

			r.mu.Lock()
			r.cursor += int64(n)
			r.mu.Unlock()
		}

		if rerr == io.EOF {
			return delivered, nil
		}
		if rerr != nil {
			return delivered, fmt.Errorf("read %s: %w", r.path, rerr)
		}
	}
}

// Rewind resets the cursor so the next incremental Dump re-delivers
// the whole file.
func (r *Reader) Rewind() {
	r.mu.Lock()
	r.cursor = 0
	r.mu.Unlock()
}

// Position returns the current cursor offset.
func (r *Reader) Position() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}
