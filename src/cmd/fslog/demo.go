// FILE: fslog/src/cmd/fslog/demo.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"fslog/src/internal/core"
	"fslog/src/internal/dispatch"
	"fslog/src/internal/tail"

	"golang.org/x/term"
)

// run is the host loop: one goroutine drives the demo traffic, the
// flush policy tick and the periodic incremental dump, so writes and
// ticks are never concurrent with each other.
func (a *app) run(ctx context.Context) {
	flushTicker := time.NewTicker(time.Second)
	defer flushTicker.Stop()

	dumpTicker := time.NewTicker(time.Duration(a.cfg.Dump.IntervalSeconds) * time.Second)
	defer dumpTicker.Stop()

	var emitChan <-chan time.Time
	traffic := newDemoTraffic(a.manager)
	if a.cfg.Demo.Enabled {
		emitTicker := time.NewTicker(time.Duration(a.cfg.Demo.IntervalMS) * time.Millisecond)
		defer emitTicker.Stop()
		emitChan = emitTicker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-emitChan:
			traffic.emit()
		case <-flushTicker.C:
			a.fileSink.Tick()
		case <-dumpTicker.C:
			a.dumpNew(ctx)
		}
	}
}

// dumpNew streams everything appended since the previous dump to the
// console.
func (a *app) dumpNew(ctx context.Context) {
	logger.Info("msg", "Dumping logfile",
		"path", a.fileSink.Path(),
		"size", bytesToSize(a.fileSink.Size()))

	decorate := term.IsTerminal(int(os.Stdout.Fd()))
	if decorate {
		fmt.Println("\nbegin new data --->")
	}

	n, err := a.reader.Dump(ctx, os.Stdout, false)
	switch {
	case errors.Is(err, tail.ErrNoLogFile):
		logger.Warn("msg", "No logfile to dump", "path", a.fileSink.Path())
	case err != nil:
		logger.Error("msg", "Dump failed", "error", err)
	default:
		logger.Debug("msg", "Dump complete", "bytes", n)
	}

	if decorate {
		fmt.Println("---> end")
	}
}

// demoTraffic emits GPS-flavored records across a few categories so
// the category filters have something to select on.
type demoTraffic struct {
	nmea   *dispatch.Emitter
	ubx    *dispatch.Emitter
	system *dispatch.Emitter
	seq    int64
}

func newDemoTraffic(m *dispatch.Manager) *demoTraffic {
	return &demoTraffic{
		nmea:   m.Category("app.gps.nmea"),
		ubx:    m.Category("app.gps.ubx"),
		system: m.Category("system"),
	}
}

func (d *demoTraffic) emit() {
	d.seq++
	sats := 4 + d.seq%9

	d.nmea.Trace("$GPGGA,%06d.00,4717.113,N,00833.915,E,1,%02d,0.9,495.6,M,48.0,M,,",
		d.seq, sats)

	if d.seq%5 == 0 {
		d.ubx.Trace("NAV-PVT iTOW=%d fixType=3 numSV=%d", d.seq*1000, sats)
	}
	if d.seq%60 == 0 {
		d.system.Info("uptime checkpoint, %d sentences emitted", d.seq)
	}
	if d.seq%97 == 0 {
		d.ubx.Code(core.LevelWarn, -3, "checksum mismatch", "dropped UBX frame")
	}
}

func bytesToSize(bytes int64) string {
	switch {
	case bytes > 1000000:
		return fmt.Sprintf("%0.2f MB", float64(bytes)/1000000.0)
	case bytes > 1000:
		return fmt.Sprintf("%0.2f kB", float64(bytes)/1000.0)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
