// FILE: fslog/src/internal/dispatch/dispatch.go
package dispatch

import (
	"sync"
	"sync/atomic"
	"time"

	"fslog/src/internal/core"
	"fslog/src/internal/filter"

	"github.com/lixenwraith/log"
)

// Handler receives records that already passed the registration's
// severity threshold and category filters.
//
// The contract is a single synchronous callback; handlers own no part
// of the dispatch state. A handler must not emit records through the
// manager from inside LogMessage.
type Handler interface {
	LogMessage(rec core.Record)
}

type registration struct {
	handler Handler
	filters *filter.Set
}

// Manager routes records to registered handlers. Delivery is
// synchronous and in registration order.
type Manager struct {
	mu     sync.Mutex
	regs   []*registration
	start  time.Time
	logger *log.Logger

	// Statistics
	totalDispatched atomic.Uint64
	totalDelivered  atomic.Uint64
}

// NewManager creates a dispatch manager. Uptime stamping is relative
// to the moment of creation.
func NewManager(logger *log.Logger) *Manager {
	return &Manager{
		start:  time.Now(),
		logger: logger,
	}
}

// AddHandler registers a handler with a base severity threshold and
// optional per-category overrides.
func (m *Manager) AddHandler(h Handler, level core.Level, filters ...filter.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.regs = append(m.regs, &registration{
		handler: h,
		filters: filter.NewSet(level, filters...),
	})

	m.logger.Debug("msg", "Handler registered",
		"component", "dispatch",
		"level", level.String(),
		"filter_count", len(filters))
}

// RemoveHandler unregisters a handler. Callers tear handlers down by
// removing first and closing after, so no record can arrive against a
// handle mid-teardown.
func (m *Manager) RemoveHandler(h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, reg := range m.regs {
		if reg.handler == h {
			m.regs = append(m.regs[:i], m.regs[i+1:]...)
			m.logger.Debug("msg", "Handler removed", "component", "dispatch")
			return
		}
	}
}

// Dispatch stamps the record's uptime when absent, applies each
// registration's filters and delivers to the ones that accept it.
func (m *Manager) Dispatch(rec core.Record) {
	if !rec.HasTime {
		rec.Uptime = m.Uptime()
		rec.HasTime = true
	}

	m.totalDispatched.Add(1)

	m.mu.Lock()
	regs := make([]*registration, len(m.regs))
	copy(regs, m.regs)
	m.mu.Unlock()

	for _, reg := range regs {
		if reg.filters.Accepts(rec) {
			reg.handler.LogMessage(rec)
			m.totalDelivered.Add(1)
		}
	}
}

// Uptime returns whole seconds since the manager was created.
func (m *Manager) Uptime() int64 {
	return int64(time.Since(m.start) / time.Second)
}

// GetStats returns counters for the status surface.
func (m *Manager) GetStats() map[string]any {
	m.mu.Lock()
	handlerCount := len(m.regs)
	m.mu.Unlock()

	return map[string]any{
		"handlers":         handlerCount,
		"total_dispatched": m.totalDispatched.Load(),
		"total_delivered":  m.totalDelivered.Load(),
		"uptime_seconds":   m.Uptime(),
	}
}
