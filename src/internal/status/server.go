// FILE: fslog/src/internal/status/server.go
package status

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
)

// Snapshot produces the current status document. It is called per
// request and must be safe to call while the host loop is writing.
type Snapshot func() map[string]any

// Server exposes a read-only JSON status endpoint. Only counters and
// configuration cross the wire; log content never does.
type Server struct {
	addr      string
	snapshot  Snapshot
	server    *fasthttp.Server
	listener  net.Listener
	logger    *log.Logger
	startTime time.Time
}

// New creates a status server bound to addr (host:port).
func New(addr string, snapshot Snapshot, logger *log.Logger) *Server {
	s := &Server{
		addr:      addr,
		snapshot:  snapshot,
		logger:    logger,
		startTime: time.Now(),
	}
	s.server = &fasthttp.Server{
		Handler: s.handleRequest,
		Name:    "fslog-status",
	}
	return s
}

// Start binds the listener and serves in the background. Bind
// failures are reported synchronously.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("status listen on %s: %w", s.addr, err)
	}
	s.listener = ln

	go func() {
		if err := s.server.Serve(ln); err != nil {
			s.logger.Error("msg", "Status server stopped",
				"component", "status",
				"addr", s.addr,
				"error", err)
		}
	}()

	s.logger.Info("msg", "Status server started",
		"component", "status",
		"addr", s.addr)
	return nil
}

// Shutdown stops accepting connections and waits for in-flight
// requests.
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

func (s *Server) handleRequest(ctx *fasthttp.RequestCtx) {
	if string(ctx.Path()) != "/status" {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		return
	}
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		return
	}

	doc := s.snapshot()
	doc["uptime_seconds"] = int64(time.Since(s.startTime) / time.Second)

	body, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error("msg", "Failed to marshal status",
			"component", "status",
			"error", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
