// FILE: fslog/src/cmd/fslog/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fslog/src/internal/config"
	"fslog/src/internal/core"
	"fslog/src/internal/dispatch"
	"fslog/src/internal/filter"
	"fslog/src/internal/format"
	"fslog/src/internal/sink"
	"fslog/src/internal/status"
	"fslog/src/internal/tail"
	"fslog/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

func main() {
	if err := parseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if *configFile != "" {
		os.Setenv("FSLOG_CONFIG_FILE", *configFile)
	}

	cfg, err := config.LoadWithCLI(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg)

	if err := initializeLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer shutdownLogger()

	logger.Info("msg", "fslog starting",
		"version", version.String(),
		"log_path", cfg.Log.Directory,
		"flush_max_bytes", cfg.Flush.MaxBytes,
		"flush_max_seconds", cfg.Flush.MaxSeconds)

	app, err := bootstrap(cfg)
	if err != nil {
		logger.Error("msg", "Failed to bootstrap", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("msg", "Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	app.run(ctx)
	app.shutdown()

	logger.Info("msg", "fslog stopped")
}

// app wires the dispatch manager, the file sink, the dump reader and
// the optional status server together.
type app struct {
	cfg      *config.Config
	manager  *dispatch.Manager
	fileSink *sink.FileSink
	reader   *tail.Reader
	statusSv *status.Server
}

func bootstrap(cfg *config.Config) (*app, error) {
	manager := dispatch.NewManager(logger)

	formatter, err := format.New("line", logger)
	if err != nil {
		return nil, fmt.Errorf("formatter: %w", err)
	}

	fileSink := sink.NewFileSink(sink.Options{
		Directory:   cfg.Log.Directory,
		Name:        cfg.Log.Name,
		Enabled:     false,
		MaxBytes:    cfg.Flush.MaxBytes,
		MaxInterval: cfg.Flush.Interval(),
	}, formatter, logger)

	// Start fresh each run, then enable; mirrors the reset-by-clear
	// workflow the truncate-on-first-open semantic exists for.
	if cfg.Demo.ClearOnStartup {
		if err := fileSink.Clear(); err != nil {
			logger.Warn("msg", "Startup clear failed", "error", err)
		}
	}
	fileSink.SetEnabled(cfg.Log.Enabled)

	level, err := core.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	filters, err := buildFilters(cfg.Log.Filters)
	if err != nil {
		return nil, err
	}
	manager.AddHandler(fileSink, level, filters...)

	reader := tail.NewReader(fileSink.Path(), tail.Options{
		ChunkSize:       cfg.Dump.ChunkSize,
		ChunksPerSecond: cfg.Dump.ChunksPerSecond,
	}, logger)

	a := &app{
		cfg:      cfg,
		manager:  manager,
		fileSink: fileSink,
		reader:   reader,
	}

	if cfg.Status.Enabled {
		addr := fmt.Sprintf("%s:%d", cfg.Status.Host, cfg.Status.Port)
		a.statusSv = status.New(addr, a.snapshot, logger)
		if err := a.statusSv.Start(); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// shutdown tears down in dependency order: unregister first so no
// late record races the closing handle, then close.
func (a *app) shutdown() {
	a.manager.RemoveHandler(a.fileSink)
	if err := a.fileSink.Close(); err != nil {
		logger.Error("msg", "Sink close failed", "error", err)
	}

	if a.statusSv != nil {
		if err := a.statusSv.Shutdown(); err != nil {
			logger.Error("msg", "Status server shutdown failed", "error", err)
		}
	}
}

func (a *app) snapshot() map[string]any {
	return map[string]any{
		"version":  version.Short(),
		"sink":     a.fileSink.Stats(),
		"dispatch": a.manager.GetStats(),
		"dump": map[string]any{
			"position": a.reader.Position(),
		},
	}
}

func buildFilters(cfgs []config.CategoryFilter) ([]filter.Category, error) {
	filters := make([]filter.Category, 0, len(cfgs))
	for _, f := range cfgs {
		level, err := core.ParseLevel(f.Level)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", f.Category, err)
		}
		filters = append(filters, filter.Category{Prefix: f.Category, Level: level})
	}
	return filters, nil
}

// initializeLogger sets up the diagnostic side channel. Sink failures
// are reported here, never into the sink's own file.
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	levelValue, err := parseAppLogLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	configArgs := []string{fmt.Sprintf("level=%d", levelValue)}

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_stdout=false")
	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stdout")
	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stderr")
	case "file":
		configArgs = append(configArgs,
			"enable_stdout=false",
			fmt.Sprintf("directory=%s", cfg.Logging.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.Name))
	default:
		return fmt.Errorf("invalid logging output mode: %s", cfg.Logging.Output)
	}

	if err := logger.ApplyConfigString(configArgs...); err != nil {
		return err
	}
	return logger.Start()
}

func parseAppLogLevel(s string) (int64, error) {
	switch s {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}

func applyFlagOverrides(cfg *config.Config) {
	if *logOutput != "" {
		cfg.Logging.Output = *logOutput
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			fmt.Fprintf(os.Stderr, "Logger shutdown failed: %v\n", err)
		}
	}
}
