// FILE: fslog/src/cmd/fslog/flags.go
package main

import (
	"flag"
	"fmt"
	"os"
)

// Command-line flags
var (
	configFile  = flag.String("config", "", "Config file path")
	showVersion = flag.Bool("version", false, "Show version information")

	logOutput = flag.String("log-output", "", "Diagnostics output: file, stdout, stderr, none (overrides config)")
	logLevel  = flag.String("log-level", "", "Diagnostics level: debug, info, warn, error (overrides config)")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "fslog - Buffered Filesystem Log Writer\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")
	fmt.Fprintf(os.Stderr, "  -log-output string\n\tDiagnostics output: file, stdout, stderr, none (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-level string\n\tDiagnostics level: debug, info, warn, error (overrides config)\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Run with default config\n")
	fmt.Fprintf(os.Stderr, "  %s\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  # Run against a local log directory\n")
	fmt.Fprintf(os.Stderr, "  FSLOG_LOG_DIRECTORY=./log %s\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  # Run with a custom config and verbose diagnostics\n")
	fmt.Fprintf(os.Stderr, "  %s --config /etc/fslog.toml --log-level debug\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  FSLOG_CONFIG_FILE  Config file path\n")
	fmt.Fprintf(os.Stderr, "  FSLOG_CONFIG_DIR   Config directory\n")
}

func parseFlags() error {
	flag.Parse()

	if *logOutput != "" {
		switch *logOutput {
		case "file", "stdout", "stderr", "none":
		default:
			return fmt.Errorf("invalid log-output: %s", *logOutput)
		}
	}
	if *logLevel != "" {
		switch *logLevel {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log-level: %s", *logLevel)
		}
	}
	return nil
}
