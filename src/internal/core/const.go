// FILE: fslog/src/internal/core/const.go
package core

// Flush policy defaults, tuned for flash with limited write endurance
const (
	DefaultFlushMaxBytes   = 4096
	DefaultFlushMaxSeconds = 10
)

// Filesystem defaults
const (
	DefaultLogDirectory = "/log"
	LogFileExtension    = ".log"
)

// Dump reader defaults
const DefaultDumpChunkSize = 1024
