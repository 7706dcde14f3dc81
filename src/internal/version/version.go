// FILE: fslog/src/internal/version/version.go
package version

import (
	"fmt"
	"runtime"
)

// Build metadata, overridden at link time via -ldflags -X.
var (
	tag    = "dev"
	commit = "unknown"
	date   = "unknown"
)

// String returns the full build description for the startup banner
// and the -version flag.
func String() string {
	return fmt.Sprintf("fslog %s (commit %s, built %s, %s)", tag, commit, date, runtime.Version())
}

// Short returns the bare version tag.
func Short() string {
	return tag
}
