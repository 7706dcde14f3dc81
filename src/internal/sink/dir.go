// FILE: fslog/src/internal/sink/dir.go
package sink

import (
	"fmt"
	"os"
)

// EnsureDir makes sure path exists as a directory before the log file
// is opened under it. A plain file squatting on the path is deleted
// and replaced by a directory. Any other stat failure is reported
// without side effects. Idempotent once it has succeeded.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove non-directory %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.Mkdir(path, 0o755); err != nil && !os.IsExist(err) {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}
