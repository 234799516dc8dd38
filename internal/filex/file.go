// Package filex resolves and prepares the client's on-disk data directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the directory created under the user config dir by default.
const AppDirName = "scanly"

// EnsureDataDir creates dir (mode 0700) if needed and returns its absolute
// path. An empty dir resolves to <user config dir>/scanly.
func EnsureDataDir(dir string) (string, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("user config dir: %w", err)
		}
		dir = filepath.Join(base, AppDirName)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
