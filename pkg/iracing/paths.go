// Package iracing locates the simulator's setups directory
package iracing

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 🔍 DefaultSetupsDir returns the conventional iRacing setups root,
// <home>/Documents/iRacing/setups, without checking that it exists.
func DefaultSetupsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "iRacing", "setups"), nil
}

// ✅ Resolve returns the absolute path of dir after verifying it is an
// existing directory. This is the run-aborting check for the destination
// root: nothing is processed when it fails.
func Resolve(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Errorf("resolving setups directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Errorf("setups directory not found at %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", errors.Errorf("setups path %s is not a directory", abs)
	}

	return abs, nil
}
