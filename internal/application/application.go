// Package application holds the program identity and where it keeps its log.
package application

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the binary, the user agent and the log directory.
const AppName = "activeforks"

// Version is overridden at build time with -ldflags "-X".
var Version = "0.1.0"

// DefaultLogPath returns <user config dir>/activeforks/activeforks.log,
// creating the directory if needed. The interactive page logs there so
// the terminal stays clean.
func DefaultLogPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}

	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	return filepath.Join(dir, AppName+".log"), nil
}
