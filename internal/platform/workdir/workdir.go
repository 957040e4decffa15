// Package workdir locates the portfolio's per-user working directory.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// PrefsFile is the JSON preference store.
	PrefsFile = "prefs.json"
	// PrefsDB is the sqlite preference store.
	PrefsDB = "prefs.db"
	// LogFile receives TUI logs while the terminal is owned by bubbletea.
	LogFile = "portfolio.log"
)

// Root returns the base directory for all portfolio working files.
// The path is expanded at runtime to resolve to:
//
//	$XDG_CONFIG_HOME/portfolio (or the OS equivalent)
func Root() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, "portfolio"), nil
}

// FilePath returns the full path for a file in the working directory.
func FilePath(filename string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, filename), nil
}

// Prep ensures that the working directory exists.
func Prep() error {
	root, err := Root()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create working directory %s: %w", root, err)
	}

	return nil
}
