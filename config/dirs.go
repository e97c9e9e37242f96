// ABOUTME: XDG-based config directory resolution for arraylab.
// ABOUTME: Checks XDG_CONFIG_HOME, falls back to ~/.config/arraylab.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the settings file looked up in the config directory.
const FileName = "config.yaml"

// DefaultDir returns the directory holding arraylab's settings file.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "arraylab"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "arraylab"), nil
}

// DefaultPath returns the settings file path inside DefaultDir.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}
