// ABOUTME: XDG-based data and config directory resolution for the grafo CLI.
// ABOUTME: Checks XDG_DATA_HOME / XDG_CONFIG_HOME, falls back to ~/.local/share/grafo and ~/.config/grafo.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultDataDir returns the default directory for session interchange files
// and the journal. It checks XDG_DATA_HOME first, then ~/.local/share/grafo.
func defaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "grafo"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "grafo"), nil
}

// defaultConfigDir returns the default config directory. It checks
// XDG_CONFIG_HOME first, then ~/.config/grafo.
func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "grafo"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "grafo"), nil
}

// resolveDataDir returns the explicit dir when given, otherwise the default,
// and creates it.
func resolveDataDir(explicit string) (string, error) {
	dir := explicit
	if dir == "" {
		var err error
		dir, err = defaultDataDir()
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return dir, nil
}
