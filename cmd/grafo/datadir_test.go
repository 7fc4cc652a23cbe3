// ABOUTME: Tests for XDG directory resolution and data dir creation.
// ABOUTME: Covers XDG_DATA_HOME/XDG_CONFIG_HOME and the home-directory fallbacks.
package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDataDirXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	dir, err := defaultDataDir()
	if err != nil {
		t.Fatalf("defaultDataDir: %v", err)
	}
	if dir != "/tmp/xdg-data/grafo" {
		t.Errorf("dir = %q", dir)
	}
}

func TestDefaultDataDirHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	os.Unsetenv("XDG_DATA_HOME")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	dir, err := defaultDataDir()
	if err != nil {
		t.Fatalf("defaultDataDir: %v", err)
	}
	if dir != filepath.Join(home, ".local", "share", "grafo") {
		t.Errorf("dir = %q", dir)
	}
}

func TestDefaultConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	dir, err := defaultConfigDir()
	if err != nil {
		t.Fatalf("defaultConfigDir: %v", err)
	}
	if dir != "/tmp/xdg-config/grafo" {
		t.Errorf("dir = %q", dir)
	}
}

func TestResolveDataDirCreates(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "data")
	got, err := resolveDataDir(want)
	if err != nil {
		t.Fatalf("resolveDataDir: %v", err)
	}
	if got != want {
		t.Errorf("dir = %q, want %q", got, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("dir not created: %v", err)
	}
}
