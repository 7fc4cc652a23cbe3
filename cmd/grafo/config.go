// ABOUTME: YAML configuration file for the grafo binary: directories, executor paths, limits.
// ABOUTME: A missing file yields defaults; explicit flags override file values.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of config.yaml.
type fileConfig struct {
	DataDir     string `yaml:"data_dir"`
	BinDir      string `yaml:"bin_dir"`
	CatalogPath string `yaml:"catalog"`
	JournalPath string `yaml:"journal"`
	Port        int    `yaml:"port"`
	MaxSessions int    `yaml:"max_sessions"`
	SessionTTL  string `yaml:"session_ttl"`

	Executors struct {
		Graph   string `yaml:"graph"`
		Digraph string `yaml:"digraph"`
		Network string `yaml:"network"`
	} `yaml:"executors"`
}

// loadFileConfig reads config.yaml from the given path. Missing files return
// a zero config without error.
func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// executorPath resolves one executor binary: explicit path wins, otherwise
// <bin-dir>/<variant>.out.
func (fc fileConfig) executorPath(explicit, variant string) string {
	if explicit != "" {
		return explicit
	}
	binDir := fc.BinDir
	if binDir == "" {
		binDir = "bin"
	}
	return filepath.Join(binDir, variant+".out")
}

// sessionTTL parses the configured TTL, defaulting to an hour.
func (fc fileConfig) sessionTTL() time.Duration {
	if fc.SessionTTL == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(fc.SessionTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}
