// Package config handles veneer.toml runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/veneer/proxy"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "veneer.toml"

// Config represents a veneer.toml file.
type Config struct {
	Proxy   ProxySettings   `toml:"proxy"`
	Journal JournalSettings `toml:"journal"`

	// Dir is the directory containing the file (set at load time).
	Dir string `toml:"-"`
}

// ProxySettings selects the attribute-resolution implementation. The
// choice is made explicitly at startup; it is not an environment
// variable and not runtime-mutable process-wide state.
type ProxySettings struct {
	Implementation string `toml:"implementation"`
}

// JournalSettings configures invocation-journal persistence.
type JournalSettings struct {
	Store string `toml:"store"`
}

// Load parses a veneer.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if c.Proxy.Implementation == "" {
		c.Proxy.Implementation = "cached"
	}

	return &c, nil
}

// FindAndLoad walks up from startDir to find a veneer.toml file, then
// loads and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", startDir, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Apply selects the configured proxy implementation. Call once at
// startup.
func (c *Config) Apply() error {
	return proxy.Use(c.Proxy.Implementation)
}

// StorePath returns the journal store path resolved against the
// config file's directory, or "" if no store is configured.
func (c *Config) StorePath() string {
	if c.Journal.Store == "" {
		return ""
	}
	if filepath.IsAbs(c.Journal.Store) {
		return c.Journal.Store
	}
	return filepath.Join(c.Dir, c.Journal.Store)
}
