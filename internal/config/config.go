// Package config handles configuration loading and config path resolution.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-ports/genarg/internal/stock"
)

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// PrintConfig controls aligned diagnostic output.
type PrintConfig struct {
	ColumnWidth int `yaml:"column_width"`
}

// Config is the root genarg configuration.
type Config struct {
	Print PrintConfig `yaml:"print"`
	// StockDefaults overrides catalog defaults, keyed by stock option name.
	StockDefaults map[string]any `yaml:"stock"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Print:         PrintConfig{ColumnWidth: 29},
		StockDefaults: map[string]any{},
	}
}

// Load reads a config.yaml from path.
// If the file does not exist it returns Default() with no error.
// Missing keys retain their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if p, ok := raw["print"].(map[string]any); ok {
		if v, ok := p["column_width"].(int); ok && v > 0 {
			cfg.Print.ColumnWidth = v
		}
	}

	if s, ok := raw["stock"].(map[string]any); ok {
		for k, v := range s {
			if v != nil {
				cfg.StockDefaults[k] = v
			}
		}
	}

	return cfg, nil
}

// Requests returns one request per catalog option, in catalog order, with
// the configured default when one is set.
func (c *Config) Requests() []stock.Request {
	names := stock.Names()
	reqs := make([]stock.Request, 0, len(names))
	for _, name := range names {
		reqs = append(reqs, stock.Request{Name: name, Default: c.StockDefaults[name]})
	}
	return reqs
}

// ---------------------------------------------------------------------------
// Path resolution
// ---------------------------------------------------------------------------

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolvePath returns the config file path and the source of the resolution.
// Priority: GENARG_CONFIG env → ~/.config/genarg/config.yaml
// source is one of "env" or "default".
func ResolvePath() (path, source string) {
	if env := os.Getenv("GENARG_CONFIG"); env != "" {
		p, err := normalizePath(env)
		if err == nil {
			return p, "env"
		}
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "genarg", "config.yaml"), "default"
}
