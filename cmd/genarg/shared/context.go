// Package shared holds the context passed to all CLI commands.
package shared

import (
	"github.com/go-ports/genarg/internal/args"
	"github.com/go-ports/genarg/internal/config"
)

// Context carries state shared between CLI commands.
type Context struct {
	// ConfigPath overrides the config file location.
	// When empty, resolution falls through to GENARG_CONFIG env var → ~/.config/genarg/config.yaml.
	ConfigPath string

	// Vars receives every parsed field of the last processed command line.
	Vars args.Vars
}

// LoadConfig loads the config file selected by ConfigPath.
func (c *Context) LoadConfig() (*config.Config, error) {
	path := c.ConfigPath
	if path == "" {
		path, _ = config.ResolvePath()
	}
	return config.Load(path)
}
