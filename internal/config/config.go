// Where: internal/config/config.go
// What: capsule.toml schema and codec.
// Why: Keep the project manifest shape centralized for the resolver and CLI.
package config

import (
	"github.com/pelletier/go-toml/v2"
)

// Config represents the capsule.toml project manifest.
//
// Only version, deployment, and workspace_dir are interpreted by the tool;
// name travels with the project untouched.
type Config struct {
	Name         string `toml:"name,omitempty"`
	Version      string `toml:"version"`
	Deployment   string `toml:"deployment"`
	WorkspaceDir string `toml:"workspace_dir,omitempty"`
}

// Parse decodes a capsule.toml document.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the manifest back to TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
