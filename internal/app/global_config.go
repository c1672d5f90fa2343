// Where: internal/app/global_config.go
// What: Global config helpers for project commands.
// Why: Centralize ~/.capsule/config.yaml handling and defaults.
package app

import (
	"os"

	"github.com/capsule-dev/capsule/internal/config"
)

// loadGlobalConfigOrDefault loads the global configuration, returning a
// default config if the file doesn't exist yet.
func loadGlobalConfigOrDefault() (config.GlobalConfig, error) {
	_, cfg, err := loadGlobalConfigWithPath()
	return cfg, err
}

// loadGlobalConfigWithPath loads the global configuration and reports the
// path it came from so callers can save back to the same place.
func loadGlobalConfigWithPath() (string, config.GlobalConfig, error) {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return "", config.GlobalConfig{}, err
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, config.DefaultGlobalConfig(), nil
		}
		return path, config.GlobalConfig{}, err
	}
	return path, normalizeGlobalConfig(cfg), nil
}

// saveGlobalConfig persists the global configuration to the specified path.
func saveGlobalConfig(path string, cfg config.GlobalConfig) error {
	return config.SaveGlobalConfig(path, cfg)
}

// normalizeGlobalConfig ensures all map fields are initialized and the
// version field is set. Prevents nil map writes.
func normalizeGlobalConfig(cfg config.GlobalConfig) config.GlobalConfig {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]config.ProjectEntry{}
	}
	if cfg.DeployEnvs == nil {
		cfg.DeployEnvs = map[string]string{}
	}
	return cfg
}
