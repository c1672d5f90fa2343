// Where: internal/meta/meta.go
// What: Tool identity constants.
// Why: Keep the brand name and well-known locations in one place.
package meta

const (
	// Project Identity
	AppName   = "capsule"
	EnvPrefix = "CAPSULE"

	// Directory Layout
	HomeDir = ".capsule"

	// Environment variables honored by the global config resolver and logger.
	EnvConfigPath = "CAPSULE_CONFIG_PATH"
	EnvConfigHome = "CAPSULE_CONFIG_HOME"
	EnvLogLevel   = "CAPSULE_LOG_LEVEL"
)
