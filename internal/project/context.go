// Where: internal/project/context.go
// What: Project context resolver.
// Why: Locate a project, gate on version compatibility, and answer path queries.
package project

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/capsule-dev/capsule/internal/config"
	"github.com/capsule-dev/capsule/internal/log"
	"github.com/capsule-dev/capsule/internal/version"
)

// Fixed filesystem layout. None of these names are configurable.
const (
	ConfigFile   = "capsule.toml"
	ContractsDir = "contracts"

	buildDir      = "build"
	migrationsDir = "migrations"
)

// Context is an immutable view of a loaded project. Construct one with Load;
// after that it only answers queries.
type Context struct {
	projectPath string
	cfg         config.Config
}

// Load reads and validates the project manifest under root using the tool's
// own version and the default compatibility policy.
func Load(root string) (*Context, error) {
	return LoadWith(root, version.Current(), version.Compatible)
}

// LoadWith is Load with an explicit tool version and compatibility policy.
func LoadWith(root string, tool *semver.Version, policy version.Policy) (*Context, error) {
	configPath := filepath.Join(root, ConfigFile)
	content, err := ReadConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Parse([]byte(content))
	if err != nil {
		return nil, &ConfigParseError{Path: configPath, Err: err}
	}

	projectVersion, err := semver.NewVersion(cfg.Version)
	if err != nil {
		return nil, &VersionFormatError{Raw: cfg.Version, Err: err}
	}
	if !policy(tool, projectVersion) {
		return nil, &VersionMismatchError{
			ToolVersion:    tool.String(),
			ProjectVersion: projectVersion.String(),
		}
	}

	return &Context{projectPath: root, cfg: cfg}, nil
}

// ProjectPath returns the project root directory.
func (c *Context) ProjectPath() string {
	return c.projectPath
}

// Config returns the loaded project manifest.
func (c *Context) Config() config.Config {
	return c.cfg
}

// WorkspaceDir resolves the build workspace root. Only two layouts are
// supported: the project root itself ("." or unset) and the contracts
// subdirectory. Anything else is rejected so downstream tooling never has to
// guess.
func (c *Context) WorkspaceDir() (string, error) {
	switch c.cfg.WorkspaceDir {
	case "", ".":
		return c.projectPath, nil
	case ContractsDir:
		return filepath.Join(c.projectPath, ContractsDir), nil
	default:
		return "", &WorkspaceDirError{Value: c.cfg.WorkspaceDir}
	}
}

// ContractsPath returns the contract source tree.
func (c *Context) ContractsPath() string {
	return filepath.Join(c.projectPath, ContractsDir)
}

// ContractsBuildDir returns the build output root.
func (c *Context) ContractsBuildDir() string {
	return filepath.Join(c.projectPath, buildDir)
}

// ContractsBuildPath returns the build output directory for the given
// build environment.
func (c *Context) ContractsBuildPath(env BuildEnv) string {
	return filepath.Join(c.ContractsBuildDir(), env.String())
}

// MigrationsPath returns the migrations directory for the given deploy
// environment.
func (c *Context) MigrationsPath(env DeployEnv) string {
	return filepath.Join(c.projectPath, migrationsDir, env.String())
}

// LoadDeployment reads and parses the deployment manifest referenced by the
// project manifest. A parse failure is logged before it is returned; the log
// line is a diagnostic side channel and callers still get the path in the
// error itself.
func (c *Context) LoadDeployment() (config.Deployment, error) {
	path := filepath.Join(c.projectPath, c.cfg.Deployment)
	content, err := os.ReadFile(path)
	if err != nil {
		return config.Deployment{}, &DeploymentNotFoundError{Path: path, Err: err}
	}
	dep, err := config.ParseDeployment(content)
	if err != nil {
		logger := log.WithComponent("project")
		logger.Error().
			Str("path", path).
			Err(err).
			Msg("failed to parse deployment file")
		return config.Deployment{}, &DeploymentParseError{Path: path, Err: err}
	}
	return dep, nil
}

// ReadConfigFile reads a project manifest as text. A read failure means the
// directory is not a project, which is what the error says.
func ReadConfigFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &ConfigNotFoundError{Path: path, Err: err}
	}
	return string(content), nil
}

// WriteConfigFile persists manifest text for callers that modify it. Write
// semantics are whatever the underlying filesystem call provides.
func WriteConfigFile(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
