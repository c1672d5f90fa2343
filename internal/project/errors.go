// Where: internal/project/errors.go
// What: Typed errors raised while resolving a project context.
// Why: Every failure carries enough context to be shown to the user verbatim.
package project

import "fmt"

// ConfigNotFoundError indicates the project manifest could not be read.
type ConfigNotFoundError struct {
	Path string
	Err  error
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("can't find %s, current directory is not a project: %v", e.Path, e.Err)
}

func (e *ConfigNotFoundError) Unwrap() error { return e.Err }

// ConfigParseError indicates the project manifest is not valid TOML.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// VersionFormatError indicates the manifest's version field is not semver.
type VersionFormatError struct {
	Raw string
	Err error
}

func (e *VersionFormatError) Error() string {
	return fmt.Sprintf("invalid project version %q: %v", e.Raw, e.Err)
}

func (e *VersionFormatError) Unwrap() error { return e.Err }

// VersionMismatchError indicates the tool cannot operate on the project's
// declared version. Both versions are carried verbatim.
type VersionMismatchError struct {
	ToolVersion    string
	ProjectVersion string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("please use the right capsule version, capsule version: %s, project version: %s",
		e.ToolVersion, e.ProjectVersion)
}

// WorkspaceDirError indicates a workspace_dir value outside the closed set.
type WorkspaceDirError struct {
	Value string
}

func (e *WorkspaceDirError) Error() string {
	return fmt.Sprintf("invalid workspace_dir config: %q, only %q or %q are allowed",
		e.Value, ".", ContractsDir)
}

// DeploymentNotFoundError indicates the deployment manifest could not be read.
type DeploymentNotFoundError struct {
	Path string
	Err  error
}

func (e *DeploymentNotFoundError) Error() string {
	return fmt.Sprintf("can't find deployment file %s: %v", e.Path, e.Err)
}

func (e *DeploymentNotFoundError) Unwrap() error { return e.Err }

// DeploymentParseError indicates the deployment manifest is not valid TOML.
type DeploymentParseError struct {
	Path string
	Err  error
}

func (e *DeploymentParseError) Error() string {
	return fmt.Sprintf("parse deployment file %s: %v", e.Path, e.Err)
}

func (e *DeploymentParseError) Unwrap() error { return e.Err }

// UnrecognizedEnvError indicates an environment name outside the known set.
type UnrecognizedEnvError struct {
	Kind  string // "build" or "deploy"
	Value string
}

func (e *UnrecognizedEnvError) Error() string {
	return fmt.Sprintf("unrecognized %s environment %q", e.Kind, e.Value)
}
