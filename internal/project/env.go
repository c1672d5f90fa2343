// Where: internal/project/env.go
// What: Build and deploy environment enums.
// Why: Map user-supplied environment names onto fixed directory layouts.
package project

import "strings"

// BuildEnv selects the build output subdirectory.
type BuildEnv int

const (
	BuildEnvDebug BuildEnv = iota
	BuildEnvRelease
)

// ParseBuildEnv matches "debug" or "release" case-insensitively.
func ParseBuildEnv(s string) (BuildEnv, error) {
	switch strings.ToLower(s) {
	case "debug":
		return BuildEnvDebug, nil
	case "release":
		return BuildEnvRelease, nil
	default:
		return 0, &UnrecognizedEnvError{Kind: "build", Value: s}
	}
}

// String returns the lowercase token, which doubles as the directory name.
func (e BuildEnv) String() string {
	if e == BuildEnvRelease {
		return "release"
	}
	return "debug"
}

// DeployEnv selects the migrations subdirectory.
type DeployEnv int

const (
	DeployEnvDev DeployEnv = iota
	DeployEnvTestnet
	DeployEnvMainnet
)

// ParseDeployEnv matches "dev", "testnet", or "mainnet" case-insensitively.
func ParseDeployEnv(s string) (DeployEnv, error) {
	switch strings.ToLower(s) {
	case "dev":
		return DeployEnvDev, nil
	case "testnet":
		return DeployEnvTestnet, nil
	case "mainnet":
		return DeployEnvMainnet, nil
	default:
		return 0, &UnrecognizedEnvError{Kind: "deploy", Value: s}
	}
}

// String returns the lowercase token, which doubles as the directory name.
func (e DeployEnv) String() string {
	switch e {
	case DeployEnvTestnet:
		return "testnet"
	case DeployEnvMainnet:
		return "mainnet"
	default:
		return "dev"
	}
}

// BuildConfig bundles the build environment selection with the always-debug
// override. Held by callers; never persisted here.
type BuildConfig struct {
	Env         BuildEnv
	AlwaysDebug bool
}

// Effective returns the build environment to use once the always-debug
// override is applied.
func (c BuildConfig) Effective() BuildEnv {
	if c.AlwaysDebug {
		return BuildEnvDebug
	}
	return c.Env
}
