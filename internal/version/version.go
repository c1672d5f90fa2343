// Where: internal/version/version.go
// What: Tool version and project compatibility policy.
// Why: Gate project loading on a semver rule and expose build info to the CLI.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// Version is the release version of the tool. Bumped on release.
const Version = "0.10.0"

var current = semver.MustParse(Version)

// Current returns the tool's own semantic version.
func Current() *semver.Version {
	return current
}

// Policy decides whether the tool can operate on a project that declares the
// given version. Substitutable so callers can relax or tighten the rule.
type Policy func(tool, project *semver.Version) bool

// Compatible is the default policy: same major version, and the tool must not
// be older than the project.
func Compatible(tool, project *semver.Version) bool {
	if tool.Major() != project.Major() {
		return false
	}
	return !tool.LessThan(project)
}

// GetVersion returns the human-readable version string for the version
// command, appending the VCS revision when build info carries one.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return Version
	}
	if modified {
		return fmt.Sprintf("%s (%s dirty)", Version, revision)
	}
	return fmt.Sprintf("%s (%s)", Version, revision)
}
