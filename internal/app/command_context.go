// Where: internal/app/command_context.go
// What: Shared context resolution and exit helpers for CLI commands.
// Why: Reduce duplicated project lookup and error reporting across commands.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/capsule-dev/capsule/internal/project"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "✗ %v\n", err)
	return 1
}

func exitWithSuggestion(out io.Writer, msg string, suggestions []string) int {
	fmt.Fprintf(out, "✗ %s\n", msg)
	if len(suggestions) > 0 {
		fmt.Fprintln(out, "Next steps:")
		for _, s := range suggestions {
			fmt.Fprintf(out, "   %s\n", s)
		}
	}
	return 1
}

func exitWithSuggestionAndAvailable(out io.Writer, msg string, suggestions, available []string) int {
	exitWithSuggestion(out, msg, suggestions)
	if len(available) > 0 {
		fmt.Fprintf(out, "Available: %s\n", strings.Join(available, ", "))
	}
	return 1
}

// resolveContext locates the project root (walking upward from the work
// directory) and loads its context.
func resolveContext(deps Dependencies) (*project.Context, error) {
	root := deps.WorkDir
	if found, ok := deps.Finder(root); ok {
		root = found
	}
	return deps.Loader(root)
}

// resolveDeployEnv picks the deploy environment from the CLI flag, falling
// back to the last-used environment recorded for the active project, then to
// dev.
func resolveDeployEnv(cli CLI) (project.DeployEnv, error) {
	if flag := strings.TrimSpace(cli.DeployEnv); flag != "" {
		return project.ParseDeployEnv(flag)
	}
	if cfg, err := loadGlobalConfigOrDefault(); err == nil && cfg.ActiveProject != "" {
		if env := strings.TrimSpace(cfg.DeployEnvs[cfg.ActiveProject]); env != "" {
			if parsed, err := project.ParseDeployEnv(env); err == nil {
				return parsed, nil
			}
		}
	}
	return project.DeployEnvDev, nil
}
