// Where: internal/app/project.go
// What: Project registry commands.
// Why: Allow selecting and listing projects from global config.
package app

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/capsule-dev/capsule/internal/project"
)

type ProjectCmd struct {
	List ProjectListCmd `cmd:"" help:"List projects"`
	Use  ProjectUseCmd  `cmd:"" help:"Switch project"`
}

type (
	ProjectListCmd struct{}
	ProjectUseCmd  struct {
		Name string `arg:"" help:"Project name"`
	}
)

func runProjectList(_ CLI, _ Dependencies, out io.Writer) int {
	cfg, err := loadGlobalConfigOrDefault()
	if err != nil {
		return exitWithError(out, err)
	}

	if len(cfg.Projects) == 0 {
		fmt.Fprintln(out, "no projects registered")
		return 0
	}

	names := make([]string, 0, len(cfg.Projects))
	for name := range cfg.Projects {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == cfg.ActiveProject {
			fmt.Fprintf(out, "* %s\n", name)
			continue
		}
		fmt.Fprintln(out, name)
	}
	return 0
}

func runProjectUse(cli CLI, deps Dependencies, out io.Writer) int {
	name := strings.TrimSpace(cli.Project.Use.Name)
	if name == "" {
		fmt.Fprintln(out, "project name is required")
		return 1
	}

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return exitWithError(out, err)
	}

	if _, ok := cfg.Projects[name]; !ok {
		available := make([]string, 0, len(cfg.Projects))
		for known := range cfg.Projects {
			available = append(available, known)
		}
		sort.Strings(available)
		return exitWithSuggestionAndAvailable(out,
			fmt.Sprintf("Unknown project '%s'.", name),
			[]string{"capsule project list"},
			available,
		)
	}

	updated := normalizeGlobalConfig(cfg)
	updated.ActiveProject = name
	entry := updated.Projects[name]
	entry.LastUsed = now(deps).Format(time.RFC3339)
	updated.Projects[name] = entry

	// Remember the deploy environment when one is given explicitly.
	if flag := strings.TrimSpace(cli.DeployEnv); flag != "" {
		env, err := project.ParseDeployEnv(flag)
		if err != nil {
			return exitWithError(out, err)
		}
		updated.DeployEnvs[name] = env.String()
	}

	if err := saveGlobalConfig(path, updated); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "Switched to project '%s'\n", name)
	return 0
}
