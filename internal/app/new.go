// Where: internal/app/new.go
// What: Project creation command.
// Why: Scaffold a fresh project and register it in the global config.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/capsule-dev/capsule/internal/config"
	"github.com/capsule-dev/capsule/internal/scaffold"
	"github.com/capsule-dev/capsule/internal/ui"
)

func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	dir := cli.New.Path
	if dir == "" {
		dir = deps.WorkDir
	}

	target, err := deps.Scaffolder(scaffold.Options{Dir: dir, Name: cli.New.Name})
	if err != nil {
		return exitWithError(out, err)
	}

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		console.Warn(fmt.Sprintf("project created but not registered: %v", err))
	} else {
		cfg = normalizeGlobalConfig(cfg)
		cfg.Projects[cli.New.Name] = config.ProjectEntry{
			Path:     target,
			LastUsed: now(deps).Format(time.RFC3339),
		}
		cfg.ActiveProject = cli.New.Name
		if err := saveGlobalConfig(path, cfg); err != nil {
			console.Warn(fmt.Sprintf("project created but not registered: %v", err))
		}
	}

	console.Success(fmt.Sprintf("Created project %s", target))
	console.Info("Put contract sources under contracts/ and run 'capsule check'")
	return 0
}
