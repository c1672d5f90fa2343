// Where: internal/app/info.go
// What: Project information command.
// Why: Show the loaded manifest and every resolved path at a glance.
package app

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/capsule-dev/capsule/internal/project"
	"github.com/capsule-dev/capsule/internal/ui"
)

func runInfo(cli CLI, deps Dependencies, out io.Writer) int {
	ctx, err := resolveContext(deps)
	if err != nil {
		var notFound *project.ConfigNotFoundError
		if errors.As(err, &notFound) {
			return exitWithSuggestion(out, "Not inside a capsule project.",
				[]string{"capsule new <name>", "capsule project list"})
		}
		return exitWithError(out, err)
	}

	deployEnv, err := resolveDeployEnv(cli)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	cfg := ctx.Config()

	name := cfg.Name
	if name == "" {
		name = filepath.Base(ctx.ProjectPath())
	}

	console.Header("📦", "Project:")
	console.Item("Name", name)
	console.Item("Path", ctx.ProjectPath())
	console.Item("Version", cfg.Version)
	console.Item("Deployment", cfg.Deployment)
	if workspace, err := ctx.WorkspaceDir(); err != nil {
		console.Warn(err.Error())
	} else {
		console.Item("Workspace", workspace)
	}

	console.Header("🗂", "Paths:")
	console.Item("Contracts", ctx.ContractsPath())
	console.Item("Build (debug)", ctx.ContractsBuildPath(project.BuildEnvDebug))
	console.Item("Build (release)", ctx.ContractsBuildPath(project.BuildEnvRelease))
	console.Item("Migrations ("+deployEnv.String()+")", ctx.MigrationsPath(deployEnv))
	return 0
}
