// Where: internal/app/check.go
// What: Project validation command.
// Why: Surface manifest, version, workspace, and deployment problems in one pass.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/capsule-dev/capsule/internal/config"
	"github.com/capsule-dev/capsule/internal/ui"
)

func runCheck(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctx, err := resolveContext(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	workspace, err := ctx.WorkspaceDir()
	if err != nil {
		return exitWithError(out, err)
	}

	deployEnv, err := resolveDeployEnv(cli)
	if err != nil {
		return exitWithError(out, err)
	}

	dep, err := ctx.LoadDeployment()
	if err != nil {
		return exitWithError(out, err)
	}

	deploymentPath := filepath.Join(ctx.ProjectPath(), ctx.Config().Deployment)
	raw, err := os.ReadFile(deploymentPath)
	if err != nil {
		return exitWithError(out, err)
	}
	if err := config.ValidateDeployment(raw); err != nil {
		return exitWithError(out, fmt.Errorf("deployment schema: %w", err))
	}

	console.Header("🔎", "Project check:")
	console.Item("Project", ctx.ProjectPath())
	console.Item("Version", ctx.Config().Version)
	console.Item("Workspace", workspace)
	console.Item("Deploy env", deployEnv)
	console.Item("Cells", len(dep.Cells))
	console.Item("Migrations", ctx.MigrationsPath(deployEnv))
	console.Success("project is valid")
	return 0
}
