// Where: internal/app/paths.go
// What: Machine-readable path resolution command.
// Why: Let scripts query resolved project paths without parsing console output.
package app

import (
	"fmt"
	"io"

	"github.com/capsule-dev/capsule/internal/project"
)

func runPaths(cli CLI, deps Dependencies, out io.Writer) int {
	ctx, err := resolveContext(deps)
	if err != nil {
		return exitWithError(out, err)
	}

	buildEnv, err := project.ParseBuildEnv(cli.BuildEnv)
	if err != nil {
		return exitWithError(out, err)
	}
	buildCfg := project.BuildConfig{Env: buildEnv, AlwaysDebug: cli.AlwaysDebug}
	deployEnv, err := resolveDeployEnv(cli)
	if err != nil {
		return exitWithError(out, err)
	}
	workspace, err := ctx.WorkspaceDir()
	if err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "workspace=%s\n", workspace)
	fmt.Fprintf(out, "contracts=%s\n", ctx.ContractsPath())
	fmt.Fprintf(out, "build=%s\n", ctx.ContractsBuildPath(buildCfg.Effective()))
	fmt.Fprintf(out, "migrations=%s\n", ctx.MigrationsPath(deployEnv))
	return 0
}
