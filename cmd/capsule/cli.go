// Where: cmd/capsule/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/capsule-dev/capsule/internal/app"
	"github.com/capsule-dev/capsule/internal/log"
	"github.com/capsule-dev/capsule/internal/project"
	"github.com/capsule-dev/capsule/internal/scaffold"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the CLI.
// The working directory is read here, at the process boundary, and passed
// down; nothing below this layer consults the environment for it.
func buildDependencies() (app.Dependencies, error) {
	log.Configure(log.Config{})

	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkDir:    workDir,
		Out:        os.Stdout,
		Loader:     project.Load,
		Finder:     project.FindRoot,
		Scaffolder: scaffold.New,
	}, nil
}
