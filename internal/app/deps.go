// Where: internal/app/deps.go
// What: Injected dependencies for CLI command execution.
// Why: Keep commands testable by swapping loaders and the clock.
package app

import (
	"io"
	"time"

	"github.com/capsule-dev/capsule/internal/project"
	"github.com/capsule-dev/capsule/internal/scaffold"
)

// ContextLoader loads a project context from a root directory.
type ContextLoader func(root string) (*project.Context, error)

// Dependencies holds all injected dependencies required for CLI command
// execution. Every field has a working default filled in by Run.
type Dependencies struct {
	WorkDir    string
	Out        io.Writer
	Now        func() time.Time
	Loader     ContextLoader
	Finder     project.RootFinder
	Scaffolder scaffold.Func
}

// now returns the current time using the injected Now function from deps,
// or time.Now() if not configured. Enables time mocking in tests.
func now(deps Dependencies) time.Time {
	if deps.Now != nil {
		return deps.Now()
	}
	return time.Now()
}
