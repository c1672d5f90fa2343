// Where: cmd/capsule/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: The work directory must be captured at the process boundary.
package main

import (
	"errors"
	"testing"
)

func TestBuildDependenciesCapturesWorkDir(t *testing.T) {
	original := getwd
	t.Cleanup(func() { getwd = original })
	getwd = func() (string, error) { return "/work/dir", nil }

	deps, err := buildDependencies()
	if err != nil {
		t.Fatalf("build dependencies: %v", err)
	}
	if deps.WorkDir != "/work/dir" {
		t.Errorf("work dir = %q", deps.WorkDir)
	}
	if deps.Loader == nil || deps.Finder == nil || deps.Scaffolder == nil {
		t.Error("expected loaders to be wired")
	}
}

func TestBuildDependenciesGetwdFailure(t *testing.T) {
	original := getwd
	t.Cleanup(func() { getwd = original })
	getwd = func() (string, error) { return "", errors.New("boom") }

	if _, err := buildDependencies(); err == nil {
		t.Fatal("expected error when the working directory is unavailable")
	}
}
