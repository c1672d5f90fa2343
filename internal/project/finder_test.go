// Where: internal/project/finder_test.go
// What: Tests for project root discovery.
// Why: Commands must work from anywhere inside a project tree.
package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRootFromNestedDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte("version = \"0.1.0\"\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	nested := filepath.Join(root, "contracts", "token-vault", "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok := FindRoot(nested)
	if !ok {
		t.Fatal("expected to find project root")
	}
	if got != root {
		t.Errorf("root = %q, want %q", got, root)
	}
}

func TestFindRootNotAProject(t *testing.T) {
	if root, ok := FindRoot(t.TempDir()); ok {
		t.Fatalf("unexpected root %q", root)
	}
}
