// Where: internal/project/finder.go
// What: Project root discovery.
// Why: Let commands run from anywhere inside a project tree.
package project

import (
	"os"
	"path/filepath"
)

// RootFinder locates the nearest ancestor directory containing capsule.toml.
type RootFinder func(start string) (string, bool)

// FindRoot walks upward from start until a directory containing capsule.toml
// is found.
func FindRoot(start string) (string, bool) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	dir := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}
