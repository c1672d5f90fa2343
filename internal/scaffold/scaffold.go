// Where: internal/scaffold/scaffold.go
// What: New-project scaffolding.
// Why: Render the fixed project layout so a fresh project loads immediately.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/capsule-dev/capsule/internal/project"
	"github.com/capsule-dev/capsule/internal/version"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Options describes the project to create.
type Options struct {
	Dir  string // parent directory; the project is created at Dir/Name
	Name string
}

// Func is the scaffolding entry point signature, injectable for tests.
type Func func(Options) (string, error)

// New creates a fresh project skeleton and returns its path. It refuses to
// touch a directory that already contains a project manifest.
func New(opts Options) (string, error) {
	if opts.Name == "" {
		return "", fmt.Errorf("project name is required")
	}
	target := filepath.Join(opts.Dir, opts.Name)

	if _, err := os.Stat(filepath.Join(target, project.ConfigFile)); err == nil {
		return "", fmt.Errorf("%s already exists in %s", project.ConfigFile, target)
	}

	dirs := []string{
		filepath.Join(target, project.ContractsDir),
		filepath.Join(target, "build"),
		filepath.Join(target, "migrations", "dev"),
		filepath.Join(target, "migrations", "testnet"),
		filepath.Join(target, "migrations", "mainnet"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}

	data := templateData{Name: opts.Name, Version: version.Version}

	manifest, err := renderTemplate("capsule.toml.tmpl", data)
	if err != nil {
		return "", err
	}
	if err := project.WriteConfigFile(filepath.Join(target, project.ConfigFile), manifest); err != nil {
		return "", fmt.Errorf("write %s: %w", project.ConfigFile, err)
	}

	deployment, err := renderTemplate("deployment.toml.tmpl", data)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(target, "deployment.toml"), []byte(deployment), 0o644); err != nil {
		return "", fmt.Errorf("write deployment.toml: %w", err)
	}

	// Keep the empty build tree out of version control but present on disk.
	gitignore := "*\n!.gitignore\n"
	if err := os.WriteFile(filepath.Join(target, "build", ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return "", fmt.Errorf("write build/.gitignore: %w", err)
	}

	return target, nil
}

type templateData struct {
	Name    string
	Version string
}

func renderTemplate(name string, data templateData) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
