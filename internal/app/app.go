// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/capsule-dev/capsule/internal/config"
	"github.com/capsule-dev/capsule/internal/project"
	"github.com/capsule-dev/capsule/internal/scaffold"
	"github.com/capsule-dev/capsule/internal/version"
	"github.com/joho/godotenv"
)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	BuildEnv    string `name:"build-env" short:"b" default:"debug" help:"Build environment (debug|release)"`
	DeployEnv   string `name:"deploy-env" short:"e" default:"" help:"Deploy environment (dev|testnet|mainnet)"`
	AlwaysDebug bool   `name:"always-debug" help:"Resolve build paths as debug regardless of --build-env"`
	EnvFile     string `name:"env-file" help:"Path to .env file"`

	New     NewCmd     `cmd:"" help:"Create a new project"`
	Check   CheckCmd   `cmd:"" help:"Validate the current project"`
	Info    InfoCmd    `cmd:"" help:"Show project information"`
	Paths   PathsCmd   `cmd:"" help:"Print resolved project paths"`
	Project ProjectCmd `cmd:"" help:"Manage registered projects"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	NewCmd struct {
		Name string `arg:"" help:"Project name"`
		Path string `help:"Parent directory (default: current directory)"`
	}
	CheckCmd   struct{}
	InfoCmd    struct{}
	PathsCmd   struct{}
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments, identifies the requested command, and dispatches to
// the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	if deps.Loader == nil {
		deps.Loader = project.Load
	}
	if deps.Finder == nil {
		deps.Finder = project.FindRoot
	}
	if deps.Scaffolder == nil {
		deps.Scaffolder = scaffold.New
	}

	// Handle no arguments: show project information.
	if len(args) == 0 {
		return runInfo(CLI{}, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, out)
	}

	// Load environment file if provided or if .env exists in the work dir.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"check":        runCheck,
		"info":         runInfo,
		"paths":        runPaths,
		"project":      runProjectList,
		"project list": runProjectList,
		"project ls":   runProjectList,
		"version":      func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "new", handler: runNew},
		{prefix: "project use", handler: runProjectUse},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// commandName extracts the first non-flag argument from the command line,
// which represents the command name. Recognizes and skips known flag pairs.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "-b", "--build-env", "-e", "--deploy-env", "--env-file", "--path":
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(args []string, err error, out io.Writer) int {
	errStr := err.Error()

	if strings.Contains(errStr, "expected") {
		switch cmd := commandName(args); {
		case cmd == "new":
			return exitWithSuggestion(out, "Project name required.",
				[]string{"capsule new <name>"})
		case strings.HasPrefix(cmd, "project") && strings.Contains(errStr, "<name>"):
			cfg, _ := loadGlobalConfigOrDefault()
			var projectNames []string
			for name := range cfg.Projects {
				projectNames = append(projectNames, name)
			}
			return exitWithSuggestionAndAvailable(out,
				"Project name required.",
				[]string{"capsule project use <name>", "capsule project list"},
				projectNames,
			)
		}
	}

	return exitWithError(out, err)
}
