// Where: internal/commands/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru-code/lightsail-model/internal/infra/config"
	"github.com/poruru-code/lightsail-model/internal/infra/interaction"
	"github.com/poruru-code/lightsail-model/internal/infra/logger"
	"github.com/poruru-code/lightsail-model/internal/meta"
)

// Dependencies holds everything a command touches outside the process.
// Zero values fall back to the real terminal and filesystem.
type Dependencies struct {
	Out         io.Writer
	ErrOut      io.Writer
	In          io.Reader
	Prompter    interaction.Prompter
	Interactive func() bool
	ConfigPath  func() (string, error)
	ReadFile    func(string) ([]byte, error)
	WriteFile   func(string, []byte, os.FileMode) error
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Debug   bool   `help:"Write JSON diagnostics to stderr"`
	NoEmoji bool   `name:"no-emoji" help:"Disable emoji in output"`
	EnvFile string `name:"env-file" help:"Load LSMODEL_* variables from a .env file"`

	Shapes   ShapesCmd   `cmd:"" help:"List model objects"`
	Enums    EnumsCmd    `cmd:"" help:"List enum types, or the known values of one"`
	Describe DescribeCmd `cmd:"" help:"Show the members of a model object"`
	Schema   SchemaCmd   `cmd:"" help:"Print the JSON Schema used to validate fixtures"`
	Scaffold ScaffoldCmd `cmd:"" help:"Write a starter fixture for a model object"`
	Render   RenderCmd   `cmd:"" help:"Load a fixture and print its diagnostic form and hash"`
	Compare  CompareCmd  `cmd:"" help:"Load two fixtures and report whether they are equal"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type (
	ShapesCmd struct {
		Filter string `arg:"" optional:"" help:"Only list names containing this text"`
	}
	EnumsCmd struct {
		Name string `arg:"" optional:"" help:"Enum type to list values for"`
	}
	DescribeCmd struct {
		Shape string `arg:"" optional:"" help:"Model object name"`
	}
	SchemaCmd struct {
		Shape string `arg:"" optional:"" help:"Model object name"`
	}
	ScaffoldCmd struct {
		Shape  string `arg:"" optional:"" help:"Model object name"`
		Output string `short:"o" help:"Write to this file instead of stdout"`
		Force  bool   `help:"Overwrite an existing output file"`
	}
	RenderCmd struct {
		Shape string `arg:"" optional:"" help:"Model object name"`
		File  string `short:"f" required:"" help:"YAML or JSON fixture"`
	}
	CompareCmd struct {
		Shape string `arg:"" help:"Model object name"`
		Left  string `arg:"" help:"First fixture"`
		Right string `arg:"" help:"Second fixture"`
	}
	VersionCmd struct{}
)

// Run parses args, loads config, and dispatches to the command handler.
// Returns 0 on success, 1 on error or when compared fixtures differ.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Inspect Lightsail model objects offline."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(legacyUI(out), err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(out, err)
	}

	loadEnvFile(cli.EnvFile, out)

	cmdCtx, err := newCommandContext(cli, deps)
	if err != nil {
		return exitWithError(legacyUI(out), err)
	}
	restore := logger.Setup(logger.Config{Out: deps.ErrOut, Debug: cmdCtx.debug()})
	defer restore()
	logger.L().Debug("command.start", "command", ctx.Command(), "config", cmdCtx.cfgPath)

	if exitCode, handled := dispatchCommand(ctx.Command(), cmdCtx); handled {
		return exitCode
	}

	cmdCtx.ui.Warn("unknown command")
	return 1
}

type commandHandler func(*commandContext) int

func dispatchCommand(command string, ctx *commandContext) (int, bool) {
	handlers := map[string]commandHandler{
		"shapes":   runShapes,
		"enums":    runEnums,
		"describe": runDescribe,
		"schema":   runSchema,
		"scaffold": runScaffold,
		"render":   runRender,
		"compare":  runCompare,
		"version":  runVersion,
	}

	if handler, ok := handlers[commandName(command)]; ok {
		return handler(ctx), true
	}
	return 1, false
}

// commandName strips positional placeholders such as "<shape>" from a
// Kong command path.
func commandName(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.HuhPrompter{}
	}
	if deps.Interactive == nil {
		deps.Interactive = interaction.Interactive
	}
	if deps.ConfigPath == nil {
		deps.ConfigPath = config.Path
	}
	if deps.ReadFile == nil {
		deps.ReadFile = os.ReadFile
	}
	if deps.WriteFile == nil {
		deps.WriteFile = os.WriteFile
	}
	return deps
}

// loadEnvFile loads the given env file, or .env in the working directory
// when present.
func loadEnvFile(path string, out io.Writer) {
	warn := legacyUI(out).Warn
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}
}

func runNoArgs(out io.Writer) int {
	ui := legacyUI(out)
	ui.Info("Usage:")
	ui.Info("  " + meta.AppName + " <command> [flags]")
	ui.Info("")
	ui.Info("Try: " + meta.AppName + " shapes, " + meta.AppName + " describe <shape>, " + meta.AppName + " --help")
	return 0
}

func handleParseError(out io.Writer, err error) int {
	var parseErr *kong.ParseError
	if errors.As(err, &parseErr) {
		return exitWithSuggestion(out, err.Error(), []string{meta.AppName + " --help"})
	}
	return exitWithError(legacyUI(out), err)
}
