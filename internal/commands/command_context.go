// Where: internal/commands/command_context.go
// What: Per-invocation state shared by command handlers.
// Why: Load config once and keep error reporting consistent.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poruru-code/lightsail-model/internal/infra/config"
	"github.com/poruru-code/lightsail-model/internal/infra/logger"
	"github.com/poruru-code/lightsail-model/internal/infra/ui"
	"github.com/poruru-code/lightsail-model/internal/meta"
)

type commandContext struct {
	cli     CLI
	deps    Dependencies
	ui      *ui.Console
	cfg     config.Config
	cfgPath string
}

func newCommandContext(cli CLI, deps Dependencies) (*commandContext, error) {
	path, err := deps.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &commandContext{
		cli:     cli,
		deps:    deps,
		ui:      ui.NewWithEmoji(deps.Out, cfg.EmojiEnabled() && !cli.NoEmoji),
		cfg:     cfg,
		cfgPath: path,
	}, nil
}

func (c *commandContext) debug() bool {
	if c.cli.Debug || c.cfg.Debug {
		return true
	}
	value := strings.ToLower(strings.TrimSpace(os.Getenv(meta.EnvDebug)))
	return value == "1" || value == "true"
}

// remember records name in the recent shapes list. Failing to save is
// logged and otherwise ignored.
func (c *commandContext) remember(name string) {
	c.cfg.RememberShape(name)
	if err := config.Save(c.cfgPath, c.cfg); err != nil {
		logger.L().Warn("config.save_failed", "path", c.cfgPath, "error", err)
	}
}

func (c *commandContext) fail(err error) int {
	return exitWithError(c.ui, err)
}

// exitWithError prints err and returns exit code 1.
func exitWithError(console *ui.Console, err error) int {
	console.Error(err.Error())
	return 1
}

// exitWithSuggestion prints an error with suggested next steps.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	console := legacyUI(out)
	console.Error(message)
	if len(suggestions) > 0 {
		console.Info("")
		console.Info("Next steps:")
		for _, s := range suggestions {
			console.ItemPlain("- " + s)
		}
	}
	return 1
}

func legacyUI(out io.Writer) *ui.Console {
	return ui.New(out)
}
