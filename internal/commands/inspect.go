// Where: internal/commands/inspect.go
// What: describe, schema, and scaffold commands.
// Why: Show a model object's members and help write fixtures for it.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/poruru-code/lightsail-model/internal/describe"
	"github.com/poruru-code/lightsail-model/internal/fixture"
	"github.com/poruru-code/lightsail-model/internal/infra/interaction"
	"github.com/poruru-code/lightsail-model/internal/infra/logger"
)

var errNotOverwritten = errors.New("output exists")

func runDescribe(ctx *commandContext) int {
	s, err := ctx.resolveShape(ctx.cli.Describe.Shape)
	if err != nil {
		return ctx.fail(err)
	}
	text, err := describe.Describe(s)
	if err != nil {
		return ctx.fail(err)
	}
	ctx.ui.Raw(text)
	return 0
}

func runSchema(ctx *commandContext) int {
	s, err := ctx.resolveShape(ctx.cli.Schema.Shape)
	if err != nil {
		return ctx.fail(err)
	}
	payload, err := fixture.SchemaJSON(s)
	if err != nil {
		return ctx.fail(err)
	}
	ctx.ui.Raw(string(payload))
	return 0
}

func runScaffold(ctx *commandContext) int {
	cmd := ctx.cli.Scaffold
	s, err := ctx.resolveShape(cmd.Shape)
	if err != nil {
		return ctx.fail(err)
	}
	content, err := fixture.Scaffold(s)
	if err != nil {
		return ctx.fail(err)
	}
	if cmd.Output == "" {
		ctx.ui.Raw(string(content))
		return 0
	}

	path := ctx.cfg.ResolveFixture(cmd.Output)
	if err := ctx.confirmOverwrite(path, cmd.Force); err != nil {
		return ctx.fail(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ctx.fail(fmt.Errorf("create fixture dir: %w", err))
	}
	if err := ctx.deps.WriteFile(path, content, 0o644); err != nil {
		return ctx.fail(fmt.Errorf("write fixture: %w", err))
	}
	logger.L().Debug("fixture.scaffolded", "shape", s.ShapeName(), "path", path)
	ctx.ui.Success(fmt.Sprintf("wrote %s fixture to %s", s.ShapeName(), path))
	return 0
}

func (c *commandContext) confirmOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat output: %w", err)
	}
	if !c.deps.Interactive() {
		return fmt.Errorf("%w: %s (use --force to replace it)", errNotOverwritten, path)
	}
	ok, err := interaction.PromptYesNoWithIO(c.deps.In, c.deps.Out, fmt.Sprintf("Overwrite %s?", path))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", errNotOverwritten, path)
	}
	return nil
}
