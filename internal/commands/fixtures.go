// Where: internal/commands/fixtures.go
// What: render and compare commands.
// Why: Check a fixture's diagnostic form, hash, and equality against another.
package commands

import (
	"fmt"
	"strings"

	"github.com/poruru-code/lightsail-model/internal/fixture"
	"github.com/poruru-code/lightsail-model/internal/infra/logger"
	"github.com/poruru-code/lightsail-model/internal/version"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

func runRender(ctx *commandContext) int {
	cmd := ctx.cli.Render
	s, err := ctx.resolveShape(cmd.Shape)
	if err != nil {
		return ctx.fail(err)
	}
	loaded, err := ctx.loadFixture(s.ShapeName(), cmd.File)
	if err != nil {
		return ctx.fail(err)
	}

	ctx.ui.Header("📦", loaded.ShapeName())
	ctx.ui.ItemPlain(shape.Render(loaded))
	ctx.ui.Item("hash", shape.Hash(loaded))
	ctx.warnUnknownEnums(loaded)
	return 0
}

func runCompare(ctx *commandContext) int {
	cmd := ctx.cli.Compare
	s, err := ctx.resolveShape(cmd.Shape)
	if err != nil {
		return ctx.fail(err)
	}
	left, err := ctx.loadFixture(s.ShapeName(), cmd.Left)
	if err != nil {
		return ctx.fail(err)
	}
	right, err := ctx.loadFixture(s.ShapeName(), cmd.Right)
	if err != nil {
		return ctx.fail(err)
	}

	ctx.ui.Header("⚖️", s.ShapeName())
	ctx.ui.Item(cmd.Left, shape.Hash(left))
	ctx.ui.Item(cmd.Right, shape.Hash(right))
	if shape.Equal(left, right) {
		ctx.ui.Success("fixtures are equal")
		return 0
	}
	ctx.ui.Warn("fixtures differ in: " + strings.Join(shape.Diff(left, right), ", "))
	return 1
}

func runVersion(ctx *commandContext) int {
	ctx.ui.Info(version.Get().String())
	return 0
}

func (c *commandContext) loadFixture(name, file string) (shape.Shape, error) {
	path := c.cfg.ResolveFixture(file)
	content, err := c.deps.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	s, err := fixture.Load(name, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.L().Debug("fixture.loaded", "shape", name, "path", path, "bytes", len(content))
	return s, nil
}

func (c *commandContext) warnUnknownEnums(s shape.Shape) {
	for _, warning := range fixture.AuditEnums(s) {
		c.ui.Warn(warning.String())
	}
}
