// Where: internal/commands/catalog.go
// What: shapes and enums commands.
// Why: List what the model layer knows without reading source.
package commands

import (
	"fmt"

	"github.com/poruru-code/lightsail-model/internal/catalog"
)

func runShapes(ctx *commandContext) int {
	names := catalog.Search(ctx.cli.Shapes.Filter)
	if len(names) == 0 {
		ctx.ui.Warn(fmt.Sprintf("no shape matches %q", ctx.cli.Shapes.Filter))
		return 1
	}
	ctx.ui.Header("📦", fmt.Sprintf("%d model objects", len(names)))
	for _, name := range names {
		ctx.ui.ItemPlain(name)
	}
	return 0
}

func runEnums(ctx *commandContext) int {
	if name := ctx.cli.Enums.Name; name != "" {
		values, err := catalog.EnumValues(name)
		if err != nil {
			return ctx.fail(err)
		}
		ctx.ui.Header("🔤", fmt.Sprintf("%s (%d known values)", name, len(values)))
		for _, value := range values {
			ctx.ui.ItemPlain(value)
		}
		return 0
	}

	names := catalog.Enums()
	sizes, err := enumSizes(names)
	if err != nil {
		return ctx.fail(err)
	}
	ctx.ui.Header("🔤", fmt.Sprintf("%d enum types", len(names)))
	for i, name := range names {
		ctx.ui.Item(name, sizes[i])
	}
	return 0
}

// enumSizes returns the number of known values for each enum name.
func enumSizes(names []string) ([]int, error) {
	sizes := make([]int, len(names))
	for i, name := range names {
		values, err := catalog.EnumValues(name)
		if err != nil {
			return nil, err
		}
		sizes[i] = len(values)
	}
	return sizes, nil
}
