// Where: internal/commands/selector.go
// What: Resolve the shape argument, prompting when it is missing.
// Why: Commands accept a name, or let the user pick one on a terminal.
package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/poruru-code/lightsail-model/internal/catalog"
	"github.com/poruru-code/lightsail-model/internal/infra/interaction"
	"github.com/poruru-code/lightsail-model/internal/infra/logger"
	"github.com/poruru-code/lightsail-model/internal/meta"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

var errShapeRequired = errors.New("shape name is required")

// resolveShape returns a fresh model object for name and records it as
// recently used. An empty name prompts on a terminal.
func (c *commandContext) resolveShape(name string) (shape.Shape, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		picked, err := c.pickShape()
		if err != nil {
			return nil, err
		}
		name = picked
	}

	s, err := catalog.New(name)
	if err != nil {
		return nil, err
	}
	c.remember(s.ShapeName())
	return s, nil
}

func (c *commandContext) pickShape() (string, error) {
	if !c.deps.Interactive() {
		return "", fmt.Errorf("%w (run '%s shapes' to list them)", errShapeRequired, meta.AppName)
	}

	filter, err := c.deps.Prompter.Input("Filter shapes (empty for all)", c.cfg.RecentShapes)
	if err != nil {
		return "", err
	}
	candidates := catalog.Search(filter)
	if len(candidates) == 0 {
		return "", fmt.Errorf("no shape matches %q", filter)
	}

	options := shapeOptions(candidates, c.cfg.RecentShapes)
	selected, err := c.deps.Prompter.SelectValue("Select a shape", options)
	if err != nil {
		return "", err
	}
	logger.L().Debug("shape.picked", "filter", filter, "shape", selected)
	return selected, nil
}

// shapeOptions lists recently used candidates first, in recency order.
func shapeOptions(candidates, recent []string) []interaction.SelectOption {
	options := make([]interaction.SelectOption, 0, len(candidates))
	for _, name := range recent {
		if slices.Contains(candidates, name) {
			options = append(options, interaction.SelectOption{Label: name + " (recent)", Value: name})
		}
	}
	for _, name := range candidates {
		if !slices.Contains(recent, name) {
			options = append(options, interaction.SelectOption{Label: name, Value: name})
		}
	}
	return options
}
