// Where: internal/infra/interaction/selector.go
// What: Prompter backed by the huh terminal forms library.
// Why: Let developers pick a shape with the keyboard when no name is given.
package interaction

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrNoOptions is returned when a select prompt would have nothing to show.
var ErrNoOptions = errors.New("no options to choose from")

var runInputPrompt = func(title string, suggestions []string, input *string) error {
	field := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(input)
	if len(suggestions) > 0 {
		field.Placeholder(suggestions[0])
	}
	return field.Run()
}

var runSelectPrompt = func(title string, height int, options []huh.Option[string], selected *string) error {
	field := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected)
	if height > 0 {
		field.Height(height)
	}
	return field.Run()
}

// HuhPrompter implements Prompter with huh forms.
type HuhPrompter struct {
	// Height caps the visible select rows; zero lets huh decide.
	Height int
}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := runInputPrompt(title, suggestions, &input)
	if err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return input, nil
}

func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("prompt select value: %w", ErrNoOptions)
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := runSelectPrompt(title, p.Height, huhOptions, &selected)
	if err != nil {
		return "", fmt.Errorf("prompt select value: %w", err)
	}
	return selected, nil
}
