// Where: internal/commands/mock_prompter_test.go
// What: Test helper prompter for interaction-dependent command tests.
// Why: Provide deterministic input/select behavior without TTY.
package commands

import "github.com/poruru-code/lightsail-model/internal/infra/interaction"

type mockPrompter struct {
	inputFn       func(title string, suggestions []string) (string, error)
	selectValueFn func(title string, options []interaction.SelectOption) (string, error)

	selectedValue string
	lastTitle     string
	lastOptions   []interaction.SelectOption
}

func (m *mockPrompter) Input(title string, suggestions []string) (string, error) {
	m.lastTitle = title
	if m.inputFn != nil {
		return m.inputFn(title, suggestions)
	}
	return "", nil
}

func (m *mockPrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	m.lastTitle = title
	m.lastOptions = options
	if m.selectValueFn != nil {
		return m.selectValueFn(title, options)
	}
	return m.selectedValue, nil
}
