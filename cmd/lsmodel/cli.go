// Where: cmd/lsmodel/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/lightsail-model/internal/commands"
	"github.com/poruru-code/lightsail-model/internal/infra/config"
	"github.com/poruru-code/lightsail-model/internal/infra/interaction"
)

const pickerHeight = 12

var isTerminal = interaction.Interactive

// buildDependencies wires the commands to the real terminal, filesystem,
// and user config.
func buildDependencies() commands.Dependencies {
	return commands.Dependencies{
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		In:          os.Stdin,
		Prompter:    interaction.HuhPrompter{Height: pickerHeight},
		Interactive: isTerminal,
		ConfigPath:  config.Path,
		ReadFile:    os.ReadFile,
		WriteFile:   os.WriteFile,
	}
}
