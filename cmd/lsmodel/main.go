// Where: cmd/lsmodel/main.go
// What: CLI entrypoint.
// Why: Execute lsmodel commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru-code/lightsail-model/internal/commands"
)

func main() {
	os.Exit(commands.Run(os.Args[1:], buildDependencies()))
}
