// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the tool name, home directory, and env prefix in one place.
package meta

const (
	// Tool identity
	AppName   = "lsmodel"
	EnvPrefix = "LSMODEL"

	// Directory layout
	HomeDir        = ".lsmodel"
	ConfigFileName = "config.yaml"

	// Environment overrides
	EnvConfigPath = EnvPrefix + "_CONFIG_PATH"
	EnvDebug      = EnvPrefix + "_DEBUG"
)
