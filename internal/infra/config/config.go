// Where: internal/infra/config/config.go
// What: Tool config load/save.
// Why: Manage <home>/.lsmodel/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/poruru-code/lightsail-model/internal/meta"
	"gopkg.in/yaml.v3"
)

const (
	currentVersion  = 1
	maxRecentShapes = 10
)

// Config represents the <home>/.lsmodel/config.yaml tool configuration.
type Config struct {
	Version      int      `yaml:"version"`
	FixturesDir  string   `yaml:"fixtures_dir,omitempty"`
	Emoji        *bool    `yaml:"emoji,omitempty"`
	Debug        bool     `yaml:"debug,omitempty"`
	RecentShapes []string `yaml:"recent_shapes,omitempty"`
}

// Default returns an initialized Config with version set.
func Default() Config {
	return Config{
		Version:      currentVersion,
		RecentShapes: []string{},
	}
}

// Path returns the config file location. LSMODEL_CONFIG_PATH wins over
// the home directory default.
func Path() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvConfigPath)); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFileName), nil
}

// Load reads and parses the config file. A missing file yields Default.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = currentVersion
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory when needed.
func Save(path string, cfg Config) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// EmojiEnabled defaults to true when the file does not say otherwise.
func (c Config) EmojiEnabled() bool {
	return c.Emoji == nil || *c.Emoji
}

// RememberShape moves name to the front of RecentShapes.
func (c *Config) RememberShape(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	recent := slices.DeleteFunc(slices.Clone(c.RecentShapes), func(s string) bool { return s == name })
	recent = append([]string{name}, recent...)
	if len(recent) > maxRecentShapes {
		recent = recent[:maxRecentShapes]
	}
	c.RecentShapes = recent
}

// ResolveFixture joins relative fixture paths onto FixturesDir.
func (c Config) ResolveFixture(path string) string {
	if path == "" || filepath.IsAbs(path) || c.FixturesDir == "" {
		return path
	}
	return filepath.Join(c.FixturesDir, path)
}
