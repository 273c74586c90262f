// Where: internal/commands/app_test.go
// What: Tests for CLI run behavior.
// Why: Ensure command routing and config handling remain stable.
package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru-code/lightsail-model/internal/infra/config"
	"github.com/poruru-code/lightsail-model/internal/meta"
)

func TestRunNoArgsPrintsUsage(t *testing.T) {
	env := newTestEnv(t)
	if code := env.run(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	assertContains(t, env.out.String(), "Usage:", "lsmodel <command>")
}

func TestRunUnknownCommandSuggestsHelp(t *testing.T) {
	env := newTestEnv(t)
	if code := env.run("deploy"); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	assertContains(t, env.out.String(), "Next steps:", "lsmodel --help")
}

func TestRunVersion(t *testing.T) {
	env := newTestEnv(t)
	if code := env.run("version"); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if env.out.Len() == 0 {
		t.Fatal("expected version output")
	}
}

func TestCommandName(t *testing.T) {
	cases := map[string]string{
		"describe <shape>":               "describe",
		"compare <shape> <left> <right>": "compare",
		"shapes":                         "shapes",
		"":                               "",
	}
	for in, want := range cases {
		if got := commandName(in); got != want {
			t.Fatalf("commandName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRunNoEmojiFlag(t *testing.T) {
	env := newTestEnv(t)
	if code := env.run("--no-emoji", "enums", "ContactProtocol"); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if got := env.out.String(); got != "ContactProtocol (2 known values)\n   Email\n   SMS\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunRespectsEmojiConfig(t *testing.T) {
	env := newTestEnv(t)
	off := false
	cfg := config.Default()
	cfg.Emoji = &off
	if err := config.Save(env.cfgPath, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	env.run("shapes", "DiskMap")
	if got := env.out.String(); got != "1 model objects\n   DiskMap\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunRejectsBrokenConfig(t *testing.T) {
	env := newTestEnv(t)
	if err := os.MkdirAll(filepath.Dir(env.cfgPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(env.cfgPath, []byte("recent_shapes: {"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if code := env.run("shapes"); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	assertContains(t, env.out.String(), "decode config")
}

func TestRunLoadsEnvFile(t *testing.T) {
	env := newTestEnv(t)
	env.deps.ConfigPath = nil
	cfgPath := filepath.Join(env.dir, "from-env", "config.yaml")
	envFile := env.writeFile(t, "lsmodel.env", meta.EnvConfigPath+"="+cfgPath+"\n")
	t.Setenv(meta.EnvConfigPath, "")
	if err := os.Unsetenv(meta.EnvConfigPath); err != nil {
		t.Fatalf("unset env: %v", err)
	}

	if code := env.run("--env-file", envFile, "describe", "Tag"); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, env.out.String())
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.RecentShapes) != 1 || cfg.RecentShapes[0] != "Tag" {
		t.Fatalf("config from env file not used: %#v", cfg)
	}
}

func TestRunWarnsOnMissingEnvFile(t *testing.T) {
	env := newTestEnv(t)
	env.run("--env-file", filepath.Join(env.dir, "missing.env"), "version")
	assertContains(t, env.out.String(), "failed to load env file")
}
