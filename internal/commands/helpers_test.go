// Where: internal/commands/helpers_test.go
// What: Shared setup for command tests.
package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testEnv struct {
	deps     Dependencies
	out      *bytes.Buffer
	prompter *mockPrompter
	cfgPath  string
	dir      string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		out:      &bytes.Buffer{},
		prompter: &mockPrompter{},
		cfgPath:  filepath.Join(dir, "home", "config.yaml"),
		dir:      dir,
	}
	env.deps = Dependencies{
		Out:         env.out,
		ErrOut:      io.Discard,
		In:          strings.NewReader(""),
		Prompter:    env.prompter,
		Interactive: func() bool { return false },
		ConfigPath:  func() (string, error) { return env.cfgPath, nil },
	}
	return env
}

func (e *testEnv) run(args ...string) int {
	return Run(args, e.deps)
}

func (e *testEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func assertContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(out, fragment) {
			t.Fatalf("output should contain %q:\n%s", fragment, out)
		}
	}
}
