// Where: internal/infra/logger/logger_test.go
// What: Tests for logger setup and reset.
package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupDebugWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	restore := Setup(Config{Out: &buf, Debug: true})
	t.Cleanup(restore)

	L().Debug("fixture.loaded", "shape", "Tag")
	out := buf.String()
	if !strings.Contains(out, `"msg":"fixture.loaded"`) || !strings.Contains(out, `"shape":"Tag"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if !strings.Contains(out, `"msg":"logger.initialized"`) {
		t.Fatalf("setup should log its own initialization: %s", out)
	}
}

func TestSetupWithoutDebugDiscards(t *testing.T) {
	var buf bytes.Buffer
	restore := Setup(Config{Out: &buf})
	t.Cleanup(restore)

	L().Error("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %s", buf.String())
	}
}

func TestRestoreDropsFurtherRecords(t *testing.T) {
	var buf bytes.Buffer
	restore := Setup(Config{Out: &buf, Debug: true})
	restore()
	buf.Reset()

	L().Info("after restore")
	if buf.Len() != 0 {
		t.Fatalf("expected no output after restore, got %s", buf.String())
	}
}
