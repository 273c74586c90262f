// Where: internal/infra/ui/console_test.go
// What: Tests for console formatting.
package ui

import (
	"bytes"
	"testing"
)

func TestConsoleWithEmoji(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.Header("📦", "Tag")
	c.Item("hash", 42)
	c.Success("equal")
	c.Warn("unknown value")
	c.Error("failed")

	want := "📦 Tag\n" +
		"   hash:                42\n" +
		"✅ equal\n" +
		"⚠️ unknown value\n" +
		"❌ failed\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestConsoleWithoutEmojiUsesTextPrefixes(t *testing.T) {
	var buf bytes.Buffer
	c := NewWithEmoji(&buf, false)
	c.Header("📦", "Tag")
	c.Success("equal")
	c.Warn("unknown value")
	c.Error("failed")

	want := "Tag\n[ok] equal\n[warn] unknown value\n[error] failed\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestConsoleRawAddsNewline(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.Raw("{}")
	c.Raw("[]\n")
	c.ItemPlain("x")
	if buf.String() != "{}\n[]\n   x\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
