// Where: internal/infra/ui/console.go
// What: Console output helpers for lsmodel commands.
// Why: Keep headers, rows, and warnings formatted the same in every command.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console writes formatted lines to Out.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

// New creates a Console with emoji enabled.
func New(out io.Writer) *Console {
	return &Console{Out: out, EmojiEnabled: true}
}

// NewWithEmoji creates a Console with explicit emoji settings.
func NewWithEmoji(out io.Writer, enabled bool) *Console {
	return &Console{Out: out, EmojiEnabled: enabled}
}

// Header prints a section header.
// Example: 📦 CreateDiskRequest.
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// Item prints an indented key-value row.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-20s %v\n", key+":", value)
}

// ItemPlain prints an indented line.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

// Success prints a success line.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("✅", "[ok] "), msg)
}

// Info prints a plain line.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", msg)
}

// Warn prints a warning line.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("⚠️", "[warn] "), msg)
}

// Error prints an error line.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("❌", "[error] "), msg)
}

// Raw writes text unchanged, adding a trailing newline when missing.
func (c *Console) Raw(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(c.Out, text)
}

func (c *Console) prefix(emoji, fallback string) string {
	if p := c.emojiPrefix(emoji); p != "" {
		return p
	}
	return fallback
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
