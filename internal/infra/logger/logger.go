// Where: internal/infra/logger/logger.go
// What: Process-wide structured diagnostic logger.
// Why: Keep debug traces out of user-facing output unless asked for.
package logger

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// Config controls where diagnostics go.
type Config struct {
	Out   io.Writer
	Debug bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger. Without Debug or Out every record is
// dropped. The returned func restores the discarding logger.
func Setup(cfg Config) func() {
	if !cfg.Debug || cfg.Out == nil {
		set(discard())
		return func() {}
	}

	h := slog.NewJSONHandler(cfg.Out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	set(slog.New(h))
	L().Debug("logger.initialized")

	return func() { set(discard()) }
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func set(l *slog.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
