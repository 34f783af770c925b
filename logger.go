package ggcomp

import (
	"log/slog"

	"github.com/gogpu/ggcomp/internal/logging"
)

// SetLogger configures the logger for ggcomp and all its sub-packages.
// By default, ggcomp produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by ggcomp:
//   - [slog.LevelDebug]: pipeline diagnostics (buffer shapes, placement box, mask range)
//   - [slog.LevelWarn]: non-fatal anomalies (extra batch elements, fully transparent overlay mask)
//
// Example:
//
//	ggcomp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by ggcomp.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Get()
}
