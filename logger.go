package pixconv

import (
	"log/slog"

	"github.com/gogpu/pixconv/internal/logging"
)

// SetLogger configures the logger for pixconv and all its sub-packages.
// By default, pixconv produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by pixconv:
//   - [slog.LevelDebug]: internal diagnostics (format transitions, filter
//     thread count, decoded image sizes)
//   - [slog.LevelWarn]: non-fatal issues (data URIs with unsupported MIME types)
//
// Per-pixel loops never log.
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	pixconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by pixconv.
// It never returns nil.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
