package text3d

import (
	"log/slog"

	"github.com/gogpu/text3d/internal/logx"
)

// SetLogger configures the logger for text3d and all its sub-packages.
// By default, text3d produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by text3d:
//   - [slog.LevelDebug]: per-line metrics, skipped degenerate contours
//   - [slog.LevelInfo]: published meshes
//   - [slog.LevelWarn]: skipped triangulations, failed generations
//
// Example:
//
//	text3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger used by text3d.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logx.Logger()
}
