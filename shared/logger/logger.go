// Package logger builds the diagnostic logger for a run.
package logger

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// New returns a text logger on w tagged with a fresh run id. Without
// verbose every record is discarded.
func New(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With("run_id", uuid.NewString())
}
