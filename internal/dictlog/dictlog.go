// Package dictlog wraps log/slog for the dictionary's debug tracing,
// standing in for the original core's fprintf(stderr, ...) calls with
// structured, leveled logging that a caller can silence or route. The
// dictionary façade logs its Insert and Delete operations; the hint
// search and save/load do not log.
//
// log/slog is standard library, not a pack-sourced dependency; no
// structured-logging library appears in any example repo's go.mod, so
// there is nothing in the corpus to adopt in its place, and slog is the
// idiomatic default for any Go program built against go1.21+.
package dictlog

import (
	"io"
	"log/slog"
)

// New returns a logger writing structured text records to w at the
// given level. A nil w discards output, matching a silent dictionary
// with no -v flag.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard is a logger that drops everything, used as the zero-value
// default for a dictionary constructed without an explicit logger.
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))
