// Package logging builds the application's slog.Logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a logger writing to w. The "prod" profile emits JSON lines;
// any other profile emits text with the source location attached. An
// unrecognised level falls back to info.
func New(profile, level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(profile, "prod") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		opts.AddSource = true
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// ParseLevel maps debug, info, warn and error (any case) to a slog.Level.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
