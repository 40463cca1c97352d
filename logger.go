package main

import (
	"io"
	"log/slog"
)

// newLogger builds the game's diagnostic logger. Logs go to w (stderr in
// practice) so they never mix with the race output on stdout. Unknown
// levels fall back to warn, which keeps a normal game silent.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
