// SPDX-License-Identifier: MIT

// Package logger builds the structured loggers used by the command line.
package logger

import (
	"io"
	"log/slog"
	"time"
)

// Config selects the log destination and verbosity.
type Config struct {
	Out   io.Writer // nil discards
	Debug bool
}

// New returns a JSON logger writing to cfg.Out. Debug lowers the level to
// Debug and adds source positions. Timestamps are UTC RFC 3339.
func New(cfg Config) *slog.Logger {
	if cfg.Out == nil {
		return Discard()
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(cfg.Out, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
