// Package logging wires the --log-level and --log-format flags into log/slog.
//
// Loggers returned by New look up the default handler on every record, so a
// component may create its logger before the command line has been parsed.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Init installs the default handler. Records below level are dropped and
// format selects "text" or "json" output on w.
func Init(w io.Writer, level slog.Level, format string) error {
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
	case "text", "":
		slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	return nil
}

// New returns a logger tagged with component that writes through whichever
// handler is the default at the time of each call.
func New(component string) *slog.Logger {
	return slog.New(lateHandler{}).With(slog.String("component", component))
}

// ParseLevel maps a flag value (debug, info, warn, error) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// lateHandler replays its attributes and groups onto the current default
// handler for each record.
type lateHandler struct {
	wrap func(slog.Handler) slog.Handler
}

func (h lateHandler) target() slog.Handler {
	base := slog.Default().Handler()
	if h.wrap == nil {
		return base
	}

	return h.wrap(base)
}

func (h lateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slog.Default().Handler().Enabled(ctx, level)
}

func (h lateHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.target().Handle(ctx, r)
}

func (h lateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.chain(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h lateHandler) WithGroup(name string) slog.Handler {
	return h.chain(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h lateHandler) chain(step func(slog.Handler) slog.Handler) lateHandler {
	prev := h.wrap

	return lateHandler{wrap: func(base slog.Handler) slog.Handler {
		if prev != nil {
			base = prev(base)
		}

		return step(base)
	}}
}
