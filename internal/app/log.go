package app

import (
	"io"
	"log/slog"

	"customgrid/internal/core"
)

// NewLogger returns a text logger writing to w at the named level.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// LogEvent records the outcome of a scene update. Ticks without input are
// not logged.
func LogEvent(log *slog.Logger, scene core.Scene, ev core.Event) {
	if ev.Kind == core.EventNone {
		return
	}
	log.Debug("grid input",
		slog.String("scene", scene.Name()),
		slog.String("result", ev.Kind.String()),
		slog.Int("x", ev.X),
		slog.Int("y", ev.Y),
		slog.Int("occupied", scene.Grid().Count()),
	)
}
