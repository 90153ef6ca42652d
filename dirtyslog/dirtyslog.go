package dirtyslog

import (
	"context"
	"log/slog"

	"github.com/evan-idocoding/dirtyconst"
)

// Message is the slog message used for every Warning.
const Message = "dirtyconst: replace is disabled in this build"

// Handler returns a WarningHandler that logs each Warning at slog.LevelWarn.
//
// Attributes: mode, type, and caller (when known). A nil l means slog.Default()
// at the time each Warning is logged.
func Handler(l *slog.Logger) dirtyconst.WarningHandler {
	return func(w dirtyconst.Warning) {
		lg := l
		if lg == nil {
			lg = slog.Default()
		}
		attrs := make([]slog.Attr, 0, 3)
		attrs = append(attrs, slog.String("mode", w.Mode.String()))
		if w.Type != "" {
			attrs = append(attrs, slog.String("type", w.Type))
		}
		if c := w.Caller(); c != "" {
			attrs = append(attrs, slog.String("caller", c))
		}
		lg.LogAttrs(context.Background(), slog.LevelWarn, Message, attrs...)
	}
}

// Install sets Handler(l) as the process-wide dirtyconst warning handler and
// returns the previous handler.
func Install(l *slog.Logger) dirtyconst.WarningHandler {
	return dirtyconst.SetWarningHandler(Handler(l))
}
