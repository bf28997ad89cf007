// Package logger provides the slog logger used by the processing daemon:
// JSON-structured records with color-coded levels for terminal output.
package logger

import (
	"context"
	"encoding/json"
	"io"
	stdLog "log"
	"log/slog"
	"os"

	"github.com/fatih/color"
)

// Handler renders slog records with a colored level tag and pretty-printed
// attribute payload.
type Handler struct {
	slog.Handler
	l *stdLog.Logger
}

// NewLogger creates the daemon logger writing to stdout at debug level.
func NewLogger() *slog.Logger {
	return slog.New(NewHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// NewHandler creates a color handler over the given writer.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	return &Handler{
		Handler: slog.NewJSONHandler(out, opts),
		l:       stdLog.New(out, "", 0),
	}
}

// Handle formats and prints a single record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]interface{}, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()

		return true
	})

	var payload []byte
	if len(fields) > 0 {
		var err error
		payload, err = json.MarshalIndent(fields, "", "	")
		if err != nil {
			return err
		}
	}

	h.l.Println(
		r.Time.Format("[15:04:05.000]"),
		level,
		color.BlueString(r.Message),
		color.WhiteString(string(payload)),
	)

	return nil
}
