package logging

import (
	"context"
	"log/slog"
	"os"

	"gorm.io/gorm"
)

// Setup installs a JSON logger writing to stdout.
func Setup() {
	slog.SetDefault(slog.New(consoleHandler()))
}

// SetupWithDB reinstalls the global logger with the database sink attached:
// every record still goes to stdout, and ERROR+ records are additionally
// batched into system_logs. Callers must Stop the returned handler on
// shutdown so the buffer is flushed.
func SetupWithDB(db *gorm.DB) *DBHandler {
	sink := NewDBHandler(db)
	slog.SetDefault(slog.New(&splitHandler{console: consoleHandler(), sink: sink}))
	return sink
}

func consoleHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// splitHandler writes each record to the console and forwards the ones the
// database sink accepts.
type splitHandler struct {
	console slog.Handler
	sink    *DBHandler
}

func (s *splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.console.Enabled(ctx, level) || s.sink.Enabled(ctx, level)
}

func (s *splitHandler) Handle(ctx context.Context, record slog.Record) error {
	var err error
	if s.console.Enabled(ctx, record.Level) {
		err = s.console.Handle(ctx, record)
	}
	if s.sink.Enabled(ctx, record.Level) {
		if sinkErr := s.sink.Handle(ctx, record); err == nil {
			err = sinkErr
		}
	}
	return err
}

func (s *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitHandler{console: s.console.WithAttrs(attrs), sink: s.sink}
}

func (s *splitHandler) WithGroup(name string) slog.Handler {
	return &splitHandler{console: s.console.WithGroup(name), sink: s.sink}
}
