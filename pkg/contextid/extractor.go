package contextid

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for slog based loggers.
// It only reports an ID that is already set and never generates one.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := Lookup(ctx); ok {
			return slog.String("context_id", id), true
		}
		return slog.Attr{}, false
	}
}
