package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls an attribute out of a context. Attributes it
// reports are added as fields to every record logged with that context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// handlerDecorator wraps a slog.Handler and injects attributes from context.
//
// It keeps attributes and groups bound with WithAttrs and WithGroup itself
// instead of passing them down, so it can order every record as extracted
// attributes, then bound ones, then the record's own. The next handler lets
// later keys win, which gives extracted values the lowest precedence.
type handlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
	attrs      []slog.Attr
	groups     []string
}

// decorate wraps next with the non-nil extractors. Without any extractor next
// is returned as is.
func decorate(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	if len(clean) == 0 {
		return next
	}
	return &handlerDecorator{next: next, extractors: clean}
}

func (h *handlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle runs the extractors on every call so request scoped values are
// never stale.
func (h *handlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			out.AddAttrs(attr)
		}
	}
	out.AddAttrs(h.attrs...)

	own := make([]slog.Attr, 0, rec.NumAttrs())
	rec.Attrs(func(a slog.Attr) bool {
		own = append(own, a)
		return true
	})
	out.AddAttrs(nest(h.groups, own)...)
	return h.next.Handle(ctx, out)
}

func (h *handlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	clone.attrs = append(clone.attrs, nest(h.groups, attrs)...)
	return clone
}

func (h *handlerDecorator) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *handlerDecorator) clone() *handlerDecorator {
	return &handlerDecorator{
		next:       h.next,
		extractors: h.extractors,
		attrs:      append([]slog.Attr(nil), h.attrs...),
		groups:     append([]string(nil), h.groups...),
	}
}

// nest wraps attrs in the given groups, outermost first.
func nest(groups []string, attrs []slog.Attr) []slog.Attr {
	if len(groups) == 0 || len(attrs) == 0 {
		return attrs
	}
	attr := slog.Attr{Key: groups[len(groups)-1], Value: slog.GroupValue(attrs...)}
	for i := len(groups) - 2; i >= 0; i-- {
		attr = slog.Attr{Key: groups[i], Value: slog.GroupValue(attr)}
	}
	return []slog.Attr{attr}
}
