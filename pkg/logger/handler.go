package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// lineHandler is the slog.Handler at the bottom of every Logger. It filters
// by the shared level threshold, turns the record into a Record and writes
// the formatted line with a single Write call.
//
// Writes are not serialised here; a sink shared between goroutines has to
// tolerate concurrent Write calls itself.
type lineHandler struct {
	out       io.Writer
	level     *slog.LevelVar
	formatter *Formatter
	fields    []field
	groups    []string
}

type field struct {
	key   string
	value any
}

// rawValue carries a caller field through a slog.Record unchanged. slog.Any
// would widen numbers (float32 becomes float64) and resolve LogValuers, so
// the line would differ from what Formatter.Format renders for the same
// Fields.
type rawValue struct{ v any }

func newLineHandler(out io.Writer, level *slog.LevelVar, formatter *Formatter) *lineHandler {
	return &lineHandler{out: out, level: level, formatter: formatter}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) Handle(ctx context.Context, record slog.Record) error {
	fields := make(Fields, len(h.fields)+record.NumAttrs())
	for _, f := range h.fields {
		fields[f.key] = f.value
	}

	var collected []field
	record.Attrs(func(attr slog.Attr) bool {
		flattenAttr(&collected, h.groups, attr)
		return true
	})
	for _, f := range collected {
		fields[f.key] = f.value
	}

	line, err := h.formatter.Format(ctx, levelFromSlog(record.Level), Record{
		Message: record.Message,
		Fields:  fields,
	})
	if err != nil {
		return err
	}

	_, err = h.out.Write(line)
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	for _, attr := range attrs {
		flattenAttr(&clone.fields, h.groups, attr)
	}
	return clone
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *lineHandler) clone() *lineHandler {
	clone := &lineHandler{
		out:       h.out,
		level:     h.level,
		formatter: h.formatter,
	}
	if len(h.fields) > 0 {
		clone.fields = make([]field, len(h.fields))
		copy(clone.fields, h.fields)
	}
	if len(h.groups) > 0 {
		clone.groups = make([]string, len(h.groups))
		copy(clone.groups, h.groups)
	}
	return clone
}

// flattenAttr appends attr to dst, expanding groups into dotted keys.
func flattenAttr(dst *[]field, prefix []string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		next := prefix
		if attr.Key != "" {
			next = append(append([]string{}, prefix...), attr.Key)
		}
		for _, a := range attr.Value.Group() {
			flattenAttr(dst, next, a)
		}
		return
	}

	key := attr.Key
	if len(prefix) > 0 {
		key = strings.Join(append(append([]string{}, prefix...), key), ".")
	}
	value := attr.Value.Any()
	if raw, ok := value.(rawValue); ok {
		value = raw.v
	}
	*dst = append(*dst, field{key: key, value: value})
}
