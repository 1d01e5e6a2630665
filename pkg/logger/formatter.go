package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrymomot/ctxlog/pkg/contextid"
)

// Format selects how records are rendered.
type Format string

const (
	// FormatJSON renders one JSON object per line.
	FormatJSON Format = "json"
	// FormatString renders a compact comma separated line.
	FormatString Format = "string"
)

// Reserved keys of the JSON format. They always win over caller fields.
const (
	KeyMessage  = MessageKey
	KeySeverity = "s"
	KeyContext  = "c"
)

// DefaultNewlineReplacement stands in for newlines inside string format messages.
const DefaultNewlineReplacement = "↲"

// FormatterConfig is the rendering configuration of a logger.
type FormatterConfig struct {
	Format             Format
	IncludeContext     bool
	NewlineReplacement string
}

// Formatter renders records into single terminated lines.
// It is immutable and safe for concurrent use.
type Formatter struct {
	cfg    FormatterConfig
	render func(ctx context.Context, lvl Level, rec Record) ([]byte, error)
}

// NewFormatter validates cfg and returns a formatter for it.
func NewFormatter(cfg FormatterConfig) (*Formatter, error) {
	f := &Formatter{cfg: cfg}
	switch cfg.Format {
	case FormatJSON:
		f.render = f.renderJSON
	case FormatString:
		if strings.Contains(cfg.NewlineReplacement, "\n") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNewlineReplacement, cfg.NewlineReplacement)
		}
		f.render = f.renderString
	default:
		return nil, fmt.Errorf("%w: %q, must be %q or %q", ErrUnsupportedFormat, cfg.Format, FormatJSON, FormatString)
	}
	return f, nil
}

// Config returns the configuration the formatter was built with.
func (f *Formatter) Config() FormatterConfig { return f.cfg }

// Format renders rec at level lvl. When context inclusion is enabled the
// active context ID of ctx is read, which materialises one if none is set.
func (f *Formatter) Format(ctx context.Context, lvl Level, rec Record) ([]byte, error) {
	return f.render(ctx, lvl, rec)
}

func (f *Formatter) renderJSON(ctx context.Context, lvl Level, rec Record) ([]byte, error) {
	obj := make(map[string]any, len(rec.Fields)+3)
	for k, v := range rec.Fields {
		obj[k] = jsonValue(v)
	}
	obj[KeyMessage] = rec.Message
	obj[KeySeverity] = lvl.Initial()
	if f.cfg.IncludeContext {
		obj[KeyContext] = contextid.Current(ctx)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode terminates the object with exactly one newline
	if err := enc.Encode(obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeRecord, err)
	}
	return buf.Bytes(), nil
}

func (f *Formatter) renderString(ctx context.Context, lvl Level, rec Record) ([]byte, error) {
	parts := make([]string, 0, 4)
	parts = append(parts, lvl.Initial())
	if f.cfg.IncludeContext {
		parts = append(parts, contextid.Current(ctx))
	}
	parts = append(parts, strings.ReplaceAll(rec.Message, "\n", f.cfg.NewlineReplacement))
	if hasExtraFields(rec.Fields) {
		parts = append(parts, "...")
	}

	var buf bytes.Buffer
	buf.Grow(32 + len(rec.Message))
	buf.WriteString(strings.Join(parts, ", "))
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// jsonValue renders errors by their message; encoding/json would emit {}.
func jsonValue(v any) any {
	if err, ok := v.(error); ok {
		if _, custom := v.(json.Marshaler); !custom {
			return err.Error()
		}
	}
	return v
}

func hasExtraFields(fields Fields) bool {
	for k := range fields {
		if k != MessageKey {
			return true
		}
	}
	return false
}
