package logger

import (
	"fmt"
	"strings"
)

// MessageKey is the field key reserved for the message text.
const MessageKey = "m"

// Fields holds the structured part of a log record.
type Fields map[string]any

// Record is the canonical form of a logging call.
type Record struct {
	Message string
	Fields  Fields
}

// Deferred produces logging arguments on demand. It is only invoked when the
// record is going to be written, and at most once per call.
//
// The result is interpreted like eager arguments: a string, a map, or a
// []any holding a string and a map.
type Deferred func() any

// Defer wraps fn so it can be passed to the leveled methods.
func Defer(fn func() any) Deferred { return fn }

// Normalizer turns the accepted call shapes into a Record.
type Normalizer struct {
	// RequireMessage rejects records that carry neither a message nor fields.
	RequireMessage bool
}

var defaultNormalizer = Normalizer{}

// Normalize converts args with the default, permissive normalizer.
//
// Accepted shapes:
//
//	("text")                 -> {text, {}}
//	("text", fields)         -> {text, fields}, a "m" entry in fields is dropped
//	(fields with "m")        -> {fields["m"], fields without "m"}
//	(fields without "m")     -> {"", fields}
//	(Deferred)               -> the producer's result, normalized the same way
//
// fields may be a Fields, map[string]any or map[string]string value. Any
// other shape fails with ErrInvalidArguments.
func Normalize(args ...any) (Record, error) {
	return defaultNormalizer.Normalize(args...)
}

// Normalize converts args into a Record. See the package level Normalize for
// the accepted shapes.
func (n Normalizer) Normalize(args ...any) (Record, error) {
	if fn, ok := deferredArg(args); ok {
		return n.resolve(fn)
	}
	return n.normalize(args)
}

// resolve invokes a producer and normalizes what it returned.
func (n Normalizer) resolve(fn Deferred) (Record, error) {
	if fn == nil {
		return Record{}, fmt.Errorf("%w: nil deferred producer", ErrInvalidArguments)
	}

	var args []any
	switch v := fn().(type) {
	case []any:
		args = v
	default:
		args = []any{v}
	}
	if _, nested := deferredArg(args); nested {
		return Record{}, fmt.Errorf("%w: deferred producer returned another producer", ErrInvalidArguments)
	}
	return n.normalize(args)
}

func (n Normalizer) normalize(args []any) (Record, error) {
	if len(args) == 0 || len(args) > 2 {
		return Record{}, invalidShape(args)
	}

	var rec Record
	switch first := args[0].(type) {
	case string:
		rec.Message = first
		if len(args) == 2 {
			fields, ok := asFields(args[1])
			if !ok {
				return Record{}, invalidShape(args)
			}
			rec.Fields = copyFields(fields)
			delete(rec.Fields, MessageKey)
		}
	default:
		fields, ok := asFields(first)
		if !ok || len(args) == 2 {
			return Record{}, invalidShape(args)
		}
		rec.Fields = copyFields(fields)
		if m, present := rec.Fields[MessageKey]; present {
			rec.Message = messageText(m)
			delete(rec.Fields, MessageKey)
		}
	}

	if rec.Fields == nil {
		rec.Fields = Fields{}
	}
	if n.RequireMessage && rec.Message == "" && len(rec.Fields) == 0 {
		return Record{}, fmt.Errorf("%w (%w)", ErrEmptyMessage, ErrInvalidArguments)
	}
	return rec, nil
}

// deferredArg reports whether args is a single producer.
func deferredArg(args []any) (Deferred, bool) {
	if len(args) != 1 {
		return nil, false
	}
	switch fn := args[0].(type) {
	case Deferred:
		return fn, true
	case func() any:
		return fn, true
	}
	return nil, false
}

func asFields(v any) (Fields, bool) {
	switch m := v.(type) {
	case Fields:
		return m, true
	case map[string]any:
		return m, true
	case map[string]string:
		fields := make(Fields, len(m))
		for k, s := range m {
			fields[k] = s
		}
		return fields, true
	}
	return nil, false
}

func copyFields(src Fields) Fields {
	dst := make(Fields, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func messageText(v any) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	default:
		return fmt.Sprint(m)
	}
}

func invalidShape(args []any) error {
	types := make([]string, len(args))
	for i, a := range args {
		types[i] = fmt.Sprintf("%T", a)
	}
	return fmt.Errorf(
		"%w: expected one of (string), (string, map), (map) or a deferred producer, got (%s)",
		ErrInvalidArguments, strings.Join(types, ", "),
	)
}
