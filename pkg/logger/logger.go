package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/ctxlog/pkg/contextid"
)

// Leveled is the logging surface shared by Logger and NullLogger.
type Leveled interface {
	Debug(ctx context.Context, args ...any) error
	Info(ctx context.Context, args ...any) error
	Warn(ctx context.Context, args ...any) error
	Error(ctx context.Context, args ...any) error
	Fatal(ctx context.Context, args ...any) error
	Unknown(ctx context.Context, args ...any) error
	Level() Level
	SetLevel(v any) error
}

var (
	_ Leveled = (*Logger)(nil)
	_ Leveled = NullLogger{}
)

// Logger writes one formatted line per accepted call to its sink.
type Logger struct {
	out        io.Writer
	rank       atomic.Int64 // threshold exactly as set, level holds its slog form
	level      *slog.LevelVar
	formatter  *Formatter
	handler    slog.Handler
	normalizer Normalizer
}

// New creates a Logger.
//
// The configuration comes from the environment (see Config) unless WithConfig
// supplies one; field options override either. The sink defaults to
// os.Stdout. A sink with a Flush method, such as *bufio.Writer, is flushed
// after every line so output is visible immediately.
func New(opts ...Option) (*Logger, error) {
	o := &options{output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := o.resolveConfig()
	if err != nil {
		return nil, err
	}

	formatter, err := NewFormatter(cfg.formatterConfig())
	if err != nil {
		return nil, err
	}

	level := new(slog.LevelVar)
	level.Set(cfg.Level.slogLevel())

	out := unbuffered(o.output)
	l := &Logger{
		out:        out,
		level:      level,
		formatter:  formatter,
		handler:    decorate(newLineHandler(out, level, formatter), o.extractors...),
		normalizer: o.normalizer,
	}
	l.rank.Store(int64(cfg.Level))
	return l, nil
}

// MustNew is like New but panics on failure.
func MustNew(opts ...Option) *Logger {
	l, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Debug logs at LevelDebug. args take one of the shapes accepted by Normalize.
func (l *Logger) Debug(ctx context.Context, args ...any) error {
	return l.Log(ctx, LevelDebug, args...)
}

// Info logs at LevelInfo.
func (l *Logger) Info(ctx context.Context, args ...any) error {
	return l.Log(ctx, LevelInfo, args...)
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(ctx context.Context, args ...any) error {
	return l.Log(ctx, LevelWarn, args...)
}

// Error logs at LevelError.
func (l *Logger) Error(ctx context.Context, args ...any) error {
	return l.Log(ctx, LevelError, args...)
}

// Fatal logs at LevelFatal. It does not terminate the process.
func (l *Logger) Fatal(ctx context.Context, args ...any) error {
	return l.Log(ctx, LevelFatal, args...)
}

// Unknown logs at LevelUnknown, which passes every named threshold.
func (l *Logger) Unknown(ctx context.Context, args ...any) error {
	return l.Log(ctx, LevelUnknown, args...)
}

// Log writes a record at lvl.
//
// Eager arguments are normalized before the threshold check, so malformed
// calls fail even when they would have been filtered. A Deferred producer is
// only invoked once the level is known to be enabled.
func (l *Logger) Log(ctx context.Context, lvl Level, args ...any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fn, lazy := deferredArg(args)
	var rec Record
	if !lazy {
		var err error
		if rec, err = l.normalizer.Normalize(args...); err != nil {
			return err
		}
	}

	if !l.handler.Enabled(ctx, lvl.slogLevel()) {
		return nil
	}

	if lazy {
		var err error
		if rec, err = l.normalizer.resolve(fn); err != nil {
			return err
		}
	}

	record := slog.NewRecord(time.Now(), lvl.slogLevel(), rec.Message, 0)
	for k, v := range rec.Fields {
		record.AddAttrs(slog.Any(k, rawValue{v}))
	}
	return l.handler.Handle(ctx, record)
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return Level(l.rank.Load())
}

// SetLevel changes the threshold. v accepts anything ParseLevel does.
// It is safe to call while other goroutines are logging.
func (l *Logger) SetLevel(v any) error {
	lvl, err := ParseLevel(v)
	if err != nil {
		return err
	}
	l.rank.Store(int64(lvl))
	l.level.Set(lvl.slogLevel())
	return nil
}

// Enabled reports whether records at lvl are currently written.
func (l *Logger) Enabled(lvl Level) bool {
	return l.handler.Enabled(context.Background(), lvl.slogLevel())
}

// Write passes p to the sink unformatted.
func (l *Logger) Write(p []byte) (int, error) {
	return l.out.Write(p)
}

// Formatter returns the formatter built at construction.
func (l *Logger) Formatter() *Formatter {
	return l.formatter
}

// Handler exposes the logger's pipeline as a slog.Handler. Records logged
// through it share the sink, threshold, format and context IDs.
func (l *Logger) Handler() slog.Handler {
	return l.handler
}

// Slog returns a *slog.Logger writing through the same pipeline, e.g. for
// slog.SetDefault or libraries that expect one.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(l.handler)
}

// ContextID returns the active context ID, generating one if none is set.
// The ID belongs to the unit of work of ctx, not to the logger.
func (l *Logger) ContextID(ctx context.Context) string {
	return contextid.Current(ctx)
}

// SetContextID replaces the active context ID.
func (l *Logger) SetContextID(ctx context.Context, id string) {
	contextid.Set(ctx, id)
}

// NewContextID starts a new context ID and returns it.
func (l *Logger) NewContextID(ctx context.Context) string {
	return contextid.New(ctx)
}

// WithScope returns a context for a new unit of work.
func (l *Logger) WithScope(ctx context.Context) context.Context {
	return contextid.WithScope(ctx)
}

// WithPreservedContext runs fn and restores the context ID afterwards.
func (l *Logger) WithPreservedContext(ctx context.Context, fn func(context.Context) error) error {
	return contextid.WithPreserved(ctx, fn)
}

// WithNewContext runs fn under a new context ID and restores the previous one.
func (l *Logger) WithNewContext(ctx context.Context, fn func(context.Context) error) error {
	return contextid.WithNew(ctx, fn)
}

type flusher interface {
	Flush() error
}

// autoFlushWriter flushes a buffered sink after every write.
type autoFlushWriter struct {
	w io.Writer
	f flusher
}

func (a autoFlushWriter) Write(p []byte) (int, error) {
	n, err := a.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, a.f.Flush()
}

func unbuffered(w io.Writer) io.Writer {
	if f, ok := w.(flusher); ok {
		return autoFlushWriter{w: w, f: f}
	}
	return w
}
