package logger

import "context"

// NullLogger discards everything. It never formats, never touches context
// IDs and never fails, whatever it is called with, so it can replace a Logger
// without changing call sites.
type NullLogger struct{}

// NewNull returns a NullLogger.
func NewNull() NullLogger { return NullLogger{} }

func (NullLogger) Debug(context.Context, ...any) error   { return nil }
func (NullLogger) Info(context.Context, ...any) error    { return nil }
func (NullLogger) Warn(context.Context, ...any) error    { return nil }
func (NullLogger) Error(context.Context, ...any) error   { return nil }
func (NullLogger) Fatal(context.Context, ...any) error   { return nil }
func (NullLogger) Unknown(context.Context, ...any) error { return nil }

func (NullLogger) Log(context.Context, Level, ...any) error { return nil }

// Level reports LevelUnknown.
func (NullLogger) Level() Level { return LevelUnknown }

// SetLevel accepts and ignores any value.
func (NullLogger) SetLevel(any) error { return nil }

func (NullLogger) Enabled(Level) bool { return false }

// Write discards p and reports it as written.
func (NullLogger) Write(p []byte) (int, error) { return len(p), nil }
