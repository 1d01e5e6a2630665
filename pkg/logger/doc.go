// Package logger provides a leveled logging facade that writes exactly one
// line per event, as JSON or as a compact string, and tags every line with
// the context ID of the current unit of work.
//
// The package is built on log/slog: a Logger owns a slog.Handler that filters
// by a slog.LevelVar threshold, turns records into a Record and renders them
// with a Formatter. The same handler is available to plain slog callers
// through Logger.Handler and Logger.Slog.
//
// # Levels
//
// Six ordered levels exist: Debug < Info < Warn < Error < Fatal < Unknown.
// ParseLevel accepts level names in any case, Level and integer values
// (passed through unchanged) and slog.Level values. Unrecognised names fail
// with ErrInvalidLevel instead of falling back to a default.
//
// # Call shapes
//
// Every leveled method takes a context and one of these argument shapes:
//
//	log.Info(ctx, "user signed in")
//	log.Info(ctx, "user signed in", logger.Fields{"user_id": 42})
//	log.Info(ctx, logger.Fields{"m": "user signed in", "user_id": 42})
//	log.Debug(ctx, logger.Defer(func() any {
//	    return []any{"cache state", expensiveSnapshot()}
//	}))
//
// The "m" key of a map carries the message. A Deferred producer runs only if
// the level is enabled. Any other shape fails with ErrInvalidArguments.
//
// # Output
//
// JSON lines spread the fields at the top level and add the reserved keys
// "m" (message), "s" (severity initial) and "c" (context ID), which override
// caller fields of the same name:
//
//	{"c":"00ff00ff","m":"message","param":"extra","s":"I"}
//
// String lines are comma separated, replace newlines in the message with a
// visible token and end with "..." when the record has fields:
//
//	I, 00ff00ff, message, ...
//
// # Context IDs
//
// Context IDs live in package contextid and belong to the unit of work
// carried by ctx, not to a Logger: two loggers used with the same ctx report
// the same ID. Reading the ID when none is set generates and stores one.
// Logger mirrors the contextid operations for convenience:
//
//	ctx = log.WithScope(ctx)
//	_ = log.WithNewContext(ctx, func(ctx context.Context) error {
//	    return log.Info(ctx, "inside a fresh context")
//	})
//
// # Configuration
//
// New reads Config from the environment (LOGGER_FORMAT, LOGGER_CONTEXT,
// LOGGER_LEVEL, LOGGER_CR_CHARACTER) through package config unless
// WithConfig is given. LoadConfig reads YAML, TOML or .env files. Options
// such as WithFormat, WithLevel or WithEnvironment override both.
//
// # Concurrency
//
// All work happens synchronously on the calling goroutine. Each line is
// handed to the sink in a single Write call, but Logger does not serialise
// writes: a sink shared by several goroutines must be safe for concurrent
// use on its own.
//
// # Disabling
//
// NullLogger implements Leveled and does nothing at all, not even argument
// validation. Use it where logging must be switched off without touching
// call sites.
package logger
