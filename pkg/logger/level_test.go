package logger_test

import (
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ctxlog/pkg/logger"
)

type token string

func (t token) String() string { return string(t) }

func TestParseLevel(t *testing.T) {
	t.Parallel()

	t.Run("numbers pass through unchanged", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{1, int64(3), uint8(0), 42, -7} {
			lvl, err := logger.ParseLevel(v)
			require.NoError(t, err)
			assert.EqualValues(t, v, lvl)
		}
	})

	t.Run("names map to strictly increasing ranks", func(t *testing.T) {
		t.Parallel()
		names := []string{"debug", "info", "warn", "error", "fatal", "unknown"}
		prev := logger.Level(-1)
		for _, name := range names {
			lvl, err := logger.ParseLevel(name)
			require.NoError(t, err, name)
			assert.Greater(t, lvl, prev, name)
			prev = lvl
		}
	})

	t.Run("names are case insensitive", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"WARN", "Warn", "warn"} {
			lvl, err := logger.ParseLevel(name)
			require.NoError(t, err)
			assert.Equal(t, logger.LevelWarn, lvl)
		}
	})

	t.Run("token like values", func(t *testing.T) {
		t.Parallel()
		lvl, err := logger.ParseLevel(token("error"))
		require.NoError(t, err)
		assert.Equal(t, logger.LevelError, lvl)

		lvl, err = logger.ParseLevel(logger.LevelFatal)
		require.NoError(t, err)
		assert.Equal(t, logger.LevelFatal, lvl)
	})

	t.Run("slog levels", func(t *testing.T) {
		t.Parallel()
		cases := map[slog.Level]logger.Level{
			slog.LevelDebug: logger.LevelDebug,
			slog.LevelInfo:  logger.LevelInfo,
			slog.LevelWarn:  logger.LevelWarn,
			slog.LevelError: logger.LevelError,
		}
		for in, want := range cases {
			lvl, err := logger.ParseLevel(in)
			require.NoError(t, err)
			assert.Equal(t, want, lvl, in.String())
		}
	})

	t.Run("unrecognised values fail", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{"random", "", " info", 1.5, nil, token("verbose")} {
			_, err := logger.ParseLevel(v)
			assert.ErrorIs(t, err, logger.ErrInvalidLevel, "%#v", v)
		}
	})

	t.Run("error carries the raw value", func(t *testing.T) {
		t.Parallel()
		_, err := logger.ParseLevel("random")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "random")
	})

	t.Run("must variant panics", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, logger.LevelInfo, logger.MustParseLevel("info"))
		assert.Panics(t, func() { logger.MustParseLevel("random") })
	})
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEBUG", logger.LevelDebug.String())
	assert.Equal(t, "FATAL", logger.LevelFatal.String())
	assert.Equal(t, "UNKNOWN", logger.LevelUnknown.String())
	assert.Equal(t, "UNKNOWN", logger.Level(42).String())
	assert.Equal(t, "W", logger.LevelWarn.Initial())
	assert.Equal(t, "U", logger.Level(-3).Initial())
}

func TestLevelText(t *testing.T) {
	t.Parallel()

	text, err := logger.LevelError.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "error", string(text))

	var lvl logger.Level
	require.NoError(t, lvl.UnmarshalText([]byte("debug")))
	assert.Equal(t, logger.LevelDebug, lvl)

	err = lvl.UnmarshalText([]byte("loud"))
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	assert.Equal(t, logger.LevelDebug, lvl, "failed unmarshal keeps the previous value")
}

func TestLevel_ExtremeThresholds(t *testing.T) {
	t.Parallel()

	t.Run("huge threshold silences everything", func(t *testing.T) {
		t.Parallel()
		l, buf := newTestLogger(t)
		require.NoError(t, l.SetLevel(math.MaxInt/2))
		assert.Equal(t, logger.Level(math.MaxInt/2), l.Level())

		require.NoError(t, l.Debug(context.Background(), "should be filtered"))
		require.NoError(t, l.Unknown(context.Background(), "should be filtered"))
		assert.False(t, l.Enabled(logger.LevelUnknown))
		assert.Empty(t, buf.String())
	})

	t.Run("huge negative threshold lets everything through", func(t *testing.T) {
		t.Parallel()
		l, buf := newTestLogger(t, logger.WithIncludeContext(false))
		require.NoError(t, l.SetLevel(math.MinInt))
		assert.Equal(t, logger.Level(math.MinInt), l.Level())

		require.NoError(t, l.Debug(context.Background(), "kept"))
		assert.JSONEq(t, `{"m":"kept","s":"D"}`, lines(buf)[0])
	})

	t.Run("set value is reported unchanged", func(t *testing.T) {
		t.Parallel()
		l, _ := newTestLogger(t)
		for _, v := range []int{-7, 0, 5, 42, math.MaxInt / 4, math.MaxInt} {
			require.NoError(t, l.SetLevel(v))
			assert.Equal(t, logger.Level(v), l.Level())
		}
	})
}
