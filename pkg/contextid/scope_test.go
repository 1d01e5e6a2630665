package contextid_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ctxlog/pkg/contextid"
)

const (
	sampleID = "00ff00ff"
	otherID  = "ff00ff00"
)

func TestWithPreserved(t *testing.T) {
	t.Parallel()

	t.Run("restores after the body changed the ID", func(t *testing.T) {
		t.Parallel()
		ctx := contextid.WithID(context.Background(), sampleID)

		err := contextid.WithPreserved(ctx, func(ctx context.Context) error {
			contextid.Set(ctx, otherID)
			assert.Equal(t, otherID, contextid.Current(ctx))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, sampleID, contextid.Current(ctx))
	})

	t.Run("restores and propagates the body error", func(t *testing.T) {
		t.Parallel()
		ctx := contextid.WithID(context.Background(), sampleID)
		boom := errors.New("boom")

		err := contextid.WithPreserved(ctx, func(ctx context.Context) error {
			contextid.New(ctx)
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, sampleID, contextid.Current(ctx))
	})

	t.Run("restores when the body panics", func(t *testing.T) {
		t.Parallel()
		ctx := contextid.WithID(context.Background(), sampleID)

		assert.Panics(t, func() {
			_ = contextid.WithPreserved(ctx, func(ctx context.Context) error {
				contextid.Set(ctx, otherID)
				panic("boom")
			})
		})
		assert.Equal(t, sampleID, contextid.Current(ctx))
	})

	t.Run("materialises and keeps an absent ID", func(t *testing.T) {
		t.Parallel()
		ctx := contextid.WithScope(context.Background())

		var inside string
		err := contextid.WithPreserved(ctx, func(ctx context.Context) error {
			inside, _ = contextid.Lookup(ctx)
			contextid.Set(ctx, otherID)
			return nil
		})
		require.NoError(t, err)
		assert.Regexp(t, hexID, inside)
		assert.Equal(t, inside, contextid.Current(ctx))
	})
}

func TestWithNew(t *testing.T) {
	t.Parallel()

	t.Run("runs under a different ID and restores it", func(t *testing.T) {
		t.Parallel()
		ctx := contextid.WithID(context.Background(), sampleID)

		var inside string
		err := contextid.WithNew(ctx, func(ctx context.Context) error {
			inside = contextid.Current(ctx)
			return nil
		})
		require.NoError(t, err)
		assert.Regexp(t, hexID, inside)
		assert.NotEqual(t, sampleID, inside)
		assert.Equal(t, sampleID, contextid.Current(ctx))
	})

	t.Run("restores on error", func(t *testing.T) {
		t.Parallel()
		ctx := contextid.WithID(context.Background(), sampleID)
		boom := errors.New("boom")

		err := contextid.WithNew(ctx, func(context.Context) error { return boom })
		require.ErrorIs(t, err, boom)
		assert.Equal(t, sampleID, contextid.Current(ctx))
	})

	t.Run("caller ID survives a panic", func(t *testing.T) {
		t.Parallel()
		ctx := contextid.WithID(context.Background(), sampleID)

		assert.Panics(t, func() {
			_ = contextid.WithNew(ctx, func(ctx context.Context) error {
				contextid.Set(ctx, otherID)
				panic("boom")
			})
		})
		assert.Equal(t, sampleID, contextid.Current(ctx))
	})

	t.Run("nested calls unwind in order", func(t *testing.T) {
		t.Parallel()
		ctx := contextid.WithID(context.Background(), sampleID)

		err := contextid.WithNew(ctx, func(ctx context.Context) error {
			outer := contextid.Current(ctx)
			err := contextid.WithNew(ctx, func(ctx context.Context) error {
				assert.NotEqual(t, outer, contextid.Current(ctx))
				return nil
			})
			assert.Equal(t, outer, contextid.Current(ctx))
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, sampleID, contextid.Current(ctx))
	})
}
