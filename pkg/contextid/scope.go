package contextid

import "context"

// WithPreserved runs fn and guarantees that the ID active before the call is
// active again afterwards, on normal return, on error and while a panic
// unwinds.
//
// The ID is read with Current, so an absent ID is materialised first. When
// ctx has a scope of its own, fn shares it and the captured ID is written
// back when fn returns. A ctx without a scope would share the root scope with
// every other such context, so fn instead runs in a child scope seeded with
// the captured ID and the root is never written.
func WithPreserved(ctx context.Context, fn func(context.Context) error) error {
	preserved := Current(ctx)
	if !hasScope(ctx) {
		return fn(WithID(ctx, preserved))
	}
	defer Set(ctx, preserved)
	return fn(ctx)
}

// WithNew runs fn under a freshly generated ID. fn gets a child scope, so the
// ID of ctx is left untouched whatever fn does, including when it fails or
// panics, and concurrent calls never observe each other's IDs.
func WithNew(ctx context.Context, fn func(context.Context) error) error {
	return fn(WithID(ctx, Generate()))
}
