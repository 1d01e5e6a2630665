package contextid

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Size is the number of random bytes behind a context ID.
// The hex rendering is twice as long.
const Size = 8

// scope is the mutable slot holding the active ID of one unit of work.
type scope struct {
	mu sync.Mutex
	id string
}

type contextKey struct{}

// root serves every context that has no scope of its own. WithPreserved and
// WithNew never write to it.
var root = &scope{}

// WithScope returns a child context carrying a fresh, empty scope.
// Start one per unit of work (request, job, goroutine) so that units running
// concurrently never observe each other's IDs.
func WithScope(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, &scope{})
}

// WithID returns a child context carrying a fresh scope preset to id.
func WithID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, &scope{id: id})
}

// hasScope reports whether ctx carries a scope of its own.
func hasScope(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	s, ok := ctx.Value(contextKey{}).(*scope)
	return ok && s != nil
}

func scopeFrom(ctx context.Context) *scope {
	if ctx == nil {
		return root
	}
	if s, ok := ctx.Value(contextKey{}).(*scope); ok && s != nil {
		return s
	}
	return root
}

// Lookup returns the active ID and whether one is set. It never generates.
func Lookup(ctx context.Context) (string, bool) {
	s := scopeFrom(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.id != ""
}

// Current returns the active ID of the unit of work ctx belongs to.
//
// If no ID is set, a new one is generated, stored in the scope and returned:
// reading the ID materialises it, and every later read in the same scope
// returns the same value until it is replaced.
func Current(ctx context.Context) string {
	s := scopeFrom(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id == "" {
		s.id = Generate()
	}
	return s.id
}

// Set replaces the active ID of the scope ctx belongs to.
// An empty id clears it, so the next Current generates a new one.
func Set(ctx context.Context, id string) {
	s := scopeFrom(ctx)
	s.mu.Lock()
	s.id = id
	s.mu.Unlock()
}

// New generates a fresh ID, makes it active and returns it.
func New(ctx context.Context) string {
	id := Generate()
	Set(ctx, id)
	return id
}

// Generate returns a random hex encoded ID without touching any scope.
func Generate() string {
	b := make([]byte, Size)
	if _, err := rand.Read(b); err != nil {
		panic("contextid: crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}
