// Package contextid keeps the correlation ID of the current unit of work.
//
// A context ID is a short random hex string (8 bytes, 16 characters) that tags
// every log line produced while handling one logical operation, such as an
// incoming request or a background job. The ID is ambient: it is not owned by
// any logger instance, so every logger writing on behalf of the same unit of
// work reports the same ID.
//
// # Units of work
//
// A unit of work is represented by a context.Context carrying a scope. Use
// WithScope (or WithID) when a new unit starts, typically once per request or
// per spawned goroutine. Contexts without a scope of their own share a single
// process-level root scope, which plays the role of the main thread.
// WithPreserved and WithNew hand their callback a child scope whenever the
// root would otherwise be written, so concurrent callers using a bare
// context.Background never clobber each other's IDs.
//
// # Lazy materialisation
//
// Current never returns an empty string: when no ID is set it generates one,
// stores it and returns it, so two consecutive reads agree. Lookup is the
// side-effect free variant that reports whether an ID is set at all.
//
// # Usage
//
//	ctx := contextid.WithScope(context.Background())
//	id := contextid.Current(ctx) // e.g. "5d11f7c483dcfb2a"
//
//	_ = contextid.WithNew(ctx, func(ctx context.Context) error {
//		// a different ID is active in here
//		return process(ctx)
//	})
//	// id is active again
//
// # HTTP
//
// Middleware starts a scope per request and honours a client supplied
// X-Context-ID header when it is well-formed:
//
//	http.ListenAndServe(":8080", contextid.Middleware(mux))
//
// # Logger integration
//
// LoggerExtractor plugs into slog handler decorators and emits the active ID
// under the "context_id" key without materialising one.
package contextid
