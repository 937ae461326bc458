package s2

// Options holds process-wide tunables for the loop package, following the
// same "global mutable Options struct" convention used elsewhere in this
// module for process-scoped configuration: callers mutate Config once at
// startup (or in a test's setup) rather than threading parameters through
// every constructor.
type Options struct {
	// LazyIndexing controls whether a freshly constructed Loop defers
	// building its ShapeIndex until the first query that needs it (the
	// default), or builds it eagerly during construction. Eager indexing
	// trades slower construction for predictable query latency, which
	// matters for callers building many loops they will query heavily
	// right away.
	LazyIndexing bool

	// DecodeMaxNumVertices bounds the vertex count the decoder will
	// accept, protecting callers that decode loops from untrusted input
	// from a single malformed length prefix requesting an enormous
	// allocation.
	DecodeMaxNumVertices int

	// DebugValidation, when true, makes NewLoopFromPoints panic instead of merely
	// returning an invalid loop when IsValid would fail. Intended for
	// tests and development builds, not production decoding paths where
	// malformed input must return an error.
	DebugValidation bool
}

// Config is the active process-wide configuration. Tests that need
// different settings should save the previous value, mutate Config, and
// restore it in a defer.
var Config = Options{
	LazyIndexing:         true,
	DecodeMaxNumVertices: 50000000,
	DebugValidation:      false,
}
