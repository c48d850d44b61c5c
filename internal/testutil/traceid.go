package testutil

import "sync"

// FixedTraceID returns the same trace id on every call.
//
// Golden output that embeds a trace id stays byte-identical across runs.
// If token is empty, Generate returns "test-trace-default".
type FixedTraceID struct {
	token string
}

// NewFixedTraceID creates a generator that always returns token.
func NewFixedTraceID(token string) *FixedTraceID {
	if token == "" {
		token = "test-trace-default"
	}
	return &FixedTraceID{token: token}
}

// Generate returns the fixed trace id.
func (g *FixedTraceID) Generate() string {
	return g.token
}

// SequenceTraceIDs returns predetermined trace ids in order.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequenceTraceIDs struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewSequenceTraceIDs creates a generator that returns tokens in order.
//
//	gen := NewSequenceTraceIDs("trace-1", "trace-2")
//	gen.Generate() // "trace-1"
//	gen.Generate() // "trace-2"
//	gen.Generate() // panic: all trace ids exhausted
func NewSequenceTraceIDs(tokens ...string) *SequenceTraceIDs {
	return &SequenceTraceIDs{tokens: tokens}
}

// Generate returns the next predetermined id.
//
// Panics once every id has been handed out, which points at a test that
// ran more commands than it declared.
func (g *SequenceTraceIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic("SequenceTraceIDs: all trace ids exhausted")
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}
