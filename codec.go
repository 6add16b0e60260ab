// Package jot parses, represents, mutates and serializes JSON documents.
//
// A document is a tree of Values. Objects preserve insertion order and are
// backed by an open-addressing hash table with tombstone-free deletion, so
// key lookup stays O(1) across any sequence of inserts and removes. The
// serializer measures before it writes, so every output buffer is
// allocated exactly once at exactly the right size.
//
// All fallible operations are methods on a Codec, which carries the
// allocator record and the output formatting options. A Codec is cheap and
// holds no state besides its configuration; use one per logical call site.
// A single tree must only ever be mutated by one goroutine.
package jot

import (
	"jot.dev/alloc"
)

const (
	// startingCapacity is the first non-zero capacity of both containers.
	startingCapacity = 16
	// maxNesting bounds recursion on parse and on every tree walk.
	maxNesting = 2048
)

// Codec is the capability record threaded through the engine: the
// allocator used for every byte buffer, and the serializer options.
type Codec struct {
	// Alloc supplies and releases all byte buffers: string payloads,
	// object keys, unescape scratch and serializer output.
	Alloc *alloc.A

	// FormatNumber, when set, overrides number formatting entirely. It
	// appends the formatted value to dst and returns the extended slice.
	FormatNumber func(n float64, dst []byte) []byte

	// FloatFormat, when set, is an fmt verb string (such as "%.10g")
	// used instead of the default round-trip format.
	FloatFormat string

	// EscapeSlashes controls whether '/' is emitted as `\/`, which keeps
	// output safe to embed in HTML and XML. On by default.
	EscapeSlashes bool
}

// Default returns a Codec backed by the heap allocator, with slash
// escaping on and the 17 significant digit round-trip number format.
func Default() *Codec {
	return &Codec{Alloc: alloc.Heap(), EscapeSlashes: true}
}
