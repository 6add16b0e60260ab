// Package alloc defines the allocator capability record that the engine
// threads through every byte-buffer allocation, so callers can substitute
// arena or pool allocators per codec instance instead of configuring
// anything globally.
package alloc

// A is a pair of allocation functions plus an opaque context handed to
// both. Allocate returns nil to signal failure; the engine treats that as
// an allocation error and unwinds. Release may be a no-op for collected
// backends but is always called exactly once per live buffer when a tree
// is freed, which is what arena backends rely on.
type A struct {
	Allocate func(size int, ctx any) []byte
	Release  func(b []byte, ctx any)
	Ctx      any
}

// Heap returns the default record backed by the Go heap. Release does
// nothing; the collector reclaims the buffers.
func Heap() *A {
	return &A{
		Allocate: func(size int, _ any) []byte { return make([]byte, size) },
		Release:  func(_ []byte, _ any) {},
	}
}

// Bytes allocates a buffer of exactly size bytes, or nil on failure.
func (a *A) Bytes(size int) []byte { return a.Allocate(size, a.Ctx) }

// Free releases a buffer previously handed out by Bytes or Dup. Safe on
// nil.
func (a *A) Free(b []byte) {
	if b != nil {
		a.Release(b, a.Ctx)
	}
}

// Dup allocates an exact-size copy of b. A zero-length input still
// produces a non-nil, zero-length buffer so callers can distinguish
// "empty" from "failed".
func (a *A) Dup(b []byte) []byte {
	c := a.Bytes(len(b))
	if c == nil {
		return nil
	}
	copy(c, b)
	return c
}
