// Package altstack allocates guard-paged stack buffers for use with
// corostack.New.
//
// corostack itself takes any []byte as a stack, on the theory that callers
// already have an opinion about where their memory comes from (a sync.Pool,
// a big arena, plain make([]byte, n)) and shouldn't be forced through one
// allocator. This package is that opinion, for the common case of wanting a
// stack overflow to fault immediately and loudly rather than silently
// corrupt whatever memory happens to sit past the end of the buffer — the
// same trade Go's own goroutine stacks don't need to make, since the
// runtime grows them instead of guarding them, and the trade spec.md's own
// Non-goals explicitly leave outside corostack's core for exactly this
// reason: it's a policy decision, not a mechanism one.
package altstack

// Stack is a stack buffer obtained from New: guard-paged on linux and
// darwin, a plain heap buffer elsewhere. Pass Bytes() to corostack.New;
// call Close when the coroutine using it has finished or been closed, to
// release the mapping.
type Stack interface {
	// Bytes returns the usable region of the stack, at least as large as
	// requested (on linux and darwin, rounded up to whole pages). There, a
	// write just below this slice hits the guard page and faults; the
	// plain-buffer fallback has no such protection.
	Bytes() []byte
	// Close unmaps the stack. The Stack, and any slice obtained from
	// Bytes, must not be used afterward.
	Close() error
}
