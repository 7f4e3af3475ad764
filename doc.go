// Package corostack implements stackful, one-shot, symmetric-resumable
// coroutines (generators). A coroutine runs a user closure on a
// caller-supplied stack buffer; the driver resumes it repeatedly, each
// resume returning either a yielded intermediate value or the single final
// completion value.
//
// The core performs a raw machine-context switch (callee-saved registers,
// stack pointer, frame pointer, return address) between the driver and the
// coroutine body, entirely in user space: no threads, no system calls, no
// OS-level coroutine support. This is architecture-specific and implemented
// in Plan 9 assembly for amd64 and arm64.
//
// # Example
//
//	stack := make([]byte, corostack.STACK_MINIMUM*8)
//	co := corostack.New(stack, func(c corostack.Control[int, string]) (corostack.Finished[string], error) {
//	    c, err := c.Yield(1)
//	    if err != nil {
//	        return corostack.Finished[string]{}, err
//	    }
//	    return c.Done("foo")
//	})
//	defer co.Close()
//
//	switch st := co.Resume(); {
//	case st.Done:
//	    panic("expected a yield first")
//	default:
//	    _ = st.Yield // == 1
//	}
//
//	st := co.Resume()
//	_ = st.Return // == "foo"
//
// # Safety and ownership
//
// A *Coroutine is not safe for concurrent use, and must never be resumed
// from more than one goroutine, nor migrated between goroutines while
// suspended: the saved stack pointer refers to a specific memory region
// that is only valid to re-enter from the same OS thread stack discipline
// the switch assumes. Once the first Resume has happened, the Coroutine and
// its Context record must not move; callers get this for free by only ever
// holding a *Coroutine (never copying the pointed-to value).
//
// Dropping a suspended coroutine without calling Close leaks the body
// closure and anything it captured; always `defer co.Close()`.
//
// The body runs on a plain Go stack the runtime doesn't know about: it was
// never allocated by newstack, isn't tracked by any goroutine's stack
// bounds, and won't grow on overflow the way a goroutine's own stack would.
// Size it generously (STACK_MINIMUM is a floor, not a recommendation) and
// keep its call depth and per-frame allocation shallow; the altstack
// subpackage adds a guard page so an overflow faults instead of silently
// corrupting adjacent memory.
package corostack
