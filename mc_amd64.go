package corostack

import "unsafe"

// install transfers control to the context described by into. It never
// returns on the calling side: the function invoking install effectively
// ceases to exist from the caller's perspective. Used exactly once per
// coroutine, by the trampoline's terminal transitions.
//
//go:noescape
func install(into *mcontext)

// swap saves the currently running context into from, then restores
// execution from into. Control returns to the caller of swap (on the from
// side) only when some other party later swaps back into it.
//
//go:noescape
func swap(from, into *mcontext)

// initContext prepares target so that a later install or swap into it
// begins execution on the package's internal trampoline (see trampoline.go),
// passed arg as its sole argument, running on a stack whose top (in the
// direction of stack growth) is stackTop. The trampoline never returns.
//
// Unlike spec.md's generic init(target, stack_top, arg, entry), entry is
// fixed at build time to corostackTrampolineGo: a raw jump target must be
// resolved to a concrete assembly symbol when the fake initial frame is
// built, and this package only ever has the one trampoline, so a runtime
// function-value parameter would add indirection without adding capability.
//
//go:noescape
func initContext(target *mcontext, stackTop unsafe.Pointer, arg unsafe.Pointer)

// stackGrowsUpImpl is implemented in assembly: it compares the address of a
// local in its caller's frame (passed in via callerFrame) against the
// address of a local in its own frame, returning true if stacks grow toward
// higher addresses on this platform.
//
//go:noescape
func stackGrowsUpImpl(callerFrame uintptr) bool
