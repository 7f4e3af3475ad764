package corostack

import (
	"runtime"
	"unsafe"
)

// STACK_MINIMUM is the minimum acceptable length, in bytes, of a stack
// buffer passed to New. Named in capitals (rather than Go's usual
// StackMinimum) to match the public constant spec.md names verbatim.
const STACK_MINIMUM = 4096

// Body is the closure a coroutine executes. It receives a Control handle
// for yielding and completing, and must return either a Finished value (via
// Control.Done) or propagate an error — most commonly ErrCanceled, received
// from a failed Yield.
type Body[Y, R any] func(Control[Y, R]) (Finished[R], error)

// Coroutine owns a stack buffer, a body closure, and the Context Record
// coordinating driver and body. It is not safe for concurrent use, and must
// never be resumed or closed from more than one goroutine, nor from a
// different goroutine than the one that last resumed it.
type Coroutine[Y, R any] struct {
	cr    *contextRecord[Y, R]
	stack []byte
	body  Body[Y, R]
	// pin declares, rather than strictly enforces, the pinning invariant
	// spec.md's Data Model requires of the Context Record: today's Go
	// garbage collector never relocates heap objects, so cr's address is
	// already stable without it, but Pinner documents the requirement
	// in a form the toolchain understands and keeps this code correct
	// should that ever change.
	pin   runtime.Pinner
	boot  bootstrapCtx
	state CoroutineState
}

var _ coroRunner = (*Coroutine[struct{}, struct{}])(nil)
var _ Generator[struct{}, struct{}] = (*Coroutine[struct{}, struct{}])(nil)

// New spawns a coroutine: it sets up the stack and enters the body closure
// far enough that it can be resumed, without yet running any of the body's
// own code.
//
// Panics (with a *StackTooSmallError) if len(stack) < STACK_MINIMUM. The
// caller retains ownership of stack for the coroutine's entire lifetime —
// it must not be read, written, or reused until Close returns or Resume
// reports completion.
func New[Y, R any](stack []byte, body Body[Y, R]) *Coroutine[Y, R] {
	if len(stack) < STACK_MINIMUM {
		panic(&StackTooSmallError{Required: STACK_MINIMUM, Actual: len(stack)})
	}

	co := &Coroutine[Y, R]{
		cr:    new(contextRecord[Y, R]),
		stack: stack,
		body:  body,
		state: Fresh,
	}
	co.boot.runner = co

	// Pin the Context Record: its address is embedded in saved machine
	// state the moment the first switch happens, and must never move.
	co.pin.Pin(co.cr)

	growsUp := stackGrowsUp()
	top := alignStackTop(stack, growsUp)

	initContext(&co.cr.bodyMC, top, unsafe.Pointer(&co.boot))

	// Bootstrap: enter the trampoline just far enough for it to capture a
	// stable frame and immediately swap back out. After this call returns,
	// the coroutine is Fresh and ready for its first real Resume.
	swap(&co.cr.driverMC, &co.cr.bodyMC)

	return co
}

// Resume continues execution of the coroutine, starting it if this is the
// first call. Panics with ErrFinished if called after a previous Resume
// returned a State with Done set.
func (co *Coroutine[Y, R]) Resume() State[Y, R] {
	if co.state == StateFinished {
		panic(ErrFinished)
	}

	co.cr.clearTransfer()
	swap(&co.cr.driverMC, &co.cr.bodyMC)
	st := co.cr.takeState()

	if st.Done {
		co.finish()
	} else {
		co.state = Suspended
	}
	traceResume(co.state.String())
	return st
}

// State reports the coroutine's current lifecycle state.
func (co *Coroutine[Y, R]) State() CoroutineState {
	return co.state
}

// Close cancels the coroutine if it is still Fresh or Suspended, and is a
// no-op otherwise. Idempotent: calling Close more than once is safe.
//
// This is corostack's Go-idiomatic stand-in for spec.md's cancel-on-drop:
// Go has no destructors, so the driver must call Close explicitly (commonly
// via defer) rather than relying on scope exit. The cancellation mechanics
// — set the flag, swap once more, let the body observe Canceled at its next
// Yield — are unchanged.
func (co *Coroutine[Y, R]) Close() error {
	if co.state == StateFinished {
		return nil
	}

	// Fresh gets no carve-out: the body MC already holds a valid resume
	// point captured by the bootstrap swap-out in New, so swapping into it
	// here genuinely re-enters the body closure — it runs until it returns,
	// or until its first Yield observes canceled and returns immediately
	// without a further switch. A never-resumed coroutine still deserves to
	// run whatever it would have done before its first suspension point.
	co.cr.canceled.Store(true)
	swap(&co.cr.driverMC, &co.cr.bodyMC)
	// The body either returned on its own or had its Yield observe canceled
	// and return ErrCanceled; either way it reached the trampoline's terminal
	// path in run, whose one-way install into driverMC (saved by the swap
	// above) is what brings control back to this line.
	co.finish()
	traceClose(co.state.String())
	return nil
}

func (co *Coroutine[Y, R]) finish() {
	if co.state == StateFinished {
		return
	}
	co.state = StateFinished
	co.pin.Unpin()
}

// run is the trampoline's generic half: it makes the body closure reachable
// from the fixed, non-generic assembly entry point via bootstrapCtx.
func (co *Coroutine[Y, R]) run() {
	// Capture a stable frame, then hand control back to New's bootstrap
	// swap. This is the "immediate switch-out" spec.md requires before
	// construction can return to its caller.
	swap(&co.cr.bodyMC, &co.cr.driverMC)

	control := Control[Y, R]{cr: co.cr}
	if finished, err := co.body(control); err == nil {
		co.cr.putComplete(finished.value)
	}

	// Whether the body completed or returned ErrCanceled, this point is
	// terminal: the body stack is about to become invalid, and must never
	// be re-entered.
	install(&co.cr.driverMC)
}
