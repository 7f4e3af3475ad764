package corostack

import "sync/atomic"

// transferKind discriminates the single-slot value channel embedded in
// contextRecord. Its three values (nothing, yielded, complete) fit in a
// byte; there's no need for a pointer-sized tag.
type transferKind uint8

const (
	transferNone transferKind = iota
	transferYielded
	transferComplete
)

// contextRecord is the per-coroutine shared state spec.md calls the Context
// Record: two machine-context slots, a single-slot transfer value written
// by one side and read by the other in strict alternation, and a monotonic
// cancellation flag.
//
// canceled is an atomic.Bool rather than a plain bool: the driver sets it
// from outside any context switch (in Close), and the body must observe the
// new value immediately after its next swap back in, with a read the
// compiler is not permitted to hoist or cache across that switch. This is
// Go's substitute for the reference implementation's read_volatile — the
// same role sync/atomic plays for the shared counters in catrate.Limiter.
type contextRecord[Y, R any] struct {
	driverMC mcontext
	bodyMC   mcontext

	canceled atomic.Bool

	kind     transferKind
	yielded  Y
	complete R
}

func (cr *contextRecord[Y, R]) clearTransfer() {
	cr.kind = transferNone
	var zeroY Y
	var zeroR R
	cr.yielded = zeroY
	cr.complete = zeroR
}

func (cr *contextRecord[Y, R]) putYielded(y Y) {
	cr.kind = transferYielded
	cr.yielded = y
}

func (cr *contextRecord[Y, R]) putComplete(r R) {
	cr.kind = transferComplete
	cr.complete = r
}

// takeState reads and clears the transfer slot, converting it into the
// public State the driver observes from Resume. Panics if nothing was
// written: a programmer-facing bug in the trampoline or Control, never
// reachable through the public API.
func (cr *contextRecord[Y, R]) takeState() State[Y, R] {
	var st State[Y, R]
	switch cr.kind {
	case transferYielded:
		st = Yielded[Y, R](cr.yielded)
	case transferComplete:
		st = Completed[Y, R](cr.complete)
	default:
		panic("corostack: resume observed no transfer: internal invariant violated")
	}
	cr.clearTransfer()
	return st
}
