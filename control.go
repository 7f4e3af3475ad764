package corostack

// Control is the capability handle passed into a coroutine body closure. It
// is only valid for the duration of one suspended interval of the body: it
// borrows the coroutine's Context Record and must not be retained past the
// closure's return.
type Control[Y, R any] struct {
	cr *contextRecord[Y, R]
}

// Yield suspends the coroutine, handing value to the driver, and blocks
// (from the body's point of view) until the driver calls Resume again.
//
// Returns ErrCanceled, without switching, if the coroutine has already been
// closed. Otherwise it publishes value, switches to the driver, and on
// resumption re-checks the cancellation flag — set by Close while this body
// was suspended — before returning control to the caller.
func (c Control[Y, R]) Yield(value Y) (Control[Y, R], error) {
	if c.cr.canceled.Load() {
		return c, ErrCanceled
	}

	c.cr.putYielded(value)
	traceYield()
	swap(&c.cr.bodyMC, &c.cr.driverMC)

	if c.cr.canceled.Load() {
		return c, ErrCanceled
	}
	return c, nil
}

// Done finishes the coroutine with the given value. It never switches
// itself: the trampoline performs the final transfer once the body closure
// returns. Infallible, matching the asymmetry spec.md preserves between
// Yield (may fail with Canceled) and Done (may not).
func (c Control[Y, R]) Done(value R) (Finished[R], error) {
	return Finished[R]{value: value}, nil
}
