package corostack

// State is the tagged union a Generator's Resume returns: either an
// intermediate Yield value, or the final Return value with Done set.
//
// Go has no native sum type, so State carries both payload fields with a
// Done discriminant, rather than mirroring Rust's GeneratorState enum
// directly.
type State[Y, R any] struct {
	Yield  Y
	Return R
	Done   bool
}

// Yielded constructs a State representing a suspension with value y.
func Yielded[Y, R any](y Y) State[Y, R] {
	return State[Y, R]{Yield: y}
}

// Completed constructs a State representing final completion with value r.
func Completed[Y, R any](r R) State[Y, R] {
	return State[Y, R]{Return: r, Done: true}
}

// Generator is the polymorphic resume contract exposed to drivers. Go has
// no platform-standard generator trait (unlike Rust's unstable
// core::ops::Generator, which this mirrors), so this is the local
// equivalent spec'd by corostack itself.
type Generator[Y, R any] interface {
	// Resume continues execution of the generator, starting it if this is
	// the first call. Panics if called after a previous call returned a
	// State with Done set.
	Resume() State[Y, R]
}

// Finished wraps the value produced by Control.Done.
type Finished[R any] struct {
	value R
}

// CoroutineState is the observable lifecycle of a *Coroutine.
type CoroutineState int

const (
	// Fresh coroutines have never been resumed.
	Fresh CoroutineState = iota
	// Suspended coroutines are paused at a Yield, awaiting Resume.
	Suspended
	// StateFinished coroutines have completed or been canceled; resuming them panics.
	StateFinished
)

func (s CoroutineState) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case Suspended:
		return "Suspended"
	case StateFinished:
		return "StateFinished"
	default:
		return "Unknown"
	}
}
