//go:build !corostack_debug

package corostack

// No-op stand-ins for the corostack_debug build's tracing hooks, so call
// sites don't need their own build tags. Inlined away entirely in default
// builds.

func traceResume(state string) {}

func traceYield() {}

func traceClose(state string) {}
