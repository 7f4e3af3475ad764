package corostack

import "unsafe"

// coroRunner is the non-generic interface corostackTrampolineGo dispatches
// through. The assembly entry point into the trampoline is a single fixed
// symbol (see mc_amd64.s / mc_arm64.s), so it cannot itself be generic over
// Y and R; bootstrapCtx carries the generic Coroutine's run method behind
// this interface instead, the same way a closure crosses a non-generic
// call boundary elsewhere in Go (e.g. sort.Interface).
type coroRunner interface {
	run()
}

// bootstrapCtx is the one value ever passed as the arg word to initContext.
// Its address is stable (heap-allocated, held by the Coroutine for its
// entire lifetime) so the pointer baked into the fabricated initial machine
// context remains valid across every resume.
type bootstrapCtx struct {
	runner coroRunner
}

// corostackTrampolineGo is the sole entry point every coroutine's body
// stack begins execution at. It is referenced by symbol from
// initContext's assembly (mc_<arch>.s) and must never return: run handles
// the entire lifecycle, including the final one-way install back to the
// driver.
func corostackTrampolineGo(arg unsafe.Pointer) {
	ctx := (*bootstrapCtx)(arg)
	ctx.runner.run()
	panic("corostack: trampoline returned")
}
