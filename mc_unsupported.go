//go:build !amd64 && !arm64

package corostack

import "unsafe"

// This package's context switch is hand-written assembly, architecture by
// architecture, the same way the Go runtime's own gogo/mcall are — there is
// no portable mechanism in the language or standard library for saving and
// restoring an arbitrary machine context. On any GOARCH without such an
// implementation, fail clearly at init time rather than leave the linker to
// report a baffling missing-symbol error, or worse, let a stub silently
// corrupt the stack.

func init() {
	panic("corostack: unsupported GOARCH: no machine-context assembly implementation is available for this architecture")
}

func install(into *mcontext) {
	panic("corostack: unsupported GOARCH")
}

func swap(from, into *mcontext) {
	panic("corostack: unsupported GOARCH")
}

func initContext(target *mcontext, stackTop unsafe.Pointer, arg unsafe.Pointer) {
	panic("corostack: unsupported GOARCH")
}

func stackGrowsUpImpl(callerFrame uintptr) bool {
	panic("corostack: unsupported GOARCH")
}
