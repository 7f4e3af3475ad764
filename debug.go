//go:build corostack_debug

package corostack

// Diagnostic tracing, gated behind the corostack_debug build tag. Off by
// default: a hand-rolled context switch is hot-path code, and structured
// logging around every Resume/Yield/Close would cost real cycles on
// callers who never asked for it. Building with -tags corostack_debug
// wires up a logiface logger (backed by stumpy's JSON encoder, the same
// pairing eventloop's package-level logger uses) that narrates every
// transfer.

import (
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

var debugLogger struct {
	sync.RWMutex
	logger *logiface.Logger[*stumpy.Event]
}

// SetDebugLogger installs the logger used by this package's internal trace
// calls. Passing nil disables tracing again. Only present in builds tagged
// corostack_debug.
func SetDebugLogger(logger *logiface.Logger[*stumpy.Event]) {
	debugLogger.Lock()
	defer debugLogger.Unlock()
	debugLogger.logger = logger
}

func getDebugLogger() *logiface.Logger[*stumpy.Event] {
	debugLogger.RLock()
	defer debugLogger.RUnlock()
	return debugLogger.logger
}

func traceResume(state string) {
	l := getDebugLogger()
	if l == nil {
		return
	}
	l.Debug().Str(`state`, state).Log(`corostack: resume`)
}

func traceYield() {
	l := getDebugLogger()
	if l == nil {
		return
	}
	l.Debug().Log(`corostack: yield`)
}

func traceClose(state string) {
	l := getDebugLogger()
	if l == nil {
		return
	}
	l.Debug().Str(`state`, state).Log(`corostack: close`)
}
