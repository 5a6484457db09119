//go:build darwin && cgo

package darwin

// This file must not define any C functions in its preamble: cgo forbids
// definitions in files containing //export.

import "C"

import "github.com/a11ytools/a11y-cli/internal/emitter"

//export a11yStateChangedGo
func a11yStateChangedGo(channel C.int, enabled C.int) {
	e := observerEmitter
	if e == nil {
		return
	}
	switch channel {
	case 0:
		e.Emit(emitter.ReduceMotionDidChange, enabled != 0)
	case 1:
		e.Emit(emitter.TouchExplorationDidChange, enabled != 0)
	}
}
