package a11yinfo

// Listener receives accessibility state-change notifications. Registrations
// are tracked by listener identity: pass the same Listener value to
// RemoveEventListener that was passed to AddEventListener. Implementations
// must therefore be comparable (use pointer receivers).
type Listener interface {
	AccessibilityStateChanged(enabled bool)
}

// ListenerFunc wraps fn in a Listener. Every call produces a distinct
// identity, so keep the returned value around to remove the registration.
func ListenerFunc(fn func(enabled bool)) Listener {
	return &listenerFunc{fn: fn}
}

type listenerFunc struct {
	fn func(bool)
}

func (l *listenerFunc) AccessibilityStateChanged(enabled bool) {
	l.fn(enabled)
}
