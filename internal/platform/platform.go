package platform

// Bridge is the native accessibility service. It may be entirely absent
// (a nil Bridge in the Provider); callers must degrade gracefully rather
// than fail. Replies are invoked exactly once by conforming backends, but
// nothing here guarantees the native layer ever calls back.
type Bridge interface {
	// IsReduceMotionEnabled reports whether the OS reduce-motion setting
	// is on, via the reply callback.
	IsReduceMotionEnabled(reply func(enabled bool))

	// IsTouchExplorationEnabled reports whether a screen reader / touch
	// exploration service is active, via the reply callback.
	IsTouchExplorationEnabled(reply func(enabled bool))

	// AnnounceForAccessibility asks the assistive technology to speak the
	// message. Fire-and-forget.
	AnnounceForAccessibility(message string)
}

// TimeoutAdvisor is an optional Bridge capability: some platforms expose a
// user-configured minimum timeout for timed UI. Discover it with a type
// assertion on the Bridge; a bridge without it means "use the original
// timeout unchanged".
type TimeoutAdvisor interface {
	// RecommendedTimeoutMillis replies with the platform-recommended
	// timeout, at least originalMs.
	RecommendedTimeoutMillis(originalMs int64, reply func(ms int64))
}

// EventSender delivers accessibility events to UI elements through the
// renderer layer.
type EventSender interface {
	// SendAccessibilityEvent sends an event through the renderer-aware path.
	SendAccessibilityEvent(handle ElementHandle, event EventType)

	// LegacySendAccessibilityEvent sends an event addressed by raw element
	// ID through the legacy path.
	LegacySendAccessibilityEvent(elementID int, event EventType)
}
