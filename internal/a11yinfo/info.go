// Package a11yinfo exposes the operating system's assistive-technology
// state: capability queries, state-change event subscriptions, and one-shot
// commands (announce, move focus). It is a thin facade over the platform
// layer; every query and action passes straight through to the native
// bridge with only callback adaptation, and the bridge may be absent
// entirely, in which case queries reject and commands no-op.
package a11yinfo

import (
	"sync"

	"github.com/a11ytools/a11y-cli/internal/emitter"
	"github.com/a11ytools/a11y-cli/internal/platform"
)

// EventName identifies a state-change event category that application code
// can subscribe to.
type EventName string

const (
	// EventReduceMotionChanged fires when the OS reduce-motion setting flips.
	EventReduceMotionChanged EventName = "reduceMotionChanged"
	// EventScreenReaderChanged fires when the screen reader / touch
	// exploration service starts or stops.
	EventScreenReaderChanged EventName = "screenReaderChanged"
	// EventChange is a legacy alias for EventScreenReaderChanged; both
	// route to the same native channel.
	EventChange EventName = "change"
)

// Info answers accessibility state queries and forwards native state-change
// notifications to registered listeners. Construct one per Provider; all
// methods are safe for concurrent use.
type Info struct {
	bridge platform.Bridge // nil when the native layer is unavailable
	sender platform.EventSender
	events *emitter.Emitter

	mu   sync.Mutex
	subs map[Listener]*emitter.Subscription
}

// New creates an Info backed by the provider's bridge, sender, and emitter.
func New(p *platform.Provider) *Info {
	return &Info{
		bridge: p.Bridge,
		sender: p.Sender,
		events: p.Events,
		subs:   make(map[Listener]*emitter.Subscription),
	}
}

// IsBoldTextEnabled reports whether bold text is enabled. This platform's
// bridge does not report bold text; always resolves false.
func (a *Info) IsBoldTextEnabled() *Pending[bool] {
	return resolved(false)
}

// IsGrayscaleEnabled reports whether grayscale display is enabled. Not
// reported by this platform's bridge; always resolves false.
func (a *Info) IsGrayscaleEnabled() *Pending[bool] {
	return resolved(false)
}

// IsInvertColorsEnabled reports whether inverted colors are enabled. Not
// reported by this platform's bridge; always resolves false.
func (a *Info) IsInvertColorsEnabled() *Pending[bool] {
	return resolved(false)
}

// IsReduceTransparencyEnabled reports whether reduced transparency is
// enabled. Not reported by this platform's bridge; always resolves false.
func (a *Info) IsReduceTransparencyEnabled() *Pending[bool] {
	return resolved(false)
}

// IsReduceMotionEnabled reports whether the OS reduce-motion setting is on.
// Without a bridge the result rejects with the literal value false, which
// callers read as "unknown", not as an error condition.
func (a *Info) IsReduceMotionEnabled() *Pending[bool] {
	p := newPending[bool]()
	if a.bridge == nil {
		p.reject(false)
		return p
	}
	a.bridge.IsReduceMotionEnabled(p.resolve)
	return p
}

// IsScreenReaderEnabled reports whether a screen reader is active. Without
// a bridge the result rejects with the literal value false.
func (a *Info) IsScreenReaderEnabled() *Pending[bool] {
	p := newPending[bool]()
	if a.bridge == nil {
		p.reject(false)
		return p
	}
	a.bridge.IsTouchExplorationEnabled(p.resolve)
	return p
}

// AddEventListener subscribes l to the named event and returns a handle
// whose Remove undoes the registration. EventChange and
// EventScreenReaderChanged are aliases for the same native channel. An
// unknown event name registers nothing but still returns a usable handle.
func (a *Info) AddEventListener(event EventName, l Listener) *EventSubscription {
	var sub *emitter.Subscription
	switch event {
	case EventReduceMotionChanged:
		sub = a.events.AddListener(emitter.ReduceMotionDidChange, l.AccessibilityStateChanged)
	case EventScreenReaderChanged, EventChange:
		sub = a.events.AddListener(emitter.TouchExplorationDidChange, l.AccessibilityStateChanged)
	}
	if sub != nil {
		a.mu.Lock()
		// The table is keyed by listener only, not (event, listener).
		// Registering the same listener under a second event name replaces
		// this entry without removing the earlier emitter subscription,
		// which then cannot be removed through this facade. Kept for
		// compatibility with the original behavior; see DESIGN.md.
		a.subs[l] = sub
		a.mu.Unlock()
	}
	return &EventSubscription{info: a, event: event, listener: l}
}

// RemoveEventListener removes a previously registered listener. A listener
// that was never registered (or already removed) is a no-op.
func (a *Info) RemoveEventListener(event EventName, l Listener) {
	a.mu.Lock()
	sub, ok := a.subs[l]
	if ok {
		delete(a.subs, l)
	}
	a.mu.Unlock()
	if ok {
		sub.Remove()
	}
}

// SetAccessibilityFocus moves accessibility focus to the element with the
// given ID through the legacy send path.
func (a *Info) SetAccessibilityFocus(elementID int) {
	a.sender.LegacySendAccessibilityEvent(elementID, platform.EventFocus)
}

// SendAccessibilityEventUnstable forwards an accessibility event through
// the renderer-aware send path. Click announcements have no equivalent in
// this platform's accessibility service, so EventClick is a deliberate
// no-op; only EventFocus is forwarded.
func (a *Info) SendAccessibilityEventUnstable(handle platform.ElementHandle, event platform.EventType) {
	if event == platform.EventFocus {
		a.sender.SendAccessibilityEvent(handle, event)
	}
}

// AnnounceForAccessibility asks the assistive technology to speak the
// message. No-op without a bridge.
func (a *Info) AnnounceForAccessibility(message string) {
	if a.bridge == nil {
		return
	}
	a.bridge.AnnounceForAccessibility(message)
}

// GetRecommendedTimeoutMillis asks the platform for its recommended minimum
// timeout for timed UI. When the bridge is missing or does not implement
// the capability, the result resolves to originalMs unchanged; it never
// rejects.
func (a *Info) GetRecommendedTimeoutMillis(originalMs int64) *Pending[int64] {
	advisor, ok := a.bridge.(platform.TimeoutAdvisor)
	if !ok {
		return resolved(originalMs)
	}
	p := newPending[int64]()
	advisor.RecommendedTimeoutMillis(originalMs, p.resolve)
	return p
}

// EventSubscription is the handle returned by AddEventListener.
type EventSubscription struct {
	info     *Info
	event    EventName
	listener Listener
}

// Remove undoes the registration, exactly as calling RemoveEventListener
// with the original arguments. Calling it twice is harmless.
func (s *EventSubscription) Remove() {
	s.info.RemoveEventListener(s.event, s.listener)
}
