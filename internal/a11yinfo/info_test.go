package a11yinfo

import (
	"context"
	"errors"
	"testing"

	"github.com/a11ytools/a11y-cli/internal/emitter"
	"github.com/a11ytools/a11y-cli/internal/platform"
)

// stubBridge answers queries synchronously with fixed values and records
// announcements.
type stubBridge struct {
	reduceMotion     bool
	touchExploration bool
	announced        []string
}

func (b *stubBridge) IsReduceMotionEnabled(reply func(bool)) {
	reply(b.reduceMotion)
}

func (b *stubBridge) IsTouchExplorationEnabled(reply func(bool)) {
	reply(b.touchExploration)
}

func (b *stubBridge) AnnounceForAccessibility(message string) {
	b.announced = append(b.announced, message)
}

// advisorBridge additionally implements the optional timeout capability.
type advisorBridge struct {
	stubBridge
	recommended int64
}

func (b *advisorBridge) RecommendedTimeoutMillis(originalMs int64, reply func(int64)) {
	if b.recommended > originalMs {
		reply(b.recommended)
		return
	}
	reply(originalMs)
}

// recordingSender records every event sent through either path.
type sentEvent struct {
	legacy    bool
	elementID int
	handle    platform.ElementHandle
	event     platform.EventType
}

type recordingSender struct {
	sent []sentEvent
}

func (s *recordingSender) SendAccessibilityEvent(handle platform.ElementHandle, event platform.EventType) {
	s.sent = append(s.sent, sentEvent{handle: handle, event: event})
}

func (s *recordingSender) LegacySendAccessibilityEvent(elementID int, event platform.EventType) {
	s.sent = append(s.sent, sentEvent{legacy: true, elementID: elementID, event: event})
}

func newTestInfo(bridge platform.Bridge) (*Info, *recordingSender, *emitter.Emitter) {
	sender := &recordingSender{}
	events := emitter.New()
	info := New(&platform.Provider{Bridge: bridge, Sender: sender, Events: events})
	return info, sender, events
}

func awaitBool(t *testing.T, p *Pending[bool]) (bool, error) {
	t.Helper()
	return p.Await(context.Background())
}

func TestCapabilityStubs_AlwaysFalse(t *testing.T) {
	// The stubs resolve false with and without a bridge.
	for _, bridge := range []platform.Bridge{nil, &stubBridge{reduceMotion: true, touchExploration: true}} {
		info, _, _ := newTestInfo(bridge)
		stubs := map[string]*Pending[bool]{
			"IsBoldTextEnabled":           info.IsBoldTextEnabled(),
			"IsGrayscaleEnabled":          info.IsGrayscaleEnabled(),
			"IsInvertColorsEnabled":       info.IsInvertColorsEnabled(),
			"IsReduceTransparencyEnabled": info.IsReduceTransparencyEnabled(),
		}
		for name, p := range stubs {
			got, err := awaitBool(t, p)
			if err != nil {
				t.Errorf("%s: unexpected error: %v", name, err)
			}
			if got {
				t.Errorf("%s = true, want false", name)
			}
		}
	}
}

func TestStateQueries_ForwardBridgeValue(t *testing.T) {
	info, _, _ := newTestInfo(&stubBridge{reduceMotion: true, touchExploration: false})

	got, err := awaitBool(t, info.IsReduceMotionEnabled())
	if err != nil || got != true {
		t.Errorf("IsReduceMotionEnabled = (%v, %v), want (true, nil)", got, err)
	}

	got, err = awaitBool(t, info.IsScreenReaderEnabled())
	if err != nil || got != false {
		t.Errorf("IsScreenReaderEnabled = (%v, %v), want (false, nil)", got, err)
	}
}

func TestStateQueries_RejectFalseWithoutBridge(t *testing.T) {
	info, _, _ := newTestInfo(nil)

	for name, p := range map[string]*Pending[bool]{
		"IsReduceMotionEnabled": info.IsReduceMotionEnabled(),
		"IsScreenReaderEnabled": info.IsScreenReaderEnabled(),
	} {
		_, err := awaitBool(t, p)
		if err == nil {
			t.Fatalf("%s: expected rejection without bridge", name)
		}
		var rej *RejectionError[bool]
		if !errors.As(err, &rej) {
			t.Fatalf("%s: error is %T, want *RejectionError[bool]", name, err)
		}
		if rej.Value != false {
			t.Errorf("%s: rejected with %v, want exactly false", name, rej.Value)
		}
	}
}

func TestAddEventListener_AliasesShareChannel(t *testing.T) {
	info, _, events := newTestInfo(nil)

	var changeCalls, srCalls []bool
	info.AddEventListener(EventChange, ListenerFunc(func(enabled bool) {
		changeCalls = append(changeCalls, enabled)
	}))
	info.AddEventListener(EventScreenReaderChanged, ListenerFunc(func(enabled bool) {
		srCalls = append(srCalls, enabled)
	}))

	events.Emit(emitter.TouchExplorationDidChange, true)

	if len(changeCalls) != 1 || changeCalls[0] != true {
		t.Errorf("change listener calls = %v, want [true]", changeCalls)
	}
	if len(srCalls) != 1 || srCalls[0] != true {
		t.Errorf("screenReaderChanged listener calls = %v, want [true]", srCalls)
	}
}

func TestAddEventListener_ReduceMotionChannel(t *testing.T) {
	info, _, events := newTestInfo(nil)

	calls := 0
	info.AddEventListener(EventReduceMotionChanged, ListenerFunc(func(bool) { calls++ }))

	events.Emit(emitter.TouchExplorationDidChange, true)
	if calls != 0 {
		t.Error("reduceMotionChanged listener fired for touch exploration event")
	}

	events.Emit(emitter.ReduceMotionDidChange, true)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestAddEventListener_UnknownName(t *testing.T) {
	info, _, events := newTestInfo(nil)

	calls := 0
	l := ListenerFunc(func(bool) { calls++ })
	sub := info.AddEventListener("boldTextChanged", l)
	if sub == nil {
		t.Fatal("unknown event name should still return a subscription")
	}

	events.Emit(emitter.ReduceMotionDidChange, true)
	events.Emit(emitter.TouchExplorationDidChange, true)
	if calls != 0 {
		t.Errorf("listener for unknown event fired %d times", calls)
	}

	// Removing the never-registered subscription must not panic.
	sub.Remove()
}

func TestRemoveEventListener_StopsDelivery(t *testing.T) {
	info, _, events := newTestInfo(nil)

	calls := 0
	l := ListenerFunc(func(bool) { calls++ })
	info.AddEventListener(EventScreenReaderChanged, l)
	info.RemoveEventListener(EventScreenReaderChanged, l)

	events.Emit(emitter.TouchExplorationDidChange, true)
	if calls != 0 {
		t.Errorf("removed listener was invoked %d times", calls)
	}
}

func TestRemoveEventListener_UnknownListenerIsNoop(t *testing.T) {
	info, _, _ := newTestInfo(nil)
	info.RemoveEventListener(EventChange, ListenerFunc(func(bool) {}))
}

func TestSubscriptionRemove_EquivalentAndIdempotent(t *testing.T) {
	info, _, events := newTestInfo(nil)

	calls := 0
	sub := info.AddEventListener(EventReduceMotionChanged, ListenerFunc(func(bool) { calls++ }))
	sub.Remove()
	sub.Remove() // second remove must not panic

	events.Emit(emitter.ReduceMotionDidChange, true)
	if calls != 0 {
		t.Errorf("removed listener was invoked %d times", calls)
	}
}

// Re-registering the same listener under a different event name replaces
// the table entry and orphans the first emitter subscription: the listener
// keeps firing on the first channel and can no longer be removed from it.
// This mirrors the original behavior (see DESIGN.md).
func TestReregisterUnderDifferentEvent_OrphansFirstSubscription(t *testing.T) {
	info, _, events := newTestInfo(nil)

	calls := 0
	l := ListenerFunc(func(bool) { calls++ })
	info.AddEventListener(EventReduceMotionChanged, l)
	info.AddEventListener(EventScreenReaderChanged, l)
	info.RemoveEventListener(EventScreenReaderChanged, l)

	events.Emit(emitter.TouchExplorationDidChange, true)
	if calls != 0 {
		t.Errorf("second registration survived removal: %d calls", calls)
	}

	events.Emit(emitter.ReduceMotionDidChange, true)
	if calls != 1 {
		t.Errorf("orphaned first registration fired %d times, want 1", calls)
	}

	// The facade has forgotten the first subscription; removal is a no-op.
	info.RemoveEventListener(EventReduceMotionChanged, l)
	events.Emit(emitter.ReduceMotionDidChange, true)
	if calls != 2 {
		t.Errorf("orphaned registration should still fire, got %d calls", calls)
	}
}

func TestSetAccessibilityFocus_UsesLegacyPath(t *testing.T) {
	info, sender, _ := newTestInfo(nil)

	info.SetAccessibilityFocus(42)

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d events, want 1", len(sender.sent))
	}
	got := sender.sent[0]
	if !got.legacy || got.elementID != 42 || got.event != platform.EventFocus {
		t.Errorf("sent %+v, want legacy focus on element 42", got)
	}
}

func TestSendAccessibilityEventUnstable_Focus(t *testing.T) {
	info, sender, _ := newTestInfo(nil)

	info.SendAccessibilityEventUnstable(platform.ElementHandle{ID: 7}, platform.EventFocus)

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d events, want 1", len(sender.sent))
	}
	got := sender.sent[0]
	if got.legacy || got.handle.ID != 7 || got.event != platform.EventFocus {
		t.Errorf("sent %+v, want renderer-aware focus on handle 7", got)
	}
}

func TestSendAccessibilityEventUnstable_ClickIsNoop(t *testing.T) {
	info, sender, _ := newTestInfo(nil)

	info.SendAccessibilityEventUnstable(platform.ElementHandle{ID: 7}, platform.EventClick)

	if len(sender.sent) != 0 {
		t.Errorf("click sent %d events, want 0", len(sender.sent))
	}
}

func TestAnnounceForAccessibility(t *testing.T) {
	bridge := &stubBridge{}
	info, _, _ := newTestInfo(bridge)

	info.AnnounceForAccessibility("saved")
	if len(bridge.announced) != 1 || bridge.announced[0] != "saved" {
		t.Errorf("announced %v, want [saved]", bridge.announced)
	}

	// Without a bridge, announcing is a silent no-op.
	info, _, _ = newTestInfo(nil)
	info.AnnounceForAccessibility("dropped")
}

func TestGetRecommendedTimeoutMillis_IdentityFallback(t *testing.T) {
	// No bridge at all.
	info, _, _ := newTestInfo(nil)
	got, err := info.GetRecommendedTimeoutMillis(500).Await(context.Background())
	if err != nil || got != 500 {
		t.Errorf("no bridge: got (%d, %v), want (500, nil)", got, err)
	}

	// Bridge present but without the timeout capability.
	info, _, _ = newTestInfo(&stubBridge{})
	got, err = info.GetRecommendedTimeoutMillis(500).Await(context.Background())
	if err != nil || got != 500 {
		t.Errorf("no capability: got (%d, %v), want (500, nil)", got, err)
	}
}

func TestGetRecommendedTimeoutMillis_Advisor(t *testing.T) {
	info, _, _ := newTestInfo(&advisorBridge{recommended: 10000})

	got, err := info.GetRecommendedTimeoutMillis(500).Await(context.Background())
	if err != nil || got != 10000 {
		t.Errorf("got (%d, %v), want (10000, nil)", got, err)
	}
}
