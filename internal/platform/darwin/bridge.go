//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>

static int reduce_motion_enabled() {
	return [[NSWorkspace sharedWorkspace] accessibilityDisplayShouldReduceMotion] ? 1 : 0;
}

static int voiceover_enabled() {
	return [[NSWorkspace sharedWorkspace] isVoiceOverEnabled] ? 1 : 0;
}

static void post_announcement(const char *message) {
	NSString *text = [NSString stringWithUTF8String:message];
	NSDictionary *info = @{
		NSAccessibilityAnnouncementKey : text,
		NSAccessibilityPriorityKey : @(NSAccessibilityPriorityHigh),
	};
	NSApplication *app = [NSApplication sharedApplication];
	NSAccessibilityPostNotificationWithUserInfo(app,
		NSAccessibilityAnnouncementRequestedNotification, info);
}
*/
import "C"

import "unsafe"

// Bridge implements platform.Bridge on top of NSWorkspace accessibility
// state. It intentionally does not implement platform.TimeoutAdvisor: macOS
// has no recommended-timeout API, so callers fall back to their original
// timeout unchanged.
type Bridge struct{}

// NewBridge creates the macOS accessibility bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// IsReduceMotionEnabled replies with the "Reduce motion" setting from
// System Settings > Accessibility > Display.
func (b *Bridge) IsReduceMotionEnabled(reply func(enabled bool)) {
	reply(C.reduce_motion_enabled() != 0)
}

// IsTouchExplorationEnabled replies with whether VoiceOver is running.
func (b *Bridge) IsTouchExplorationEnabled(reply func(enabled bool)) {
	reply(C.voiceover_enabled() != 0)
}

// AnnounceForAccessibility posts an announcement-requested notification so
// the running assistive technology speaks the message.
func (b *Bridge) AnnounceForAccessibility(message string) {
	cMessage := C.CString(message)
	defer C.free(unsafe.Pointer(cMessage))
	C.post_announcement(cMessage)
}
