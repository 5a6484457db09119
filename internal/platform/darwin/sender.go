//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>

static void post_focus_event(int element_id) {
	NSDictionary *info = @{ @"elementID" : @(element_id) };
	NSApplication *app = [NSApplication sharedApplication];
	NSAccessibilityPostNotificationWithUserInfo(app,
		NSAccessibilityFocusedUIElementChangedNotification, info);
}
*/
import "C"

import "github.com/a11ytools/a11y-cli/internal/platform"

// Sender implements platform.EventSender. macOS addresses accessibility
// notifications at the application element; the element ID travels in the
// notification user info for observers that can resolve it.
type Sender struct{}

// NewSender creates the macOS event sender.
func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) SendAccessibilityEvent(handle platform.ElementHandle, event platform.EventType) {
	if event != platform.EventFocus {
		return
	}
	C.post_focus_event(C.int(handle.ID))
}

func (s *Sender) LegacySendAccessibilityEvent(elementID int, event platform.EventType) {
	if event != platform.EventFocus {
		return
	}
	C.post_focus_event(C.int(elementID))
}
