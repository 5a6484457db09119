//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation -framework CoreFoundation
#import <AppKit/AppKit.h>
#include <CoreFoundation/CoreFoundation.h>

extern void a11yStateChangedGo(int channel, int enabled);

static void start_observers() {
	NSNotificationCenter *wsc = [[NSWorkspace sharedWorkspace] notificationCenter];
	[wsc addObserverForName:NSWorkspaceAccessibilityDisplayOptionsDidChangeNotification
	                 object:nil
	                  queue:[NSOperationQueue mainQueue]
	             usingBlock:^(NSNotification *note) {
		int on = [[NSWorkspace sharedWorkspace] accessibilityDisplayShouldReduceMotion] ? 1 : 0;
		a11yStateChangedGo(0, on);
	}];

	// VoiceOver start/stop is only visible via the distributed
	// accessibility notification; re-read the workspace state on each fire.
	[[NSDistributedNotificationCenter defaultCenter]
	    addObserverForName:@"com.apple.accessibility.api"
	                object:nil
	                 queue:[NSOperationQueue mainQueue]
	            usingBlock:^(NSNotification *note) {
		int on = [[NSWorkspace sharedWorkspace] isVoiceOverEnabled] ? 1 : 0;
		a11yStateChangedGo(1, on);
	}];
}

static void run_event_loop() {
	CFRunLoopRun();
}
*/
import "C"

import "github.com/a11ytools/a11y-cli/internal/emitter"

// observerEmitter receives forwarded workspace notifications. Set once by
// StartObservers before any observer can fire.
var observerEmitter *emitter.Emitter

// StartObservers registers workspace notification observers that forward
// accessibility state changes into e. Observers are delivered on the main
// runloop; callers that want events must keep it pumping (RunEventLoop).
func StartObservers(e *emitter.Emitter) {
	observerEmitter = e
	C.start_observers()
}

// RunEventLoop blocks pumping the main runloop so observers fire.
func RunEventLoop() {
	C.run_event_loop()
}
