package platform

import (
	"fmt"
	"strings"
)

// EventType is an accessibility event kind that can be sent to an element.
type EventType string

const (
	EventFocus EventType = "focus"
	EventClick EventType = "click"
)

// ParseEventType converts a string flag value to an EventType.
func ParseEventType(s string) (EventType, error) {
	switch strings.ToLower(s) {
	case "focus":
		return EventFocus, nil
	case "click":
		return EventClick, nil
	default:
		return EventFocus, fmt.Errorf("unknown event type: %q (expected focus or click)", s)
	}
}

// ElementHandle identifies a UI element for the renderer-aware send path.
// The zero handle addresses nothing.
type ElementHandle struct {
	ID int
}
