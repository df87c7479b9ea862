package ui

import "strings"

// Event is a set of interaction flags reported for an element during one
// frame. Multiple flags may combine within a frame: a click faster than the
// frame time reports EventWentDown|EventWentUp together. All construction
// calls report EventNone during the measurement pass.
type Event uint32

const (
	EventNone Event = 0
	// EventWentUp fires when the pointer is released over this element, and
	// only if this element also received the corresponding EventWentDown.
	EventWentUp Event = 1
	// EventWentDown fires the frame the pointer goes down inside the element.
	EventWentDown Event = 2
	// EventIsDown fires on every frame the pointer is held after a
	// EventWentDown on this element.
	EventIsDown Event = 4
	// EventStartDrag fires once when pointer motion since the press exceeds
	// the drag-start threshold. The element should call CapturePointer to
	// keep receiving events once the pointer leaves its bounds.
	EventStartDrag Event = 8
	// EventEndDrag fires once when the dragging pointer is released.
	EventEndDrag Event = 16
	// EventIsDragging fires on every frame a drag is in progress.
	EventIsDragging Event = 32
	// EventHover fires while a non-touch pointer rests over the element and
	// no element holds a capture on that pointer. Touch pointers never hover.
	EventHover Event = 64
)

const dragEventMask = EventStartDrag | EventEndDrag | EventIsDragging | EventHover

// Has reports whether all flags in mask are set.
func (e Event) Has(mask Event) bool { return e&mask == mask }

func (e Event) String() string {
	if e == EventNone {
		return "none"
	}
	names := []struct {
		f Event
		s string
	}{
		{EventWentUp, "went-up"},
		{EventWentDown, "went-down"},
		{EventIsDown, "is-down"},
		{EventStartDrag, "start-drag"},
		{EventEndDrag, "end-drag"},
		{EventIsDragging, "is-dragging"},
		{EventHover, "hover"},
	}
	var parts []string
	for _, n := range names {
		if e&n.f != 0 {
			parts = append(parts, n.s)
		}
	}
	return strings.Join(parts, "|")
}
