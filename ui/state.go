package ui

// The interaction state machine. Per interactive identifier and pointer
// index: Idle -> Pressed -> {Released, Dragging} -> Idle. All transitions
// resolve during the placement pass; the measurement pass reports EventNone
// and never touches persistent state.

// CheckEvent marks the current group interactive and returns its event
// flags for this frame. Interactive elements need unique identifiers:
// duplicates alias focus and event delivery.
func (c *Context) CheckEvent() Event { return c.groupEvent(false) }

// CheckDragEvent is CheckEvent restricted to drag and hover flags. Elements
// that only care about dragging should use it, because went-up is only ever
// delivered to the element that received the corresponding went-down.
func (c *Context) CheckDragEvent() Event { return c.groupEvent(true) }

func (c *Context) groupEvent(dragOnly bool) Event {
	s := c.s
	g := s.top()
	if s.ph == phaseMeasure {
		s.markInteractive(g.id, g.elementIdx)
		return EventNone
	}
	return s.resolveEvents(g.id, rect{g.position, g.size}, dragOnly)
}

// resolveEvents correlates this frame's pointer samples against an
// element's final hit bounds and advances the per-pointer state machine.
// Placement pass only.
func (s *Session) resolveEvents(id uint32, bounds rect, dragOnly bool) Event {
	seq := s.interactiveSeq
	s.interactiveSeq++
	if s.modalBarrier >= 0 && seq < s.modalBarrier {
		return EventNone
	}

	clip := s.currentClip()
	ev := EventNone
	for i := range s.samples {
		p := &s.samples[i]
		rec := &s.pointers[i]
		captured := s.capturedID != 0 && s.capturedPointer == i
		if captured && s.capturedID != id {
			continue // pointer routed exclusively to the capture holder
		}
		inBounds := bounds.contains(p.Pos) && clip.contains(p.Pos)
		if captured {
			inBounds = true
		}

		if inBounds && !p.Touch && !p.IsDown && !p.WentDown && !p.WentUp &&
			(s.capturedID == 0 || captured) {
			ev |= EventHover
		}

		if p.WentDown && inBounds && rec.downID == 0 {
			rec.downID = id
			rec.downPos = p.Pos
			rec.dragging = false
			ev |= EventWentDown
			s.lastEventPointer = true
		}
		if rec.downID != id {
			continue
		}

		if p.IsDown {
			if !p.WentDown {
				ev |= EventIsDown
			}
			if !rec.dragging {
				dx := p.Pos.X - rec.downPos.X
				dy := p.Pos.Y - rec.downPos.Y
				t := s.dragThreshold
				if dx*dx+dy*dy >= t*t {
					rec.dragging = true
					ev |= EventStartDrag
				}
			}
			if rec.dragging {
				ev |= EventIsDragging
			}
		}
		if p.WentUp {
			if rec.dragging {
				ev |= EventEndDrag
			} else if inBounds {
				ev |= EventWentUp
			}
			rec.downID = 0
			rec.dragging = false
			s.lastEventPointer = true
			if captured {
				s.capturedID = 0
				s.capturedPointer = -1
			}
		}
	}
	if dragOnly {
		ev &= dragEventMask
	}
	return ev
}

// capture routes all subsequent samples of the pressing pointer to id.
func (s *Session) capture(id uint32) {
	s.capturedID = id
	s.capturedPointer = 0
	for i := range s.pointers {
		if s.pointers[i].downID == id {
			s.capturedPointer = i
			break
		}
	}
}

// CapturePointer makes the element with the given identifier the exclusive
// receiver of its pressing pointer's events until ReleasePointer is called
// or the press returns to idle. A second capture in the same frame replaces
// the first.
func (c *Context) CapturePointer(id string) {
	if c.s.ph != phasePlace {
		return
	}
	c.s.capture(hashID(id))
}

// ReleasePointer drops the active pointer capture, if any.
func (c *Context) ReleasePointer() {
	c.s.capturedID = 0
	c.s.capturedPointer = -1
}

// CapturedPointerIndex returns the index of the captured pointer, or -1
// when no capture is active. Use it with CheckEvent to tell which pointer
// is driving a drag.
func (c *Context) CapturedPointerIndex() int {
	if c.s.capturedID == 0 {
		return -1
	}
	return c.s.capturedPointer
}
