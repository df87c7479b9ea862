package ui

// StartScroll turns the current group into a scrolling window: its content
// subtree is measured at its natural size, while the group itself occupies
// size (virtual units). offset is caller-owned scroll state in virtual
// units; the engine reads it, applies drag/wheel/gamepad input scaled by
// the configured speeds, clamps it to [0, content-window], and writes it
// back. Call StartScroll right after StartGroup and EndScroll right before
// EndGroup.
func (c *Context) StartScroll(size Vec2, offset *Vec2) {
	s := c.s
	g := s.configTarget("StartScroll")
	win := s.toPhysicalPoint(size)
	g.scroll = &scrollFrame{window: win, offset: offset}

	if s.ph == phaseMeasure {
		s.markInteractive(g.id, g.elementIdx)
		return
	}

	content := s.scrollContent[g.id]
	in := g.inner()
	maxOff := Point{maxi(0, content.X-in.size.X), maxi(0, content.Y-in.size.Y)}
	off := s.toPhysicalPoint(*offset)

	// The scroll pad drags with the pointer; wheel input applies while the
	// pointer is over the window; a gamepad axis applies while focused.
	ev := s.resolveEvents(g.id, rect{g.position, g.size}, true)
	if ev&EventStartDrag != 0 {
		s.capture(g.id)
	}
	if ev&EventIsDragging != 0 {
		for i := range s.pointers {
			if s.pointers[i].downID != g.id {
				continue
			}
			d := s.samples[i].Pos.Sub(s.pointers[i].prevPos)
			off.X -= int(float32(d.X) * s.speedDrag)
			off.Y -= int(float32(d.Y) * s.speedDrag)
		}
	}
	if ev&EventEndDrag != 0 && s.capturedID == g.id {
		s.capturedID = 0
		s.capturedPointer = -1
	}
	if ev&EventHover != 0 && (s.wheel.X != 0 || s.wheel.Y != 0) {
		off.X -= s.toPhysical(s.wheel.X * s.speedWheel)
		off.Y -= s.toPhysical(s.wheel.Y * s.speedWheel)
	}
	if s.focusID == g.id {
		off.X += s.toPhysical(s.scrollAxis.X * s.speedGamepad)
		off.Y += s.toPhysical(s.scrollAxis.Y * s.speedGamepad)
	}

	off.X = clampi(off.X, 0, maxOff.X)
	off.Y = clampi(off.Y, 0, maxOff.Y)
	*offset = s.toVirtual(off)
	g.scrollOff = off
	s.pushClip(in)
}

// EndScroll closes the scrolling window opened by StartScroll. During the
// measurement pass it records the natural content extent and substitutes
// the window size; during placement it pops the clip region.
func (c *Context) EndScroll() {
	s := c.s
	g := s.top()
	if g.scroll == nil {
		panic("ui: EndScroll without StartScroll")
	}
	if s.ph == phaseMeasure {
		s.scrollContent[g.id] = g.size
		g.size = g.scroll.window
	} else {
		s.popClip()
	}
	g.scroll = nil
}
