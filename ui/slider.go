package ui

// StartSlider turns the current group into a slider along the given
// direction. Pressing or dragging inside the group maps the pointer's
// position within the track (inset by margin virtual units on both ends)
// linearly onto [0,1] and writes it to the caller-owned value. The pointer
// is captured for the duration of a drag. Call StartSlider right after
// StartGroup and EndSlider right before EndGroup.
func (c *Context) StartSlider(dir Direction, margin float32, value *float32) {
	s := c.s
	g := s.configTarget("StartSlider")
	m := s.toPhysical(margin)
	g.slider = &sliderFrame{dir: dir, margin: m, value: value}

	if s.ph == phaseMeasure {
		s.markInteractive(g.id, g.elementIdx)
		return
	}

	ev := s.resolveEvents(g.id, rect{g.position, g.size}, false)
	if ev&EventStartDrag != 0 {
		s.capture(g.id)
	}
	if ev&(EventEndDrag|EventWentUp) != 0 && s.capturedID == g.id {
		s.capturedID = 0
		s.capturedPointer = -1
	}
	if ev&(EventWentDown|EventIsDown|EventIsDragging) == 0 {
		return
	}

	p := s.activePointer(g.id)
	var track, pos int
	if dir == Horizontal {
		track = g.size.X - 2*m
		pos = p.X - (g.position.X + m)
	} else {
		track = g.size.Y - 2*m
		pos = p.Y - (g.position.Y + m)
	}
	if track <= 0 {
		return
	}
	*value = clampf(float32(pos)/float32(track), 0, 1)
}

// EndSlider closes the slider group opened by StartSlider.
func (c *Context) EndSlider() {
	g := c.s.top()
	if g.slider == nil {
		panic("ui: EndSlider without StartSlider")
	}
	g.slider = nil
}

// activePointer returns the position of the pointer currently pressing id,
// falling back to the primary pointer.
func (s *Session) activePointer(id uint32) Point {
	for i := range s.pointers {
		if s.pointers[i].downID == id {
			return s.samples[i].Pos
		}
	}
	if len(s.samples) > 0 {
		return s.samples[0].Pos
	}
	return Point{}
}
