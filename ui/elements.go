package ui

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/quiltui/quilt/engine/colors"
)

// Image lays out a texture with the given height in virtual units; the
// width derives from the texture's aspect ratio. A texture that is not
// ready yet occupies zero size for this frame instead of failing it.
func (c *Context) Image(tex Texture, ysize float32) {
	s := c.s
	var size Point
	if tex != nil && tex.Ready() {
		w, h := tex.Size()
		if h > 0 {
			ph := s.toPhysical(ysize)
			size = Point{int(math.Round(float64(ph) * float64(w) / float64(h))), ph}
		}
	}
	id := imageID(tex, ysize)
	switch s.ph {
	case phaseMeasure:
		s.addElement(id, size)
		s.top().extend(size)
	default:
		el := s.nextElement(id, "Image")
		pos := s.top().place(el.size)
		if tex != nil && tex.Ready() && el.size.X > 0 {
			s.renderer.DrawTexture(tex, pos, el.size, colors.White)
		}
	}
}

// Label lays out a single-line text element with the given height in
// virtual units; the width derives from the shaped text.
func (c *Context) Label(text string, ysize float32) {
	c.label(text, ysize, Vec2{})
}

// LabelWrapped lays out a multi-line label wrapped to size.X virtual units.
// A zero size.Y renders the whole text; otherwise the height is capped.
func (c *Context) LabelWrapped(text string, ysize float32, size Vec2) {
	c.label(text, ysize, size)
}

func (c *Context) label(text string, ysize float32, size Vec2) {
	s := c.s
	id := hashID(text)
	heightPx := s.toPhysical(ysize)
	wrapPx := 0
	if size.X > 0 {
		wrapPx = s.toPhysical(size.X)
	}
	style := s.textStyle()
	switch s.ph {
	case phaseMeasure:
		sz := c.fonts.Measure(text, heightPx, wrapPx, style)
		if size.Y > 0 {
			sz.Y = mini(sz.Y, s.toPhysical(size.Y))
		}
		s.addElement(id, sz)
		s.top().extend(sz)
	default:
		el := s.nextElement(id, "Label")
		pos := s.top().place(el.size)
		c.fonts.Draw(s.renderer, text, pos, heightPx, wrapPx, style)
	}
}

// Edit lays out an editable text box and reports whether it is being
// edited. A zero size.X auto-expands to the content; a zero size.Y makes a
// single line of ysize. The box acquires focus when clicked; while focused
// it consumes the sampler's text input and editing keys, mutating text.
func (c *Context) Edit(ysize float32, size Vec2, id string, text *string) bool {
	s := c.s
	h := hashID(id)
	heightPx := s.toPhysical(ysize)
	style := s.textStyle()

	switch s.ph {
	case phaseMeasure:
		var sz Point
		if size.X > 0 {
			sz.X = s.toPhysical(size.X)
		} else {
			sz.X = maxi(c.fonts.Measure(*text, heightPx, 0, style).X, heightPx/2)
		}
		if size.Y > 0 {
			sz.Y = s.toPhysical(size.Y)
		} else {
			sz.Y = heightPx
		}
		idx := s.addElement(h, sz)
		s.markInteractive(h, idx)
		s.top().extend(sz)
		return s.focusID == h
	default:
		el := s.nextElement(h, "Edit")
		pos := s.top().place(el.size)
		ev := s.resolveEvents(h, rect{pos, el.size}, false)
		st := s.state(h)
		if ev&EventWentDown != 0 {
			s.focusID = h
			st.caret = len([]rune(*text))
		}
		editing := s.focusID == h
		if editing {
			c.applyTextInput(text, st)
		}
		c.fonts.Draw(s.renderer, *text, pos, heightPx, 0, style)
		if editing {
			caretX := c.fonts.Measure(string([]rune(*text)[:st.caret]), heightPx, 0, style).X
			w := maxi(1, heightPx/16)
			s.renderer.DrawQuad(Point{pos.X + caretX, pos.Y}, Point{w, heightPx}, style.Color)
		}
		return editing
	}
}

func (c *Context) applyTextInput(text *string, st *elementState) {
	runes := []rune(*text)
	st.caret = clampi(st.caret, 0, len(runes))
	for _, r := range c.input.TextInput() {
		runes = append(runes[:st.caret], append([]rune{r}, runes[st.caret:]...)...)
		st.caret++
	}
	for _, k := range c.input.EditKeys() {
		switch k {
		case EditKeyBackspace:
			if st.caret > 0 {
				runes = append(runes[:st.caret-1], runes[st.caret:]...)
				st.caret--
			}
		case EditKeyDelete:
			if st.caret < len(runes) {
				runes = append(runes[:st.caret], runes[st.caret+1:]...)
			}
		case EditKeyLeft:
			st.caret = maxi(0, st.caret-1)
		case EditKeyRight:
			st.caret = mini(len(runes), st.caret+1)
		case EditKeyHome:
			st.caret = 0
		case EditKeyEnd:
			st.caret = len(runes)
		case EditKeyReturn:
			c.s.focusID = 0
		}
	}
	*text = string(runes)
}

// CustomElement lays out a caller-rendered element. The render callback is
// invoked during the placement pass with the element's final physical
// position and size; use RenderTexture and friends inside it.
func (c *Context) CustomElement(size Vec2, id string, render func(pos, size Point)) {
	s := c.s
	h := hashID(id)
	switch s.ph {
	case phaseMeasure:
		sz := s.toPhysicalPoint(size)
		s.addElement(h, sz)
		s.top().extend(sz)
	default:
		el := s.nextElement(h, "CustomElement")
		pos := s.top().place(el.size)
		if render != nil {
			render(pos, el.size)
		}
	}
}

// imageID derives a stable identifier from the image content: its pixel
// dimensions and requested height. Images are not interactive by default,
// so collisions only matter if the enclosing group checks events.
func imageID(tex Texture, ysize float32) uint32 {
	h := fnv.New32a()
	var buf [12]byte
	if tex != nil {
		w, ht := tex.Size()
		binary.LittleEndian.PutUint32(buf[0:], uint32(w))
		binary.LittleEndian.PutUint32(buf[4:], uint32(ht))
	}
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(ysize))
	h.Write(buf[:])
	v := h.Sum32()
	if v == 0 {
		v = 1
	}
	return v
}
