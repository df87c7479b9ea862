package ui

import "github.com/quiltui/quilt/engine/colors"

type scrollFrame struct {
	window Point
	offset *Vec2
}

type sliderFrame struct {
	dir    Direction
	margin int
	value  *float32
}

// group is one layout container for the current pass. It is rebuilt every
// pass and never retained across frames.
type group struct {
	dir        Direction
	align      Alignment
	spacing    int
	margin     [4]int // left, top, right, bottom
	id         uint32
	elementIdx int
	count      int

	// size accumulates child extents during measurement; during placement
	// it is the final outer size recorded by the measurement pass.
	size     Point
	position Point // placement only, outer top-left
	cursor   int   // placement only, main-axis offset consumed so far

	scrollOff Point
	scroll    *scrollFrame
	slider    *sliderFrame
}

// extend grows the group's measured size by one child extent.
func (g *group) extend(sz Point) {
	switch g.dir {
	case Horizontal:
		if g.count > 0 {
			g.size.X += g.spacing
		}
		g.size.X += sz.X
		g.size.Y = maxi(g.size.Y, sz.Y)
	case Vertical:
		if g.count > 0 {
			g.size.Y += g.spacing
		}
		g.size.Y += sz.Y
		g.size.X = maxi(g.size.X, sz.X)
	default: // Overlay: children stack, not concatenate.
		g.size.X = maxi(g.size.X, sz.X)
		g.size.Y = maxi(g.size.Y, sz.Y)
	}
	g.count++
}

// inner is the group's content box: final bounds minus margins.
func (g *group) inner() rect {
	return rect{
		Point{g.position.X + g.margin[0], g.position.Y + g.margin[1]},
		Point{
			maxi(0, g.size.X-g.margin[0]-g.margin[2]),
			maxi(0, g.size.Y-g.margin[1]-g.margin[3]),
		},
	}
}

func alignOffset(space, extent int, a Alignment) int {
	switch a {
	case AlignCenter:
		return (space - extent) / 2
	case AlignBottom: // also AlignRight
		return space - extent
	default:
		return 0
	}
}

// place assigns the final position for the next child of size sz and
// advances the layout cursor. Overlay children all anchor to the same point.
func (g *group) place(sz Point) Point {
	in := g.inner()
	var p Point
	switch g.dir {
	case Horizontal:
		p = Point{in.pos.X + g.cursor, in.pos.Y + alignOffset(in.size.Y, sz.Y, g.align)}
		g.cursor += sz.X + g.spacing
	case Vertical:
		p = Point{in.pos.X + alignOffset(in.size.X, sz.X, g.align), in.pos.Y + g.cursor}
		g.cursor += sz.Y + g.spacing
	default:
		p = Point{
			in.pos.X + alignOffset(in.size.X, sz.X, g.align),
			in.pos.Y + alignOffset(in.size.Y, sz.Y, g.align),
		}
	}
	p.X -= g.scrollOff.X
	p.Y -= g.scrollOff.Y
	g.count++
	return p
}

// StartGroup opens a layout container. StartGroup/EndGroup must be strictly
// matched and may nest arbitrarily. spacing is the inter-child gap in
// virtual units. Groups sharing an id alias their events and focus.
func (c *Context) StartGroup(layout Layout, spacing float32, id string) {
	s := c.s
	h := hashID(id)
	g := group{
		dir:     layout.direction(),
		align:   layout.alignment(),
		spacing: s.toPhysical(spacing),
		id:      h,
	}
	switch s.ph {
	case phaseMeasure:
		g.elementIdx = s.addElement(h, Point{})
	default:
		el := s.nextElement(h, "StartGroup")
		g.elementIdx = s.elementIt - 1
		g.size = el.size
		if len(s.groups) > 0 {
			g.position = s.top().place(el.size)
		}
	}
	s.groups = append(s.groups, g)
}

// EndGroup closes the current group. During measurement it finalizes the
// group's size (content plus margins) and folds it into the parent.
func (c *Context) EndGroup() {
	s := c.s
	if len(s.groups) == 0 {
		panic("ui: EndGroup without matching StartGroup")
	}
	g := s.top()
	if g.scroll != nil {
		panic("ui: EndGroup on a scroll group before EndScroll")
	}
	if g.slider != nil {
		panic("ui: EndGroup on a slider group before EndSlider")
	}
	s.groups = s.groups[:len(s.groups)-1]
	if s.ph == phaseMeasure {
		g.size.X += g.margin[0] + g.margin[2]
		g.size.Y += g.margin[1] + g.margin[3]
		s.elements[g.elementIdx].size = g.size
		if len(s.groups) > 0 {
			s.top().extend(g.size)
		}
	}
}

// SetMargin sets the current group's four-sided margin, in virtual units.
// Valid only between StartGroup and the group's first child.
func (c *Context) SetMargin(m Margin) {
	s := c.s
	g := s.configTarget("SetMargin")
	g.margin = [4]int{
		s.toPhysical(m.Left),
		s.toPhysical(m.Top),
		s.toPhysical(m.Right),
		s.toPhysical(m.Bottom),
	}
}

// ColorBackground fills the current group's final bounds with a color,
// behind its children. Valid only in the group's configuration window.
func (c *Context) ColorBackground(col colors.Color) {
	s := c.s
	g := s.configTarget("ColorBackground")
	if s.ph == phasePlace {
		s.renderer.DrawQuad(g.position, g.size, col)
	}
}

// ImageBackground stretches a texture over the current group's final
// bounds, behind its children.
func (c *Context) ImageBackground(tex Texture) {
	s := c.s
	g := s.configTarget("ImageBackground")
	if s.ph == phasePlace && tex != nil && tex.Ready() {
		s.renderer.DrawTexture(tex, g.position, g.size, colors.White)
	}
}

// ImageBackgroundNinePatch draws a nine-patch texture over the current
// group's final bounds: the corners keep their pixel size, the bands
// between them stretch.
func (c *Context) ImageBackgroundNinePatch(tex Texture, patch NinePatch) {
	s := c.s
	g := s.configTarget("ImageBackgroundNinePatch")
	if s.ph == phasePlace {
		c.RenderTextureNinePatch(tex, patch, g.position, g.size)
	}
}

// PositionGroup anchors a top-level group on the screen with an extra
// offset in virtual units. Valid only in the configuration window of a
// group opened at the top level (or directly under an overlay root).
func (c *Context) PositionGroup(horizontal, vertical Alignment, offset Vec2) {
	s := c.s
	g := s.configTarget("PositionGroup")
	if s.ph == phasePlace {
		off := s.toPhysicalPoint(offset)
		g.position = Point{
			alignOffset(s.canvas.X, g.size.X, horizontal) + off.X,
			alignOffset(s.canvas.Y, g.size.Y, vertical) + off.Y,
		}
	}
}

// ModalGroup makes the current group modal: interactive elements declared
// before it this frame do not receive pointer events, which yields popup
// semantics inside an overlay root. Valid only in the configuration window.
func (c *Context) ModalGroup() {
	s := c.s
	s.configTarget("ModalGroup")
	if s.ph == phaseMeasure {
		s.modalBarrier = s.interactiveSeq
	}
}

// SetDefaultFocus gives the current group keyboard/gamepad focus whenever
// no element holds it at the end of the frame.
func (c *Context) SetDefaultFocus() {
	s := c.s
	s.defaultFocusID = s.top().id
}

// GroupPosition returns the current group's top-left corner in virtual
// coordinates. It is meaningful only during the placement pass; the
// measurement pass reports a zero position.
func (c *Context) GroupPosition() Vec2 {
	return c.s.toVirtual(c.s.top().position)
}

// GroupSize returns the current group's size in virtual coordinates. During
// the measurement pass this is the extent accumulated so far.
func (c *Context) GroupSize() Vec2 {
	return c.s.toVirtual(c.s.top().size)
}
