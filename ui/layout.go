package ui

// Alignment positions children along a group's cross axis, or a top-level
// group on the screen. AlignTop/AlignLeft express the same value on their
// respective axes, as do AlignBottom/AlignRight.
type Alignment int

const (
	AlignTop    Alignment = 1
	AlignLeft   Alignment = 1
	AlignCenter Alignment = 2
	AlignBottom Alignment = 3
	AlignRight  Alignment = 3
)

// Direction selects the axis children are laid out along. Overlay groups
// stack children on top of one another instead of concatenating them.
type Direction int

const (
	Horizontal Direction = 4
	Vertical   Direction = 8
	Overlay    Direction = 12
)

// Layout combines a Direction with a cross-axis Alignment. Children always
// pack from the start of the layout axis; the alignment applies to the
// cross axis (and to both axes for overlay groups).
type Layout int

const (
	LayoutHorizontalTop    = Layout(Horizontal) | Layout(AlignTop)
	LayoutHorizontalCenter = Layout(Horizontal) | Layout(AlignCenter)
	LayoutHorizontalBottom = Layout(Horizontal) | Layout(AlignBottom)
	LayoutVerticalLeft     = Layout(Vertical) | Layout(AlignLeft)
	LayoutVerticalCenter   = Layout(Vertical) | Layout(AlignCenter)
	LayoutVerticalRight    = Layout(Vertical) | Layout(AlignRight)
	LayoutOverlay          = Layout(Overlay) | Layout(AlignCenter)
)

func (l Layout) direction() Direction { return Direction(l) &^ 3 }
func (l Layout) alignment() Alignment { return Alignment(l) & 3 }

// DefaultGroupID is used when the caller does not care about a group's
// identity. Groups sharing it cannot receive independent events or focus.
const DefaultGroupID = "__group_id__"

// Margin is the four-sided inner margin of a group, in virtual units.
type Margin struct {
	Left, Top, Right, Bottom float32
}

// UniformMargin returns a margin with all four sides of size m.
func UniformMargin(m float32) Margin { return Margin{m, m, m, m} }

// SymmetricMargin returns a margin with left/right of size x and top/bottom
// of size y.
func SymmetricMargin(x, y float32) Margin { return Margin{x, y, x, y} }

// NinePatch describes the stretchable region of a texture in UV coordinates:
// (U0,V0) is the top-left and (U1,V1) the bottom-right corner of the region
// that stretches. The bands outside it keep their pixel size.
type NinePatch struct {
	U0, V0, U1, V1 float32
}
