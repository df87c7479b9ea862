package ui

import "math"

// The virtual coordinate space binds the configured resolution to the
// screen's smaller dimension; the other axis scales proportionally so the
// aspect ratio is preserved.

func (s *Session) scale() float32 {
	m := s.canvas.X
	if s.canvas.Y < m {
		m = s.canvas.Y
	}
	if s.virtualRes <= 0 {
		return 1
	}
	return float32(m) / s.virtualRes
}

func (s *Session) toPhysical(v float32) int {
	return int(math.Round(float64(v * s.scale())))
}

func (s *Session) toPhysicalPoint(v Vec2) Point {
	return Point{s.toPhysical(v.X), s.toPhysical(v.Y)}
}

func (s *Session) toVirtual(p Point) Vec2 {
	sc := s.scale()
	return Vec2{float32(p.X) / sc, float32(p.Y) / sc}
}

// Scale returns the virtual-to-physical scaling factor for this frame.
func (c *Context) Scale() float32 { return c.s.scale() }

// VirtualToPhysical converts a virtual coordinate to physical pixels.
func (c *Context) VirtualToPhysical(v Vec2) Point { return c.s.toPhysicalPoint(v) }

// PhysicalToVirtual converts a physical pixel coordinate to virtual units.
func (c *Context) PhysicalToVirtual(p Point) Vec2 { return c.s.toVirtual(p) }

// SetVirtualResolution sets the virtual size of the screen's smaller
// dimension. Call it first in the gui definition; changing it between the
// two passes of a frame is a caller error. The default is
// DefaultVirtualResolution.
func (c *Context) SetVirtualResolution(res float32) {
	if res <= 0 {
		return
	}
	c.s.virtualRes = res
}

// VirtualResolution returns the full screen size in virtual units.
func (c *Context) VirtualResolution() Vec2 { return c.s.toVirtual(c.s.canvas) }

// UseExistingProjection opts out of the default full-screen orthographic
// projection: the engine lays out against canvasSize and draws with
// whatever projection the caller installed before Run.
func (c *Context) UseExistingProjection(canvasSize Point) {
	c.s.useExisting = true
	c.s.canvas = canvasSize
}
