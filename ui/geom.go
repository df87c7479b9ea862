package ui

// Point is a position or size in physical pixels.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Vec2 is a position or size in virtual units (see Session.SetVirtualResolution).
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// rect is an axis-aligned box in physical pixels, top-left origin.
type rect struct {
	pos  Point
	size Point
}

func (r rect) contains(p Point) bool {
	return p.X >= r.pos.X && p.X < r.pos.X+r.size.X &&
		p.Y >= r.pos.Y && p.Y < r.pos.Y+r.size.Y
}

func (r rect) intersect(o rect) rect {
	x0 := maxi(r.pos.X, o.pos.X)
	y0 := maxi(r.pos.Y, o.pos.Y)
	x1 := mini(r.pos.X+r.size.X, o.pos.X+o.size.X)
	y1 := mini(r.pos.Y+r.size.Y, o.pos.Y+o.size.Y)
	return rect{Point{x0, y0}, Point{maxi(0, x1-x0), maxi(0, y1-y0)}}
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
