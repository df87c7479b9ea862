package colors

type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{0, 0, 0, 0}
)

// RGB builds an opaque color from 0..1 components.
func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

func RGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scaled multiplies the RGB channels by f, leaving alpha alone.
func (c Color) Scaled(f float32) Color {
	return Color{c[0] * f, c[1] * f, c[2] * f, c[3]}
}
