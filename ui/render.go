package ui

import "github.com/quiltui/quilt/engine/colors"

// Render helpers for CustomElement callbacks. Positions and sizes are
// physical pixels, matching what the callback receives.

// RenderTexture draws a texture at a physical position and size.
func (c *Context) RenderTexture(tex Texture, pos, size Point) {
	c.RenderTextureColored(tex, pos, size, colors.White)
}

// RenderTextureColored draws a tinted texture at a physical position and size.
func (c *Context) RenderTextureColored(tex Texture, pos, size Point, col colors.Color) {
	if tex == nil || !tex.Ready() {
		return
	}
	c.s.renderer.DrawTexture(tex, pos, size, col)
}

// RenderTextureNinePatch draws a texture split into nine patches: the four
// corners keep their pixel size, the edge bands stretch along one axis and
// the center stretches along both.
func (c *Context) RenderTextureNinePatch(tex Texture, patch NinePatch, pos, size Point) {
	if tex == nil || !tex.Ready() {
		return
	}
	tw, th := tex.Size()
	if tw <= 0 || th <= 0 {
		return
	}

	left := int(patch.U0 * float32(tw))
	right := tw - int(patch.U1*float32(tw))
	top := int(patch.V0 * float32(th))
	bottom := th - int(patch.V1*float32(th))

	// Destination column/row boundaries; fixed bands shrink when the
	// destination is smaller than the corners.
	left = mini(left, size.X/2)
	right = mini(right, size.X-left)
	top = mini(top, size.Y/2)
	bottom = mini(bottom, size.Y-top)

	xs := [4]int{pos.X, pos.X + left, pos.X + size.X - right, pos.X + size.X}
	ys := [4]int{pos.Y, pos.Y + top, pos.Y + size.Y - bottom, pos.Y + size.Y}
	us := [4]float32{0, patch.U0, patch.U1, 1}
	vs := [4]float32{0, patch.V0, patch.V1, 1}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			w := xs[col+1] - xs[col]
			h := ys[row+1] - ys[row]
			if w <= 0 || h <= 0 {
				continue
			}
			c.s.renderer.DrawTextureUV(tex,
				Point{xs[col], ys[row]}, Point{w, h},
				us[col], vs[row], us[col+1], vs[row+1],
				colors.White)
		}
	}
}
