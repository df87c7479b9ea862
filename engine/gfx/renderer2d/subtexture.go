package renderer2d

// Region describes a UV sub-rect of a texture atlas.
type Region struct {
	Texture GLTexture
	U0, V0  float32 // top-left
	U1, V1  float32 // bottom-right
}

// RegionFromPixels builds a region from pixel coordinates within an atlas.
func RegionFromPixels(tex GLTexture, x, y, w, h, atlasW, atlasH int) Region {
	u0 := float32(x) / float32(atlasW)
	v0 := float32(y) / float32(atlasH)
	u1 := float32(x+w) / float32(atlasW)
	v1 := float32(y+h) / float32(atlasH)
	return Region{Texture: tex, U0: u0, V0: v0, U1: u1, V1: v1}
}

// RegionFromGrid builds a region from tile grid coordinates (cx,cy) of cell
// size (cw,ch).
func RegionFromGrid(tex GLTexture, cx, cy, cw, ch, atlasW, atlasH int) Region {
	return RegionFromPixels(tex, cx*cw, cy*ch, cw, ch, atlasW, atlasH)
}
