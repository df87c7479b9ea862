package renderer2d

import (
	"math"
	"strconv"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/quiltui/quilt/engine/colors"
	glbackend "github.com/quiltui/quilt/engine/gfx/gl"
	"github.com/quiltui/quilt/ui"
)

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const vStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// GLTexture is what the batcher needs from a texture handle: anything that
// exposes its GL object name can be drawn.
type GLTexture interface {
	GLID() uint32
}

// Renderer2D is a batched pixel-space quad renderer. It implements
// ui.Renderer and doubles as the sprite renderer for world layers.
type Renderer2D struct {
	program uint32
	vao     uint32
	vbo     uint32
	ibo     uint32
	white   uint32 // 1x1 white (slot 0)
	texArr  [maxTexSlots]uint32
	texCnt  int

	verts     []float32
	quadCount int
	maxQuads  int

	vp       [16]float32
	vpLoc    int32
	texLocs  [maxTexSlots]int32
	fbW, fbH int

	clips []clipBox
	stats Statistics
}

type clipBox struct{ x, y, w, h int }

// New compiles the pipeline and allocates the batch buffers. The window's
// framebuffer size must be pushed via Resize before the first frame.
func New(vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	program, err := glbackend.MakeProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}

	rd := &Renderer2D{
		program:  program,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*vStride),
	}
	rd.white = glbackend.NewTexture(1, 1, []byte{255, 255, 255, 255})

	rd.vpLoc = gl.GetUniformLocation(program, gl.Str("uVP\x00"))
	for i := 0; i < maxTexSlots; i++ {
		name := "uTex[" + strconv.Itoa(i) + "]\x00"
		rd.texLocs[i] = gl.GetUniformLocation(program, gl.Str(name))
	}

	gl.GenVertexArrays(1, &rd.vao)
	gl.BindVertexArray(rd.vao)

	gl.GenBuffers(1, &rd.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rd.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuads*vertsPerQuad*vStride*4, nil, gl.DYNAMIC_DRAW)

	const stride = vStride * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, gl.PtrOffset(8*4))

	// The index pattern never changes; build it once.
	inds := make([]uint32, 0, maxQuads*indsPerQuad)
	for q := 0; q < maxQuads; q++ {
		v := uint32(q * vertsPerQuad)
		inds = append(inds, v+0, v+2, v+1, v+1, v+2, v+3)
	}
	gl.GenBuffers(1, &rd.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rd.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(inds)*4, gl.Ptr(inds), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	rd.resetBatch()
	return rd, nil
}

func (rd *Renderer2D) Shutdown() {
	glbackend.DeleteTexture(rd.white)
	if rd.vbo != 0 {
		gl.DeleteBuffers(1, &rd.vbo)
	}
	if rd.ibo != 0 {
		gl.DeleteBuffers(1, &rd.ibo)
	}
	if rd.vao != 0 {
		gl.DeleteVertexArrays(1, &rd.vao)
	}
	if rd.program != 0 {
		gl.DeleteProgram(rd.program)
	}
}

// Resize records the framebuffer size used for CanvasSize and scissor flips.
func (rd *Renderer2D) Resize(w, h int) { rd.fbW, rd.fbH = w, h }

// BeginScene starts a batch under an explicit view-projection, for world
// layers that render through a camera.
func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// --- ui.Renderer ---

var _ ui.Renderer = (*Renderer2D)(nil)

func (rd *Renderer2D) CanvasSize() ui.Point { return ui.Point{X: rd.fbW, Y: rd.fbH} }

// SetProjection installs a pixel-space projection with the origin at the
// top-left, flushing whatever the previous projection still had batched.
func (rd *Renderer2D) SetProjection(size ui.Point) {
	rd.flush()
	w, h := float32(size.X), float32(size.Y)
	if w <= 0 || h <= 0 {
		return
	}
	rd.vp = [16]float32{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

func (rd *Renderer2D) DrawQuad(pos, size ui.Point, color colors.Color) {
	rd.ensureQuadCapacity()
	rd.pushQuad(pos, size, color, rd.texSlot(rd.white), 0, 0, 1, 1)
}

func (rd *Renderer2D) DrawTexture(tex ui.Texture, pos, size ui.Point, color colors.Color) {
	rd.DrawTextureUV(tex, pos, size, 0, 0, 1, 1, color)
}

func (rd *Renderer2D) DrawTextureUV(tex ui.Texture, pos, size ui.Point, u0, v0, u1, v1 float32, color colors.Color) {
	rd.ensureQuadCapacity()
	id := rd.white
	if g, ok := tex.(GLTexture); ok {
		id = g.GLID()
	}
	rd.pushQuad(pos, size, color, rd.texSlot(id), u0, v0, u1, v1)
}

// PushClip applies an already-intersected scissor box; the caller maintains
// the nesting discipline.
func (rd *Renderer2D) PushClip(pos, size ui.Point) {
	rd.flush()
	rd.clips = append(rd.clips, clipBox{pos.X, pos.Y, size.X, size.Y})
	rd.applyClip()
}

func (rd *Renderer2D) PopClip() {
	rd.flush()
	if len(rd.clips) == 0 {
		return
	}
	rd.clips = rd.clips[:len(rd.clips)-1]
	rd.applyClip()
}

func (rd *Renderer2D) applyClip() {
	if len(rd.clips) == 0 {
		gl.Disable(gl.SCISSOR_TEST)
		return
	}
	c := rd.clips[len(rd.clips)-1]
	w, h := maxInt(c.w, 0), maxInt(c.h, 0)
	gl.Enable(gl.SCISSOR_TEST)
	// GL scissor origin is bottom-left.
	gl.Scissor(int32(c.x), int32(rd.fbH-(c.y+h)), int32(w), int32(h))
}

// --- sprite path (world layers) ---

// DrawSprite draws a center-anchored rotated quad, the shape world layers
// want for entities.
func (rd *Renderer2D) DrawSprite(x, y, w, h float32, tex GLTexture, tint colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	id := rd.white
	if tex != nil {
		id = tex.GLID()
	}
	rd.pushQuadRotated(x, y, w, h, tint, rotationRad, rd.texSlot(id), 0, 0, 1, 1)
}

// DrawRegion draws a center-anchored rotated quad sampling a sub-region of
// a texture atlas.
func (rd *Renderer2D) DrawRegion(x, y, w, h float32, reg Region, tint colors.Color, rotationRad float32) {
	rd.ensureQuadCapacity()
	id := rd.white
	if reg.Texture != nil {
		id = reg.Texture.GLID()
	}
	rd.pushQuadRotated(x, y, w, h, tint, rotationRad, rd.texSlot(id), reg.U0, reg.V0, reg.U1, reg.V1)
}

// --- internals ---

func (rd *Renderer2D) texSlot(id uint32) float32 {
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == id {
			return float32(i)
		}
	}
	if rd.texCnt >= maxTexSlots {
		// flush and reset texture bindings
		rd.flush()
	}
	rd.texArr[rd.texCnt] = id
	rd.texCnt++
	rd.stats.TextureCount = rd.texCnt
	return float32(rd.texCnt - 1)
}

// pushQuad emits an axis-aligned quad with its origin at the top-left.
func (rd *Renderer2D) pushQuad(pos, size ui.Point, color colors.Color, texIndex, u0, v0, u1, v1 float32) {
	x0, y0 := float32(pos.X), float32(pos.Y)
	x1, y1 := x0+float32(size.X), y0+float32(size.Y)
	rd.verts = append(rd.verts,
		x0, y0, color[0], color[1], color[2], color[3], u0, v0, texIndex,
		x1, y0, color[0], color[1], color[2], color[3], u1, v0, texIndex,
		x0, y1, color[0], color[1], color[2], color[3], u0, v1, texIndex,
		x1, y1, color[0], color[1], color[2], color[3], u1, v1, texIndex,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) pushQuadRotated(x, y, w, h float32, color colors.Color, rotationRad, texIndex, u0, v0, u1, v1 float32) {
	halfW := w * 0.5
	halfH := h * 0.5

	// corners (TL, TR, BL, BR) with UVs. Positive Y goes down so top is -halfH.
	corners := [4][4]float32{
		{-halfW, -halfH, u0, v0},
		{halfW, -halfH, u1, v0},
		{-halfW, halfH, u0, v1},
		{halfW, halfH, u1, v1},
	}
	c, s := float32(math.Cos(float64(rotationRad))), float32(math.Sin(float64(rotationRad)))

	for _, p := range corners {
		rx := p[0]*c - p[1]*s + x
		ry := p[0]*s + p[1]*c + y
		rd.verts = append(rd.verts,
			rx, ry,
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			texIndex,
		)
	}
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, rd.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(rd.verts)*4, gl.Ptr(rd.verts))

	gl.UseProgram(rd.program)
	gl.UniformMatrix4fv(rd.vpLoc, 1, false, &rd.vp[0])
	for i := 0; i < rd.texCnt; i++ {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, rd.texArr[i])
		gl.Uniform1i(rd.texLocs[i], int32(i))
	}

	gl.BindVertexArray(rd.vao)
	gl.DrawElements(gl.TRIANGLES, int32(rd.quadCount*indsPerQuad), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	rd.stats.DrawCalls++

	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.quadCount = 0
	for i := range rd.texArr {
		rd.texArr[i] = 0
	}
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
