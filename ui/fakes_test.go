package ui

import (
	"testing"

	"github.com/quiltui/quilt/engine/colors"
)

// Headless collaborators for driving a Session in tests.

type drawCall struct {
	kind  string // quad, texture, uv
	pos   Point
	size  Point
	color colors.Color
}

type fakeRenderer struct {
	canvas      Point
	projections []Point
	calls       []drawCall
	clipLog     []rect
	clipDepth   int
}

func (r *fakeRenderer) CanvasSize() Point      { return r.canvas }
func (r *fakeRenderer) SetProjection(sz Point) { r.projections = append(r.projections, sz) }

func (r *fakeRenderer) DrawQuad(pos, size Point, col colors.Color) {
	r.calls = append(r.calls, drawCall{"quad", pos, size, col})
}

func (r *fakeRenderer) DrawTexture(tex Texture, pos, size Point, col colors.Color) {
	r.calls = append(r.calls, drawCall{"texture", pos, size, col})
}

func (r *fakeRenderer) DrawTextureUV(tex Texture, pos, size Point, u0, v0, u1, v1 float32, col colors.Color) {
	r.calls = append(r.calls, drawCall{"uv", pos, size, col})
}

func (r *fakeRenderer) PushClip(pos, size Point) {
	r.clipLog = append(r.clipLog, rect{pos, size})
	r.clipDepth++
}

func (r *fakeRenderer) PopClip() { r.clipDepth-- }

type fakeTexture struct {
	w, h  int
	ready bool
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Ready() bool      { return t.ready }

type fakeAssets struct {
	textures map[string]Texture
}

func (a *fakeAssets) Texture(name string) (Texture, bool) {
	tex, ok := a.textures[name]
	return tex, ok
}

// fakeText measures a monospace font: every rune is heightPx/2 wide.
type fakeText struct {
	drawn []string
}

func (f *fakeText) Measure(text string, heightPx, wrapWidth int, _ TextStyle) Point {
	n := len([]rune(text))
	gw := heightPx / 2
	if n == 0 {
		return Point{0, heightPx}
	}
	if wrapWidth <= 0 || n*gw <= wrapWidth {
		return Point{n * gw, heightPx}
	}
	perLine := maxi(1, wrapWidth/gw)
	lines := (n + perLine - 1) / perLine
	return Point{perLine * gw, lines * heightPx}
}

func (f *fakeText) Draw(r Renderer, text string, pos Point, heightPx, wrapWidth int, style TextStyle) {
	f.drawn = append(f.drawn, text)
	sz := f.Measure(text, heightPx, wrapWidth, style)
	r.DrawQuad(pos, sz, style.Color)
}

type fakeInput struct {
	pointers   []Pointer
	wheel      Vec2
	focusDir   int
	scrollAxis Vec2
	text       []rune
	keys       []EditKey
}

func (i *fakeInput) Pointers() []Pointer  { return i.pointers }
func (i *fakeInput) WheelDelta() Vec2     { return i.wheel }
func (i *fakeInput) FocusDirection() int  { return i.focusDir }
func (i *fakeInput) ScrollAxis() Vec2     { return i.scrollAxis }
func (i *fakeInput) TextInput() []rune    { return i.text }
func (i *fakeInput) EditKeys() []EditKey  { return i.keys }

// endFrame clears the per-frame transition flags after a Run.
func (i *fakeInput) endFrame() {
	for n := range i.pointers {
		i.pointers[n].WentDown = false
		i.pointers[n].WentUp = false
	}
	i.wheel = Vec2{}
	i.focusDir = 0
	i.scrollAxis = Vec2{}
	i.text = nil
	i.keys = nil
}

func (i *fakeInput) press(p Point) {
	i.pointers[0].Pos = p
	i.pointers[0].WentDown = true
	i.pointers[0].IsDown = true
}

func (i *fakeInput) move(p Point) {
	i.pointers[0].Pos = p
}

func (i *fakeInput) release(p Point) {
	i.pointers[0].Pos = p
	i.pointers[0].WentUp = true
	i.pointers[0].IsDown = false
}

// fixture wires a session to fakes. The default canvas matches the default
// virtual resolution so virtual units equal physical pixels in tests.
type fixture struct {
	s      *Session
	r      *fakeRenderer
	in     *fakeInput
	text   *fakeText
	assets *fakeAssets
}

func newFixture() *fixture {
	return newFixtureCanvas(Point{1000, 1000})
}

func newFixtureCanvas(canvas Point) *fixture {
	r := &fakeRenderer{canvas: canvas}
	return &fixture{
		s:      NewSession(r),
		r:      r,
		in:     &fakeInput{pointers: make([]Pointer, 1)},
		text:   &fakeText{},
		assets: &fakeAssets{textures: map[string]Texture{}},
	}
}

func (f *fixture) frame(gui func(*Context)) {
	f.s.Run(f.assets, f.text, f.in, gui)
	f.in.endFrame()
}

// button declares a fixed-size interactive group and returns its event flags
// for the frame (the placement pass overwrites the measurement pass result).
func button(ctx *Context, id string, size Vec2) Event {
	ctx.StartGroup(LayoutHorizontalTop, 0, id)
	ev := ctx.CheckEvent()
	ctx.CustomElement(size, id+"#body", nil)
	ctx.EndGroup()
	return ev
}

func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: %s", want)
		}
	}()
	fn()
}
