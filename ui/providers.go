package ui

import "github.com/quiltui/quilt/engine/colors"

// Texture is an opaque handle supplied by an AssetProvider. The engine only
// queries dimensions; rendering treats it as a token passed back to the
// Renderer. A texture that is still loading reports Ready() == false and the
// engine lays it out with a zero size for that frame.
type Texture interface {
	// Size returns the pixel dimensions of the texture.
	Size() (w, h int)
	Ready() bool
}

// AssetProvider resolves texture names to handles.
type AssetProvider interface {
	// Texture returns the handle for name. ok is false if the name is
	// unknown; a known-but-still-loading texture returns ok with a handle
	// whose Ready() is false.
	Texture(name string) (tex Texture, ok bool)
}

// TextDirection overrides the layout direction for label text.
type TextDirection int

const (
	// TextDirectionAuto derives the direction from the locale and content.
	TextDirectionAuto TextDirection = iota
	TextDirectionLTR
	TextDirectionRTL
)

// TextStyle carries the session text configuration consumed by the
// TextProvider. It is assembled from SetTextColor, SetTextFont,
// SetTextLocale and SetTextDirection.
type TextStyle struct {
	Color     colors.Color
	Font      string
	Locale    string
	Direction TextDirection
}

// TextProvider shapes and renders text. Measure runs during the measurement
// pass; Draw runs during the placement pass. Sizes are physical pixels.
type TextProvider interface {
	// Measure returns the size of text rendered at the given pixel height.
	// wrapWidth > 0 wraps lines to that width.
	Measure(text string, heightPx, wrapWidth int, style TextStyle) Point
	// Draw renders text with its top-left corner at pos.
	Draw(r Renderer, text string, pos Point, heightPx, wrapWidth int, style TextStyle)
}

// Pointer is one pointing device sample for the current frame, in physical
// pixels. WentDown/WentUp are edge transitions within this frame.
type Pointer struct {
	Pos      Point
	WentDown bool
	WentUp   bool
	IsDown   bool
	// Touch marks samples originating from a touch screen. Touch pointers
	// never produce EventHover.
	Touch bool
}

// EditKey is a non-rune editing key delivered to a focused edit box.
type EditKey int

const (
	EditKeyNone EditKey = iota
	EditKeyBackspace
	EditKeyDelete
	EditKeyLeft
	EditKeyRight
	EditKeyHome
	EditKeyEnd
	EditKeyReturn
)

// InputSampler exposes per-frame input device state. The engine samples it
// once at the start of each frame; implementations should latch transitions
// between frames.
type InputSampler interface {
	// Pointers returns the pointer devices for this frame. The slice length
	// must stay constant for the life of the session.
	Pointers() []Pointer
	// WheelDelta returns this frame's scroll wheel movement in rows.
	WheelDelta() Vec2
	// FocusDirection returns -1/+1 to move keyboard or gamepad focus to the
	// previous/next interactive element, or 0.
	FocusDirection() int
	// ScrollAxis returns the gamepad axis used to scroll a focused region.
	ScrollAxis() Vec2
	// TextInput returns the runes typed this frame.
	TextInput() []rune
	// EditKeys returns the editing keys pressed this frame.
	EditKeys() []EditKey
}

// Renderer is the draw surface the engine paints into during the placement
// pass. All coordinates are physical pixels, top-left origin.
type Renderer interface {
	// CanvasSize returns the size of the render target.
	CanvasSize() Point
	// SetProjection installs a pixel-space orthographic projection covering
	// size. Skipped when the caller opts into an existing projection.
	SetProjection(size Point)
	DrawQuad(pos, size Point, color colors.Color)
	DrawTexture(tex Texture, pos, size Point, color colors.Color)
	// DrawTextureUV draws the sub-region [u0,v0]..[u1,v1] of tex.
	DrawTextureUV(tex Texture, pos, size Point, u0, v0, u1, v1 float32, color colors.Color)
	// PushClip intersects the scissor with the given box; PopClip restores
	// the previous one. Calls are strictly nested.
	PushClip(pos, size Point)
	PopClip()
}
