package ui

import (
	"fmt"
	"hash/fnv"

	"github.com/quiltui/quilt/engine/colors"
)

// Tuning defaults. Scroll speeds are multipliers applied to raw input
// deltas; the drag threshold is in physical pixels.
const (
	DefaultVirtualResolution  float32 = 1000
	DefaultDragStartThreshold int     = 8
	DefaultScrollSpeedDrag    float32 = 2
	DefaultScrollSpeedWheel   float32 = 16
	DefaultScrollSpeedGamepad float32 = 4
)

// staleGenerations is how many frames a persistent record survives without
// its element being declared before it is evicted.
const staleGenerations = 120

type phase int

const (
	phaseMeasure phase = iota
	phasePlace
)

// element is one construction call recorded during the measurement pass and
// replayed during placement. Groups record one element at StartGroup, sized
// at EndGroup.
type element struct {
	id          uint32
	size        Point
	interactive bool
}

// pointerRecord is the per-pointer-index press/drag state surviving frames.
type pointerRecord struct {
	downID   uint32 // identifier that received the went-down, 0 when idle
	downPos  Point
	prevPos  Point
	dragging bool
}

// elementState is per-identifier state persisted across frames, pruned when
// the identifier stays absent for staleGenerations frames.
type elementState struct {
	gen   uint64
	caret int
}

// Session owns the persistent interaction state and session configuration
// for a run of frames. Create one with NewSession and call Run once per
// frame. A Session is not safe for concurrent use; the whole engine is
// single-threaded and frame-synchronous.
type Session struct {
	renderer Renderer

	// Session configuration, reset only by recreating the session.
	virtualRes    float32
	dragThreshold int
	speedDrag     float32
	speedWheel    float32
	speedGamepad  float32

	// Text configuration consumed by subsequent labels within a pass.
	textColor  colors.Color
	textFont   string
	textLocale string
	textDir    TextDirection

	// Persistent interaction state.
	gen              uint64
	states           map[uint32]*elementState
	pointers         []pointerRecord
	focusID          uint32
	capturedID       uint32
	capturedPointer  int
	lastEventPointer bool

	// Canvas for the current frame.
	canvas      Point
	useExisting bool

	// Per-frame scratch, reused across frames.
	ph             phase
	samples        []Pointer
	wheel          Vec2
	scrollAxis     Vec2
	elements       []element
	elementIt      int
	groups         []group
	clips          []rect
	interactive    []uint32
	frameIDs       map[uint32]struct{}
	scrollContent  map[uint32]Point
	modalBarrier   int
	interactiveSeq int
	defaultFocusID uint32
	running        bool
}

// NewSession creates a session bound to a renderer. The renderer is the only
// collaborator fixed for the session's lifetime; assets, fonts and input are
// supplied per frame to Run.
func NewSession(r Renderer) *Session {
	return &Session{
		renderer:        r,
		virtualRes:      DefaultVirtualResolution,
		dragThreshold:   DefaultDragStartThreshold,
		speedDrag:       DefaultScrollSpeedDrag,
		speedWheel:      DefaultScrollSpeedWheel,
		speedGamepad:    DefaultScrollSpeedGamepad,
		states:          make(map[uint32]*elementState),
		frameIDs:        make(map[uint32]struct{}),
		scrollContent:   make(map[uint32]Point),
		capturedPointer: -1,
	}
}

// Context is the per-frame handle passed to the declarative callback. All
// element construction and configuration calls are methods on it.
type Context struct {
	s      *Session
	assets AssetProvider
	fonts  TextProvider
	input  InputSampler
}

// Run executes one frame: the callback is invoked twice, first for the
// measurement pass (sizes only, all queries neutral) and then for the
// placement pass (positions, hit testing, events, rendering). The callback
// must describe an isomorphic element tree on both invocations; mismatches
// panic. Run must not be called reentrantly from within the callback.
func (s *Session) Run(assets AssetProvider, fonts TextProvider, input InputSampler, gui func(*Context)) {
	if s.running {
		panic("ui: Session.Run called reentrantly from the gui callback")
	}
	s.running = true
	defer func() { s.running = false }()

	s.gen++
	s.canvas = s.renderer.CanvasSize()
	s.useExisting = false
	s.samples = input.Pointers()
	if len(s.pointers) != len(s.samples) {
		s.pointers = make([]pointerRecord, len(s.samples))
	}
	s.wheel = input.WheelDelta()
	s.scrollAxis = input.ScrollAxis()
	s.defaultFocusID = 0
	s.modalBarrier = -1
	s.elements = s.elements[:0]
	s.interactive = s.interactive[:0]
	clear(s.frameIDs)
	clear(s.scrollContent)

	ctx := &Context{s: s, assets: assets, fonts: fonts, input: input}

	s.beginPass(phaseMeasure)
	gui(ctx)
	if len(s.groups) != 0 {
		panic(fmt.Sprintf("ui: %d StartGroup calls without matching EndGroup", len(s.groups)))
	}

	s.beginPass(phasePlace)
	if !s.useExisting {
		s.renderer.SetProjection(s.canvas)
	}
	gui(ctx)
	if len(s.groups) != 0 {
		panic(fmt.Sprintf("ui: %d StartGroup calls without matching EndGroup", len(s.groups)))
	}
	if s.elementIt != len(s.elements) {
		panic(fmt.Sprintf("ui: placement pass built %d elements, measurement built %d (callback must describe the same tree in both passes)",
			s.elementIt, len(s.elements)))
	}

	s.finishFrame(input)
}

func (s *Session) beginPass(p phase) {
	s.ph = p
	s.groups = s.groups[:0]
	s.clips = s.clips[:0]
	s.elementIt = 0
	s.interactiveSeq = 0
	s.textColor = colors.White
	s.textFont = ""
	s.textLocale = "en"
	s.textDir = TextDirectionAuto
}

func (s *Session) finishFrame(input InputSampler) {
	// Identifiers absent from this frame lose focus silently; a declared
	// default focus reclaims it.
	if s.focusID != 0 {
		if _, ok := s.frameIDs[s.focusID]; !ok {
			s.focusID = 0
		}
	}
	if s.focusID == 0 {
		s.focusID = s.defaultFocusID
	}
	if dir := input.FocusDirection(); dir != 0 && len(s.interactive) > 0 {
		s.lastEventPointer = false
		idx := -1
		for i, id := range s.interactive {
			if id == s.focusID {
				idx = i
				break
			}
		}
		switch {
		case idx < 0 && dir > 0:
			idx = 0
		case idx < 0:
			idx = len(s.interactive) - 1
		default:
			idx = clampi(idx+dir, 0, len(s.interactive)-1)
		}
		s.focusID = s.interactive[idx]
	}

	// A capture holder that disappeared releases its pointer.
	if s.capturedID != 0 {
		if _, ok := s.frameIDs[s.capturedID]; !ok {
			s.capturedID = 0
			s.capturedPointer = -1
		}
	}

	for i := range s.pointers {
		s.pointers[i].prevPos = s.samples[i].Pos
		// A press whose element vanished mid-gesture would otherwise pin
		// the record forever.
		if !s.samples[i].IsDown {
			s.pointers[i].downID = 0
			s.pointers[i].dragging = false
		}
	}

	for id, st := range s.states {
		if s.gen-st.gen > staleGenerations {
			delete(s.states, id)
		}
	}
}

// state returns the persistent record for id, touching its generation.
func (s *Session) state(id uint32) *elementState {
	st, ok := s.states[id]
	if !ok {
		st = &elementState{}
		s.states[id] = st
	}
	st.gen = s.gen
	return st
}

func (s *Session) top() *group {
	if len(s.groups) == 0 {
		panic("ui: no open group (missing StartGroup)")
	}
	return &s.groups[len(s.groups)-1]
}

// configTarget returns the current group, enforcing the configuration
// window: group configuration is only valid between StartGroup and the
// group's first child.
func (s *Session) configTarget(op string) *group {
	if len(s.groups) == 0 {
		panic("ui: " + op + " called outside StartGroup/EndGroup")
	}
	g := s.top()
	if g.count > 0 {
		panic("ui: " + op + " must be called before the group's first child")
	}
	return g
}

func (s *Session) addElement(id uint32, size Point) int {
	s.elements = append(s.elements, element{id: id, size: size})
	return len(s.elements) - 1
}

// nextElement advances the placement-pass iterator over the measurement
// record, validating isomorphism between the two passes.
func (s *Session) nextElement(id uint32, op string) *element {
	if s.elementIt >= len(s.elements) {
		panic(fmt.Sprintf("ui: %s: placement pass declared more elements than measurement (callback must describe the same tree in both passes)", op))
	}
	el := &s.elements[s.elementIt]
	s.elementIt++
	if el.id != id {
		panic(fmt.Sprintf("ui: %s: element %#x does not match the measurement record %#x at index %d (callback must describe the same tree in both passes)",
			op, id, el.id, s.elementIt-1))
	}
	return el
}

// markInteractive records an interactive declaration during the measurement
// pass: it feeds focus navigation order, frame-presence tracking, and the
// modal barrier ordinal space.
func (s *Session) markInteractive(id uint32, elementIdx int) {
	s.elements[elementIdx].interactive = true
	s.interactive = append(s.interactive, id)
	s.frameIDs[id] = struct{}{}
	s.interactiveSeq++
}

func (s *Session) currentClip() rect {
	if len(s.clips) == 0 {
		return rect{Point{-1 << 30, -1 << 30}, Point{1 << 31, 1 << 31}}
	}
	return s.clips[len(s.clips)-1]
}

func (s *Session) pushClip(r rect) {
	r = s.currentClip().intersect(r)
	s.clips = append(s.clips, r)
	s.renderer.PushClip(r.pos, r.size)
}

func (s *Session) popClip() {
	s.clips = s.clips[:len(s.clips)-1]
	s.renderer.PopClip()
}

// hashID derives the stable 32-bit key for a caller-supplied identifier.
// Zero is reserved for "no element".
func hashID(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	v := h.Sum32()
	if v == 0 {
		v = 1
	}
	return v
}

// SetScrollSpeed sets the multipliers applied to drag, mouse-wheel and
// gamepad scroll input. Defaults are DefaultScrollSpeed*.
func (c *Context) SetScrollSpeed(drag, wheel, gamepad float32) {
	c.s.speedDrag, c.s.speedWheel, c.s.speedGamepad = drag, wheel, gamepad
}

// SetDragStartThreshold sets how far, in physical pixels, a pointer must
// move from its press position before a drag starts.
func (c *Context) SetDragStartThreshold(px int) {
	if px < 0 {
		px = 0
	}
	c.s.dragThreshold = px
}

// SetTextColor sets the color used by subsequent Label and Edit calls.
func (c *Context) SetTextColor(col colors.Color) { c.s.textColor = col }

// SetTextFont selects the font face used by subsequent Label and Edit calls.
func (c *Context) SetTextFont(name string) { c.s.textFont = name }

// SetTextLocale sets the language/country tag (e.g. "en-US", "ar-EG") used
// for shaping and layout direction of subsequent labels.
func (c *Context) SetTextLocale(locale string) { c.s.textLocale = locale }

// SetTextDirection overrides the layout direction derived from the locale.
func (c *Context) SetTextDirection(dir TextDirection) { c.s.textDir = dir }

func (s *Session) textStyle() TextStyle {
	return TextStyle{Color: s.textColor, Font: s.textFont, Locale: s.textLocale, Direction: s.textDir}
}

// Texture resolves a named texture through the frame's asset provider.
func (c *Context) Texture(name string) (Texture, bool) { return c.assets.Texture(name) }

// IsLastEventPointerType reports whether the last interaction came from a
// touch screen or mouse rather than keyboard/gamepad navigation.
func (c *Context) IsLastEventPointerType() bool { return c.s.lastEventPointer }
