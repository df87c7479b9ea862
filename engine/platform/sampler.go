package platform

import (
	"github.com/quiltui/quilt/engine/core"
	"github.com/quiltui/quilt/ui"
)

// Sampler aggregates core events into the per-frame snapshot the interface
// session samples. Feed it every event, then call EndFrame once per frame
// after the session ran.
//
// The mouse is exposed as a single pointer. Tab and Shift+Tab drive focus
// navigation; held arrow keys double as the scroll axis for the focused
// region.
type Sampler struct {
	pointer  [1]ui.Pointer
	wheel    ui.Vec2
	focusDir int
	runes    []rune
	keys     []ui.EditKey

	arrowLeft, arrowRight bool
	arrowUp, arrowDown    bool
}

func NewSampler() *Sampler { return &Sampler{} }

// HandleEvent folds one event into the frame snapshot. It never consumes
// the event (always returns false) so layers below still see it.
func (s *Sampler) HandleEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventMouseMove:
		s.pointer[0].Pos = ui.Point{X: int(e.X), Y: int(e.Y)}
	case core.EventMouseButton:
		if e.Button != core.MouseLeft {
			break
		}
		if e.Down {
			s.pointer[0].WentDown = true
			s.pointer[0].IsDown = true
		} else {
			s.pointer[0].WentUp = true
			s.pointer[0].IsDown = false
		}
	case core.EventScroll:
		s.wheel.X += float32(e.Xoff)
		s.wheel.Y += float32(e.Yoff)
	case core.EventChar:
		s.runes = append(s.runes, e.Char)
	case core.EventKey:
		s.handleKey(e)
	}
	return false
}

func (s *Sampler) handleKey(e core.EventKey) {
	switch e.Key {
	case core.KeyLeft:
		s.arrowLeft = e.Down
	case core.KeyRight:
		s.arrowRight = e.Down
	case core.KeyUp:
		s.arrowUp = e.Down
	case core.KeyDown:
		s.arrowDown = e.Down
	}
	if !e.Down {
		return
	}
	switch e.Key {
	case core.KeyTab:
		if e.Mods&core.ModShift != 0 {
			s.focusDir--
		} else {
			s.focusDir++
		}
	case core.KeyBackspace:
		s.keys = append(s.keys, ui.EditKeyBackspace)
	case core.KeyDelete:
		s.keys = append(s.keys, ui.EditKeyDelete)
	case core.KeyLeft:
		s.keys = append(s.keys, ui.EditKeyLeft)
	case core.KeyRight:
		s.keys = append(s.keys, ui.EditKeyRight)
	case core.KeyHome:
		s.keys = append(s.keys, ui.EditKeyHome)
	case core.KeyEnd:
		s.keys = append(s.keys, ui.EditKeyEnd)
	case core.KeyEnter:
		s.keys = append(s.keys, ui.EditKeyReturn)
	}
}

// EndFrame clears the edge-triggered state once the session consumed it.
func (s *Sampler) EndFrame() {
	s.pointer[0].WentDown = false
	s.pointer[0].WentUp = false
	s.wheel = ui.Vec2{}
	s.focusDir = 0
	s.runes = s.runes[:0]
	s.keys = s.keys[:0]
}

// --- ui.InputSampler ---

var _ ui.InputSampler = (*Sampler)(nil)

func (s *Sampler) Pointers() []ui.Pointer { return s.pointer[:] }
func (s *Sampler) WheelDelta() ui.Vec2    { return s.wheel }
func (s *Sampler) FocusDirection() int    { return s.focusDir }

func (s *Sampler) ScrollAxis() ui.Vec2 {
	var a ui.Vec2
	if s.arrowLeft {
		a.X--
	}
	if s.arrowRight {
		a.X++
	}
	if s.arrowUp {
		a.Y--
	}
	if s.arrowDown {
		a.Y++
	}
	return a
}

func (s *Sampler) TextInput() []rune      { return s.runes }
func (s *Sampler) EditKeys() []ui.EditKey { return s.keys }
