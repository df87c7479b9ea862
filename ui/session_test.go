package ui

import "testing"

func TestRunIsNotReentrant(t *testing.T) {
	f := newFixture()
	expectPanic(t, "reentrant Run", func() {
		f.frame(func(ctx *Context) {
			f.s.Run(f.assets, f.text, f.in, func(*Context) {})
		})
	})
}

func TestElementOutsideGroupPanics(t *testing.T) {
	f := newFixture()
	expectPanic(t, "element without a group", func() {
		f.frame(func(ctx *Context) {
			ctx.CustomElement(Vec2{10, 10}, "stray", nil)
		})
	})
}

func TestPersistentStatePrunesStaleEntries(t *testing.T) {
	f := newFixture()
	text := "x"
	declare := true
	run := func() {
		f.frame(func(ctx *Context) {
			ctx.StartGroup(LayoutHorizontalTop, 0, "form")
			if declare {
				ctx.Edit(20, Vec2{100, 0}, "name", &text)
			} else {
				ctx.CustomElement(Vec2{100, 20}, "filler", nil)
			}
			ctx.EndGroup()
		})
	}

	f.in.press(Point{10, 10})
	run()
	f.in.release(Point{10, 10})
	run()
	if len(f.s.states) == 0 {
		t.Fatal("edit box created no persistent state")
	}

	declare = false
	for i := 0; i <= staleGenerations+1; i++ {
		run()
	}
	if len(f.s.states) != 0 {
		t.Fatalf("stale state survived pruning: %d entries", len(f.s.states))
	}
}

func TestCaptureReleasedWhenHolderDisappears(t *testing.T) {
	f := newFixture()
	declare := true
	run := func() {
		f.frame(func(ctx *Context) {
			if !declare {
				return
			}
			ctx.StartGroup(LayoutHorizontalTop, 0, "pad")
			if ctx.CheckDragEvent().Has(EventStartDrag) {
				ctx.CapturePointer("pad")
			}
			ctx.CustomElement(Vec2{100, 100}, "pad#body", nil)
			ctx.EndGroup()
		})
	}

	f.in.press(Point{50, 50})
	run()
	f.in.pointers[0].Pos = Point{80, 50}
	run()
	if f.s.capturedID == 0 {
		t.Fatal("setup: drag did not capture")
	}

	declare = false
	run()
	if f.s.capturedID != 0 {
		t.Fatalf("capture outlived its element: %#x", f.s.capturedID)
	}
	if f.s.pointers[0].downID != 0 && !f.in.pointers[0].IsDown {
		t.Fatal("press record outlived its element")
	}
}

func TestCapturedPointerIndex(t *testing.T) {
	f := newFixture()
	var idx int
	run := func() {
		f.frame(func(ctx *Context) {
			ctx.StartGroup(LayoutHorizontalTop, 0, "pad")
			if ctx.CheckDragEvent().Has(EventStartDrag) {
				ctx.CapturePointer("pad")
			}
			idx = ctx.CapturedPointerIndex()
			ctx.CustomElement(Vec2{100, 100}, "pad#body", nil)
			ctx.EndGroup()
		})
	}

	run()
	if idx != -1 {
		t.Fatalf("idle index = %d, want -1", idx)
	}
	f.in.press(Point{50, 50})
	run()
	f.in.pointers[0].Pos = Point{90, 50}
	run()
	if idx != 0 {
		t.Fatalf("dragging index = %d, want 0", idx)
	}
}

func TestEventStringAndHas(t *testing.T) {
	ev := EventWentDown | EventHover
	if !ev.Has(EventWentDown) || ev.Has(EventWentUp) {
		t.Fatalf("Has misreported flags of %v", ev)
	}
	if got := ev.String(); got != "went-down|hover" {
		t.Fatalf("String() = %q", got)
	}
	if got := EventNone.String(); got != "none" {
		t.Fatalf("String() = %q", got)
	}
}

func TestTextStyleFollowsSetters(t *testing.T) {
	f := newFixture()
	var style TextStyle
	probe := &styleProbe{inner: f.text, out: &style}
	f.s.Run(f.assets, probe, f.in, func(ctx *Context) {
		ctx.StartGroup(LayoutVerticalLeft, 0, "col")
		ctx.SetTextFont("mono")
		ctx.SetTextLocale("ar-EG")
		ctx.SetTextDirection(TextDirectionRTL)
		ctx.Label("مرحبا", 20)
		ctx.EndGroup()
	})
	if style.Font != "mono" || style.Locale != "ar-EG" || style.Direction != TextDirectionRTL {
		t.Fatalf("style = %+v", style)
	}
}

// styleProbe records the style of the last measured text.
type styleProbe struct {
	inner *fakeText
	out   *TextStyle
}

func (p *styleProbe) Measure(text string, h, w int, style TextStyle) Point {
	*p.out = style
	return p.inner.Measure(text, h, w, style)
}

func (p *styleProbe) Draw(r Renderer, text string, pos Point, h, w int, style TextStyle) {
	p.inner.Draw(r, text, pos, h, w, style)
}
