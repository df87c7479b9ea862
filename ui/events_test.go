package ui

import "testing"

// The button helper declares a 100x100 group at the top-left of the canvas,
// so pointer coordinates map directly onto it.

func TestClickLifecycle(t *testing.T) {
	f := newFixture()
	size := Vec2{100, 100}
	run := func() Event {
		var ev Event
		f.frame(func(ctx *Context) { ev = button(ctx, "btn", size) })
		return ev
	}

	f.in.move(Point{10, 10})
	if ev := run(); ev != EventHover {
		t.Fatalf("resting pointer: %v, want hover", ev)
	}

	f.in.press(Point{10, 10})
	if ev := run(); ev != EventWentDown {
		t.Fatalf("press frame: %v, want went-down", ev)
	}

	if ev := run(); ev != EventIsDown {
		t.Fatalf("hold frame: %v, want is-down", ev)
	}

	f.in.release(Point{10, 10})
	if ev := run(); ev != EventWentUp {
		t.Fatalf("release frame: %v, want went-up", ev)
	}

	if ev := run(); ev != EventHover {
		t.Fatalf("after release: %v, want hover", ev)
	}
}

func TestClickWithinOneFrame(t *testing.T) {
	f := newFixture()
	f.in.pointers[0] = Pointer{Pos: Point{10, 10}, WentDown: true, WentUp: true}
	var ev Event
	f.frame(func(ctx *Context) { ev = button(ctx, "btn", Vec2{100, 100}) })
	if !ev.Has(EventWentDown | EventWentUp) {
		t.Fatalf("sub-frame click: %v, want went-down|went-up", ev)
	}
}

func TestReleaseOutsideDropsWentUp(t *testing.T) {
	f := newFixture()
	var ev Event
	run := func() {
		f.frame(func(ctx *Context) { ev = button(ctx, "btn", Vec2{100, 100}) })
	}

	f.in.press(Point{50, 50})
	run()
	// Move outside the bounds but under the drag threshold, then release.
	f.in.pointers[0].Pos = Point{103, 50}
	f.in.pointers[0].IsDown = true
	run()
	f.in.release(Point{103, 50})
	run()
	if ev.Has(EventWentUp) || ev.Has(EventEndDrag) {
		t.Fatalf("release outside: %v, want neither went-up nor end-drag", ev)
	}
}

func TestWentUpOnlyForPressedElement(t *testing.T) {
	f := newFixture()
	var evA, evB Event
	run := func() {
		f.frame(func(ctx *Context) {
			ctx.SetDragStartThreshold(10000)
			ctx.StartGroup(LayoutHorizontalTop, 0, "row")
			ctx.StartGroup(LayoutHorizontalTop, 0, "a")
			evA = ctx.CheckEvent()
			ctx.CustomElement(Vec2{100, 100}, "a#body", nil)
			ctx.EndGroup()
			ctx.StartGroup(LayoutHorizontalTop, 0, "b")
			evB = ctx.CheckEvent()
			ctx.CustomElement(Vec2{100, 100}, "b#body", nil)
			ctx.EndGroup()
			ctx.EndGroup()
		})
	}

	f.in.press(Point{10, 10}) // over a
	run()
	if !evA.Has(EventWentDown) || evB != EventNone {
		t.Fatalf("press over a: a=%v b=%v", evA, evB)
	}
	f.in.release(Point{150, 10}) // over b
	run()
	if evA.Has(EventWentUp) {
		t.Fatalf("a released out of bounds, got %v", evA)
	}
	if evB != EventNone {
		t.Fatalf("b never received the press, got %v", evB)
	}
}

func TestDragSequence(t *testing.T) {
	f := newFixture()
	var ev Event
	run := func() {
		f.frame(func(ctx *Context) { ev = button(ctx, "btn", Vec2{100, 100}) })
	}

	f.in.press(Point{10, 10})
	run()
	if ev != EventWentDown {
		t.Fatalf("press: %v", ev)
	}

	// Move past the 8px default threshold while held.
	f.in.pointers[0].Pos = Point{30, 10}
	run()
	if !ev.Has(EventStartDrag|EventIsDragging) || !ev.Has(EventIsDown) {
		t.Fatalf("threshold crossed: %v, want start-drag|is-dragging|is-down", ev)
	}

	f.in.pointers[0].Pos = Point{40, 10}
	run()
	if ev.Has(EventStartDrag) || !ev.Has(EventIsDragging) {
		t.Fatalf("drag continues: %v, want is-dragging without start-drag", ev)
	}

	f.in.release(Point{40, 10})
	run()
	if !ev.Has(EventEndDrag) || ev.Has(EventWentUp) {
		t.Fatalf("drag release: %v, want end-drag without went-up", ev)
	}
}

func TestDragBelowThresholdNeverStarts(t *testing.T) {
	f := newFixture()
	var ev Event
	run := func() {
		f.frame(func(ctx *Context) { ev = button(ctx, "btn", Vec2{100, 100}) })
	}

	f.in.press(Point{10, 10})
	run()
	f.in.pointers[0].Pos = Point{14, 13} // 5px of motion
	run()
	if ev.Has(EventStartDrag) || ev.Has(EventIsDragging) {
		t.Fatalf("below threshold: %v", ev)
	}
}

func TestCheckDragEventMasksClickFlags(t *testing.T) {
	f := newFixture()
	var ev Event
	f.in.press(Point{10, 10})
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutHorizontalTop, 0, "pad")
		ev = ctx.CheckDragEvent()
		ctx.CustomElement(Vec2{100, 100}, "pad#body", nil)
		ctx.EndGroup()
	})
	if ev != EventNone {
		t.Fatalf("drag-only press frame: %v, want none", ev)
	}
}

func TestTouchPointerNeverHovers(t *testing.T) {
	f := newFixture()
	f.in.pointers[0] = Pointer{Pos: Point{10, 10}, Touch: true}
	var ev Event
	f.frame(func(ctx *Context) { ev = button(ctx, "btn", Vec2{100, 100}) })
	if ev.Has(EventHover) {
		t.Fatalf("touch pointer hovered: %v", ev)
	}
}

func TestPointerCapture(t *testing.T) {
	f := newFixture()
	var evA, evB Event
	run := func() {
		f.frame(func(ctx *Context) {
			ctx.StartGroup(LayoutHorizontalTop, 0, "row")
			ctx.StartGroup(LayoutHorizontalTop, 0, "a")
			evA = ctx.CheckDragEvent()
			if evA.Has(EventStartDrag) {
				ctx.CapturePointer("a")
			}
			ctx.CustomElement(Vec2{100, 100}, "a#body", nil)
			ctx.EndGroup()
			ctx.StartGroup(LayoutHorizontalTop, 0, "b")
			evB = ctx.CheckEvent()
			ctx.CustomElement(Vec2{100, 100}, "b#body", nil)
			ctx.EndGroup()
			ctx.EndGroup()
		})
	}

	f.in.press(Point{50, 50})
	run()
	f.in.pointers[0].Pos = Point{70, 50}
	run()
	if !evA.Has(EventStartDrag) {
		t.Fatalf("a: %v, want start-drag", evA)
	}

	// Captured pointer keeps feeding a even over b's bounds.
	f.in.pointers[0].Pos = Point{150, 50}
	run()
	if !evA.Has(EventIsDragging) {
		t.Fatalf("a lost its drag outside bounds: %v", evA)
	}
	if evB != EventNone {
		t.Fatalf("b saw a captured pointer: %v", evB)
	}

	f.in.release(Point{150, 50})
	run()
	if !evA.Has(EventEndDrag) {
		t.Fatalf("a: %v, want end-drag", evA)
	}

	// Capture auto-releases on went-up.
	run()
	if cap := f.s.capturedID; cap != 0 {
		t.Fatalf("capture survived the release: %#x", cap)
	}
}

func TestModalGroupBlocksEarlierElements(t *testing.T) {
	f := newFixture()
	var evUnder, evModal Event
	run := func() {
		f.frame(func(ctx *Context) {
			ctx.StartGroup(LayoutHorizontalTop, 0, "under")
			evUnder = ctx.CheckEvent()
			ctx.CustomElement(Vec2{100, 100}, "under#body", nil)
			ctx.EndGroup()

			ctx.StartGroup(LayoutHorizontalTop, 0, "popup")
			ctx.ModalGroup()
			evModal = ctx.CheckEvent()
			ctx.CustomElement(Vec2{100, 100}, "popup#body", nil)
			ctx.EndGroup()
		})
	}

	// Both groups occupy the same top-left region; the popup wins.
	f.in.press(Point{10, 10})
	run()
	if evUnder != EventNone {
		t.Fatalf("element under modal: %v, want none", evUnder)
	}
	if !evModal.Has(EventWentDown) {
		t.Fatalf("modal: %v, want went-down", evModal)
	}
}

func TestFirstElementClaimsPress(t *testing.T) {
	f := newFixture()
	var evFirst, evSecond Event
	f.in.press(Point{10, 10})
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutOverlay, 0, "stack")
		ctx.StartGroup(LayoutHorizontalTop, 0, "first")
		evFirst = ctx.CheckEvent()
		ctx.CustomElement(Vec2{100, 100}, "x#body", nil)
		ctx.EndGroup()
		ctx.StartGroup(LayoutHorizontalTop, 0, "second")
		evSecond = ctx.CheckEvent()
		ctx.CustomElement(Vec2{100, 100}, "y#body", nil)
		ctx.EndGroup()
		ctx.EndGroup()
	})
	if !evFirst.Has(EventWentDown) || evSecond.Has(EventWentDown) {
		t.Fatalf("overlapping press: first=%v second=%v", evFirst, evSecond)
	}
}

func TestFocusNavigation(t *testing.T) {
	f := newFixture()
	run := func() {
		f.frame(func(ctx *Context) {
			ctx.StartGroup(LayoutVerticalLeft, 0, "col")
			button(ctx, "a", Vec2{50, 20})
			button(ctx, "b", Vec2{50, 20})
			ctx.EndGroup()
		})
	}

	f.in.focusDir = 1
	run()
	if f.s.focusID != hashID("a") {
		t.Fatalf("first advance: focus %#x, want a", f.s.focusID)
	}
	f.in.focusDir = 1
	run()
	if f.s.focusID != hashID("b") {
		t.Fatalf("second advance: focus %#x, want b", f.s.focusID)
	}
	f.in.focusDir = 1
	run()
	if f.s.focusID != hashID("b") {
		t.Fatalf("focus ran past the last element: %#x", f.s.focusID)
	}
	f.in.focusDir = -1
	run()
	if f.s.focusID != hashID("a") {
		t.Fatalf("reverse: focus %#x, want a", f.s.focusID)
	}
}

func TestFocusLostWhenElementAbsent(t *testing.T) {
	f := newFixture()
	declareB := true
	run := func() {
		f.frame(func(ctx *Context) {
			ctx.StartGroup(LayoutVerticalLeft, 0, "col")
			button(ctx, "a", Vec2{50, 20})
			if declareB {
				button(ctx, "b", Vec2{50, 20})
			}
			ctx.EndGroup()
		})
	}

	f.in.focusDir = 1
	run()
	f.in.focusDir = 1
	run()
	if f.s.focusID != hashID("b") {
		t.Fatalf("setup: focus %#x, want b", f.s.focusID)
	}

	declareB = false
	run()
	if f.s.focusID != 0 {
		t.Fatalf("focus survived its element: %#x", f.s.focusID)
	}
}

func TestDefaultFocusReclaims(t *testing.T) {
	f := newFixture()
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutVerticalLeft, 0, "col")
		ctx.StartGroup(LayoutHorizontalTop, 0, "home")
		ctx.CheckEvent()
		ctx.SetDefaultFocus()
		ctx.CustomElement(Vec2{50, 20}, "home#body", nil)
		ctx.EndGroup()
		ctx.EndGroup()
	})
	if f.s.focusID != hashID("home") {
		t.Fatalf("default focus not claimed: %#x", f.s.focusID)
	}
}

func TestLastEventPointerType(t *testing.T) {
	f := newFixture()
	run := func() {
		f.frame(func(ctx *Context) { button(ctx, "btn", Vec2{100, 100}) })
	}

	f.in.press(Point{10, 10})
	run()
	if !f.s.lastEventPointer {
		t.Fatal("press did not mark pointer interaction")
	}
	f.in.release(Point{10, 10})
	run()
	f.in.focusDir = 1
	run()
	if f.s.lastEventPointer {
		t.Fatal("focus navigation did not mark non-pointer interaction")
	}
}
