package ui

import "testing"

// scrollColumn declares a 100x100 scrolling window over a 300px tall column.
func scrollColumn(ctx *Context, offset *Vec2, pos *[3]Point) {
	ctx.StartGroup(LayoutVerticalLeft, 0, "scroll")
	ctx.StartScroll(Vec2{100, 100}, offset)
	for i := range pos {
		i := i
		ctx.CustomElement(Vec2{100, 100}, []string{"a", "b", "c"}[i], func(p, _ Point) {
			pos[i] = p
		})
	}
	ctx.EndScroll()
	ctx.EndGroup()
}

func TestScrollClampsOffset(t *testing.T) {
	f := newFixture()
	var pos [3]Point

	offset := Vec2{0, 5000}
	f.frame(func(ctx *Context) { scrollColumn(ctx, &offset, &pos) })
	// Content is 300 tall in a 100 window.
	if offset != (Vec2{0, 200}) {
		t.Fatalf("offset = %v, want {0 200}", offset)
	}

	offset = Vec2{-50, -50}
	f.frame(func(ctx *Context) { scrollColumn(ctx, &offset, &pos) })
	if offset != (Vec2{0, 0}) {
		t.Fatalf("offset = %v, want {0 0}", offset)
	}
}

func TestScrollOffsetShiftsChildren(t *testing.T) {
	f := newFixture()
	var pos [3]Point
	offset := Vec2{0, 150}
	f.frame(func(ctx *Context) { scrollColumn(ctx, &offset, &pos) })
	want := [3]Point{{0, -150}, {0, -50}, {0, 50}}
	if pos != want {
		t.Fatalf("children at %v, want %v", pos, want)
	}
}

func TestScrollWindowSizeAndClip(t *testing.T) {
	f := newFixture()
	var pos [3]Point
	var size Vec2
	offset := Vec2{}
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutVerticalLeft, 0, "scroll")
		ctx.StartScroll(Vec2{100, 100}, &offset)
		for i := range pos {
			ctx.CustomElement(Vec2{100, 100}, []string{"a", "b", "c"}[i], nil)
		}
		ctx.EndScroll()
		size = ctx.GroupSize()
		ctx.EndGroup()
	})
	// The group occupies the window size, not the content size.
	if size != (Vec2{100, 100}) {
		t.Fatalf("group size = %v, want {100 100}", size)
	}
	if len(f.r.clipLog) != 1 || f.r.clipLog[0] != (rect{Point{0, 0}, Point{100, 100}}) {
		t.Fatalf("clip = %v, want window bounds", f.r.clipLog)
	}
	if f.r.clipDepth != 0 {
		t.Fatalf("clip stack not balanced: depth %d", f.r.clipDepth)
	}
}

func TestScrollIdempotentWithoutInput(t *testing.T) {
	f := newFixture()
	var pos [3]Point
	offset := Vec2{0, 80}
	for i := 0; i < 3; i++ {
		f.frame(func(ctx *Context) { scrollColumn(ctx, &offset, &pos) })
		if offset != (Vec2{0, 80}) {
			t.Fatalf("frame %d moved the offset to %v", i, offset)
		}
	}
}

func TestWheelScroll(t *testing.T) {
	f := newFixture()
	var pos [3]Point
	offset := Vec2{}

	// Wheel only applies while hovering the window.
	f.in.move(Point{50, 50})
	f.in.wheel = Vec2{0, -1}
	f.frame(func(ctx *Context) { scrollColumn(ctx, &offset, &pos) })
	if offset != (Vec2{0, DefaultScrollSpeedWheel}) {
		t.Fatalf("offset = %v, want {0 %v}", offset, DefaultScrollSpeedWheel)
	}

	f.in.move(Point{500, 500})
	f.in.wheel = Vec2{0, -1}
	f.frame(func(ctx *Context) { scrollColumn(ctx, &offset, &pos) })
	if offset != (Vec2{0, DefaultScrollSpeedWheel}) {
		t.Fatalf("wheel applied without hover: %v", offset)
	}
}

func TestDragScroll(t *testing.T) {
	f := newFixture()
	var pos [3]Point
	offset := Vec2{}
	run := func() {
		f.frame(func(ctx *Context) { scrollColumn(ctx, &offset, &pos) })
	}

	f.in.press(Point{50, 50})
	run()
	if offset != (Vec2{}) {
		t.Fatalf("offset moved before the drag threshold: %v", offset)
	}

	// 20px upward pull scrolls the content down at the drag speed.
	f.in.pointers[0].Pos = Point{50, 30}
	run()
	want := Vec2{0, 20 * DefaultScrollSpeedDrag}
	if offset != want {
		t.Fatalf("offset = %v, want %v", offset, want)
	}

	f.in.release(Point{50, 30})
	run()
	if f.s.capturedID != 0 {
		t.Fatalf("scroll kept its capture after release: %#x", f.s.capturedID)
	}
}

func TestGamepadScrollWhileFocused(t *testing.T) {
	f := newFixture()
	var pos [3]Point
	offset := Vec2{}
	run := func() {
		f.frame(func(ctx *Context) { scrollColumn(ctx, &offset, &pos) })
	}

	// Axis input is ignored until the scroll region holds focus.
	f.in.scrollAxis = Vec2{0, 1}
	run()
	if offset != (Vec2{}) {
		t.Fatalf("axis applied without focus: %v", offset)
	}

	f.in.focusDir = 1
	run()
	f.in.scrollAxis = Vec2{0, 1}
	run()
	want := Vec2{0, DefaultScrollSpeedGamepad}
	if offset != want {
		t.Fatalf("offset = %v, want %v", offset, want)
	}
}
