package ui

import "testing"

func TestVirtualScaleBindsSmallerDimension(t *testing.T) {
	cases := []struct {
		name   string
		canvas Point
		res    float32
		scale  float32
	}{
		{"square", Point{1000, 1000}, 1000, 1},
		{"landscape", Point{2000, 1000}, 1000, 1},
		{"portrait", Point{1000, 2000}, 1000, 1},
		{"hidpi", Point{2000, 2000}, 1000, 2},
		{"custom resolution", Point{1000, 1000}, 500, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixtureCanvas(tc.canvas)
			var got float32
			f.frame(func(ctx *Context) {
				ctx.SetVirtualResolution(tc.res)
				got = ctx.Scale()
			})
			if got != tc.scale {
				t.Fatalf("scale = %v, want %v", got, tc.scale)
			}
		})
	}
}

func TestVirtualResolutionCoversCanvas(t *testing.T) {
	f := newFixtureCanvas(Point{2000, 1000})
	var res Vec2
	f.frame(func(ctx *Context) { res = ctx.VirtualResolution() })
	// The longer axis extends past the configured 1000.
	if res != (Vec2{2000, 1000}) {
		t.Fatalf("virtual resolution = %v, want {2000 1000}", res)
	}
}

func TestPhysicalRoundTrip(t *testing.T) {
	f := newFixtureCanvas(Point{777, 1234})
	f.frame(func(ctx *Context) {
		for _, p := range []Point{{0, 0}, {1, 1}, {123, 456}, {776, 1233}} {
			back := ctx.VirtualToPhysical(ctx.PhysicalToVirtual(p))
			if back != p {
				t.Errorf("round trip of %v gave %v", p, back)
			}
		}
	})
}

func TestLayoutScalesWithCanvas(t *testing.T) {
	f := newFixtureCanvas(Point{500, 500})
	var pos Point
	var size Point
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutHorizontalTop, 10, "row")
		ctx.CustomElement(Vec2{100, 100}, "a", nil)
		ctx.CustomElement(Vec2{100, 100}, "b", func(p, sz Point) { pos, size = p, sz })
		ctx.EndGroup()
	})
	// Half-resolution canvas halves every physical extent.
	if size != (Point{50, 50}) || pos != (Point{55, 0}) {
		t.Fatalf("pos %v size %v, want {55 0} {50 50}", pos, size)
	}
}

func TestSetVirtualResolutionIgnoresInvalid(t *testing.T) {
	f := newFixture()
	var scale float32
	f.frame(func(ctx *Context) {
		ctx.SetVirtualResolution(0)
		ctx.SetVirtualResolution(-10)
		scale = ctx.Scale()
	})
	if scale != 1 {
		t.Fatalf("scale = %v, want 1", scale)
	}
}

func TestDefaultProjectionInstalled(t *testing.T) {
	f := newFixture()
	f.frame(func(ctx *Context) {})
	if len(f.r.projections) != 1 || f.r.projections[0] != (Point{1000, 1000}) {
		t.Fatalf("projections = %v, want one canvas-sized projection", f.r.projections)
	}
}

func TestUseExistingProjection(t *testing.T) {
	f := newFixture()
	var size Vec2
	f.frame(func(ctx *Context) {
		ctx.UseExistingProjection(Point{400, 400})
		ctx.StartGroup(LayoutHorizontalTop, 0, "row")
		ctx.CustomElement(Vec2{100, 100}, "a", nil)
		size = ctx.GroupSize()
		ctx.EndGroup()
	})
	if len(f.r.projections) != 0 {
		t.Fatalf("engine installed a projection despite the opt-out: %v", f.r.projections)
	}
	// Layout runs against the caller's 400px canvas: scale 0.4.
	if size != (Vec2{100, 100}) {
		t.Fatalf("size = %v, want {100 100}", size)
	}
}
