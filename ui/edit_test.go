package ui

import "testing"

func editFrame(f *fixture, text *string) bool {
	var editing bool
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutHorizontalTop, 0, "form")
		editing = ctx.Edit(20, Vec2{200, 0}, "name", text)
		ctx.EndGroup()
	})
	return editing
}

func TestEditFocusOnClick(t *testing.T) {
	f := newFixture()
	text := "hi"

	if editFrame(f, &text) {
		t.Fatal("edit box focused without a click")
	}

	f.in.press(Point{10, 10})
	if !editFrame(f, &text) {
		t.Fatal("click did not focus the edit box")
	}
	f.in.release(Point{10, 10})
	editFrame(f, &text)

	// Typed runes insert at the caret, which the click put at the end.
	f.in.text = []rune("ya")
	editFrame(f, &text)
	if text != "hiya" {
		t.Fatalf("text = %q, want %q", text, "hiya")
	}
}

func TestEditKeys(t *testing.T) {
	f := newFixture()
	text := "abcd"
	f.in.press(Point{10, 10})
	editFrame(f, &text)
	f.in.release(Point{10, 10})
	editFrame(f, &text)

	steps := []struct {
		keys  []EditKey
		runes []rune
		want  string
	}{
		{keys: []EditKey{EditKeyBackspace}, want: "abc"},
		{keys: []EditKey{EditKeyHome, EditKeyDelete}, want: "bc"},
		{keys: []EditKey{EditKeyRight}, want: "bc"},
		{runes: []rune("x"), want: "bxc"},
		{keys: []EditKey{EditKeyEnd}, want: "bxc"},
		{runes: []rune("!"), want: "bxc!"},
		{keys: []EditKey{EditKeyLeft, EditKeyLeft, EditKeyBackspace}, want: "bc!"},
	}
	for i, st := range steps {
		f.in.keys = st.keys
		f.in.text = st.runes
		editFrame(f, &text)
		if text != st.want {
			t.Fatalf("step %d: text = %q, want %q", i, text, st.want)
		}
	}
}

func TestEditKeyOrderWithinFrame(t *testing.T) {
	// Runes are applied before editing keys within a frame.
	f := newFixture()
	text := ""
	f.in.press(Point{10, 10})
	editFrame(f, &text)
	f.in.release(Point{10, 10})
	editFrame(f, &text)

	f.in.text = []rune("ab")
	f.in.keys = []EditKey{EditKeyBackspace}
	editFrame(f, &text)
	if text != "a" {
		t.Fatalf("text = %q, want %q", text, "a")
	}
}

func TestEditReturnReleasesFocus(t *testing.T) {
	f := newFixture()
	text := ""
	f.in.press(Point{10, 10})
	editFrame(f, &text)
	f.in.release(Point{10, 10})
	editFrame(f, &text)

	f.in.keys = []EditKey{EditKeyReturn}
	editFrame(f, &text)
	if editFrame(f, &text) {
		t.Fatal("edit box kept focus after return")
	}
}

func TestEditIgnoresInputWithoutFocus(t *testing.T) {
	f := newFixture()
	text := "keep"
	f.in.text = []rune("nope")
	editFrame(f, &text)
	if text != "keep" {
		t.Fatalf("unfocused edit box consumed input: %q", text)
	}
}

func TestEditAutoWidth(t *testing.T) {
	f := newFixture()
	text := ""
	var size Vec2
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutHorizontalTop, 0, "form")
		ctx.Edit(20, Vec2{}, "name", &text)
		size = ctx.GroupSize()
		ctx.EndGroup()
	})
	// Empty content still reserves half the line height.
	if size != (Vec2{10, 20}) {
		t.Fatalf("size = %v, want {10 20}", size)
	}
}

func TestLabelMeasuresThroughProvider(t *testing.T) {
	f := newFixture()
	var size Vec2
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutVerticalLeft, 0, "col")
		ctx.Label("hello", 20)
		size = ctx.GroupSize()
		ctx.EndGroup()
	})
	// The fake provider is a monospace font with heightPx/2 glyphs.
	if size != (Vec2{50, 20}) {
		t.Fatalf("size = %v, want {50 20}", size)
	}
	if len(f.text.drawn) != 1 || f.text.drawn[0] != "hello" {
		t.Fatalf("drawn = %v, want [hello]", f.text.drawn)
	}
}

func TestLabelWrappedCapsHeight(t *testing.T) {
	f := newFixture()
	var size Vec2
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutVerticalLeft, 0, "col")
		// 12 glyphs at width 10 wrap to 3 lines of 4 in a 40-wide box,
		// capped to two lines.
		ctx.LabelWrapped("abcdefghijkl", 20, Vec2{40, 40})
		size = ctx.GroupSize()
		ctx.EndGroup()
	})
	if size != (Vec2{40, 40}) {
		t.Fatalf("size = %v, want {40 40}", size)
	}
}

func TestImageSizing(t *testing.T) {
	f := newFixture()
	tex := &fakeTexture{w: 64, h: 32, ready: true}
	var size Vec2
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutVerticalLeft, 0, "col")
		ctx.Image(tex, 50)
		size = ctx.GroupSize()
		ctx.EndGroup()
	})
	// Width follows the 2:1 texture aspect.
	if size != (Vec2{100, 50}) {
		t.Fatalf("size = %v, want {100 50}", size)
	}
	if len(f.r.calls) != 1 || f.r.calls[0].kind != "texture" {
		t.Fatalf("draw calls = %v, want one texture draw", f.r.calls)
	}
}

func TestImageNotReadyHasZeroSize(t *testing.T) {
	f := newFixture()
	tex := &fakeTexture{w: 64, h: 32, ready: false}
	var size Vec2
	f.frame(func(ctx *Context) {
		ctx.StartGroup(LayoutVerticalLeft, 0, "col")
		ctx.Image(tex, 50)
		size = ctx.GroupSize()
		ctx.EndGroup()
	})
	if size != (Vec2{0, 0}) {
		t.Fatalf("size = %v, want {0 0}", size)
	}
	if len(f.r.calls) != 0 {
		t.Fatalf("pending texture was drawn: %v", f.r.calls)
	}
}
