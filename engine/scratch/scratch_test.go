package scratch

import "testing"

func TestBuilderComposesWithoutAllocatingStrings(t *testing.T) {
	Init(64)
	Reset()

	m := Mark()
	F().S("hp ").I(42).C('/').I(100).S(" ratio ").F64(0.425, 2).S(" alive ").Bool(true)
	got := StringFrom(m)
	want := "hp 42/100 ratio 0.42 alive true"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarksSliceIndependently(t *testing.T) {
	Init(64)
	Reset()

	F().S("first")
	m := Mark()
	F().S(" second")
	if s := StringViewFrom(m); s != " second" {
		t.Errorf("got %q", s)
	}
	if s := StringFrom(0); s != "first second" {
		t.Errorf("got %q", s)
	}
}

func TestResetKeepsCapacity(t *testing.T) {
	Init(16)
	F().S("0123456789abcdef_overflow")
	c := Cap()
	Reset()
	if Len() != 0 {
		t.Errorf("len = %d after Reset", Len())
	}
	if Cap() != c {
		t.Errorf("cap changed across Reset: %d -> %d", c, Cap())
	}
}

func TestRuneAppendHandlesMultibyte(t *testing.T) {
	Init(16)
	Reset()
	m := Mark()
	F().R('a').R('é').R('世')
	if s := StringFrom(m); s != "aé世" {
		t.Errorf("got %q", s)
	}
}
