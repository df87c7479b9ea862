package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Package-level reusable buffer (single-threaded usage).
// Initialize once with Init(capacity). Reset() every frame.
var buf []byte

// Init sets up the global scratch buffer. Call once at startup.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1024
	}
	buf = make([]byte, 0, capacity)
}

// Reset clears the buffer length without freeing memory.
// Call this once per frame, before building any UI strings.
func Reset() { buf = buf[:0] }

// Cap returns the current capacity. Useful for tuning.
func Cap() int { return cap(buf) }

// Len returns the current length.
func Len() int { return len(buf) }

// GrowTo increases capacity (and copies current contents) if needed.
// Prefer calling this during load, not every frame.
func GrowTo(minCapacity int) {
	if minCapacity <= cap(buf) {
		return
	}
	nb := make([]byte, len(buf), minCapacity)
	copy(nb, buf)
	buf = nb
}

// ----- Chainable builder over the global buffer -----

type Builder struct{}

// F returns a builder bound to the global buffer.
func F() Builder { return Builder{} }

// Mark returns a bookmark to later slice the output.
// Example: m := scratch.Mark(); ...; s := scratch.StringViewFrom(m)
func Mark() int { return len(buf) }

// BytesFrom returns the bytes produced since mark.
func BytesFrom(mark int) []byte { return buf[mark:] }

// StringFrom copies the range since mark into a new string.
func StringFrom(mark int) string { return string(buf[mark:]) }

// StringViewFrom returns a zero-copy string view into the buffer since
// mark. Valid only until the next append or Reset().
func StringViewFrom(mark int) string {
	b := buf[mark:]
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// S appends a string.
func (Builder) S(s string) Builder {
	buf = append(buf, s...)
	return Builder{}
}

// B appends raw bytes.
func (Builder) B(b []byte) Builder {
	buf = append(buf, b...)
	return Builder{}
}

// C appends a single byte.
func (Builder) C(c byte) Builder {
	buf = append(buf, c)
	return Builder{}
}

// R appends a rune.
func (Builder) R(r rune) Builder {
	buf = utf8.AppendRune(buf, r)
	return Builder{}
}

// I appends a base-10 integer.
func (Builder) I(v int) Builder {
	buf = strconv.AppendInt(buf, int64(v), 10)
	return Builder{}
}

// U appends an unsigned base-10 integer.
func (Builder) U(v uint) Builder {
	buf = strconv.AppendUint(buf, uint64(v), 10)
	return Builder{}
}

// F64 appends a float with the given number of digits after the decimal.
func (Builder) F64(v float64, prec int) Builder {
	buf = strconv.AppendFloat(buf, v, 'f', prec, 64)
	return Builder{}
}

// Bool appends "true"/"false".
func (Builder) Bool(v bool) Builder {
	buf = strconv.AppendBool(buf, v)
	return Builder{}
}
