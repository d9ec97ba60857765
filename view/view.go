// Package view provides an immutable, read-only byte container for use with
// buffed cursors. A View is backed by either a byte slice or a string; it
// implements the read capability only, so writes through a cursor over a
// View always fail.
package view

// Of returns a View holding a copy of p.
// Copying is what makes the immutability guarantee hold; the caller keeps p.
func Of(p []byte) View {
	b := make([]byte, len(p))
	copy(b, p)
	return View{b: b}
}

// OfString returns a View of s. No copy is made; strings are already
// immutable.
func OfString(s string) View {
	return View{s: s}
}

// View is an immutable view of bytes. The zero value is an empty view.
// Views are values; they may be copied freely and read concurrently.
type View struct {
	b []byte
	s string
}

// Len returns the view's length in bytes.
func (v View) Len() int {
	if v.b != nil {
		return len(v.b)
	}
	return len(v.s)
}

// Slice returns the bytes in [start, end), or (nil, false) if the range is
// out of bounds. For byte-backed views the result aliases the view's data;
// string-backed views materialize a copy.
func (v View) Slice(start, end int) ([]byte, bool) {
	if start < 0 || start > end || end > v.Len() {
		return nil, false
	}
	if v.b != nil {
		return v.b[start:end], true
	}
	return []byte(v.s[start:end]), true
}

// SliceTo returns the bytes in [0, end), or (nil, false) if end is out of
// bounds.
func (v View) SliceTo(end int) ([]byte, bool) {
	return v.Slice(0, end)
}

// ByteSlice returns a copy of the view's data as a byte slice.
func (v View) ByteSlice() []byte {
	if v.b != nil {
		b := make([]byte, len(v.b))
		copy(b, v.b)
		return b
	}
	return []byte(v.s)
}

// String returns the view's data as a string.
func (v View) String() string {
	if v.b != nil {
		return string(v.b)
	}
	return v.s
}
