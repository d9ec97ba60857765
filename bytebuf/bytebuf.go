// Package bytebuf provides a growable byte container for use with buffed
// cursors. It implements both halves of the capability contract; Buffer
// slices are zero-copy views into its backing array, and writes past the end
// grow the buffer with capacity doubling.
package bytebuf

import "fmt"

const (
	// TooBig is a byte count used for simple sanity checking.
	// Set requests that would grow a Buffer past it are refused.
	// By default it is 32MB on 32bit machines, and 128MB on 64bit machines.
	// Feel free to change it.
	TooBig = 1 << (25 + ((^uint(0) >> 32) & 2))
)

// New returns a Buffer of length n backed by pooled storage.
// Buffers obtained from New should be returned with Close when no
// longer needed.
func New(n int) *Buffer {
	check(n)
	buff := GetBuffer(n)[:n]
	// pooled storage holds whatever the previous owner wrote
	for i := range buff {
		buff[i] = 0
	}
	return &Buffer{
		buff: buff,
	}
}

// From returns a Buffer initialized with a copy of p.
// Subsequent modification of p does not affect the Buffer.
func From(p []byte) *Buffer {
	check(len(p))
	b := &Buffer{
		buff: GetBuffer(len(p))[:len(p)],
	}
	copy(b.buff, p)
	return b
}

// Wrap returns a Buffer that takes ownership of p, sharing its backing
// array. The caller must not use p afterwards.
func Wrap(p []byte) *Buffer {
	return &Buffer{
		buff: p,
	}
}

// Buffer is a growable byte container. The zero value is an empty buffer
// ready for use.
type Buffer struct {
	buff []byte
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.buff)
}

// Bytes returns the buffer's contents. The slice aliases the buffer's
// backing array and is only valid until the buffer is next modified.
func (b *Buffer) Bytes() []byte {
	return b.buff
}

// Slice returns the bytes in [start, end), or (nil, false) if the range is
// out of bounds. The view aliases the backing array.
func (b *Buffer) Slice(start, end int) ([]byte, bool) {
	if start < 0 || start > end || end > len(b.buff) {
		return nil, false
	}
	return b.buff[start:end], true
}

// SliceTo returns the bytes in [0, end), or (nil, false) if end is out of
// bounds.
func (b *Buffer) SliceTo(end int) ([]byte, bool) {
	if end < 0 || end > len(b.buff) {
		return nil, false
	}
	return b.buff[:end], true
}

// Set copies p into the buffer at off, growing the buffer when the write
// runs past the current end. It returns false, leaving the buffer
// unmodified, when off doesn't fall within [0, Len()] or the grown buffer
// would exceed TooBig.
func (b *Buffer) Set(off int, p []byte) bool {
	if off < 0 || off > len(b.buff) {
		return false
	}
	if off+len(p) > TooBig {
		return false
	}
	if n := off + len(p) - len(b.buff); n > 0 {
		b.grow(n)
	}
	copy(b.buff[off:], p)
	return true
}

// Reset clears the buffer, retaining its storage for later use.
func (b *Buffer) Reset() {
	b.buff = b.buff[:0]
}

// Close releases the buffer's storage to the pool for later use.
// The Buffer must not be used after Close.
func (b *Buffer) Close() {
	PutBuffer(b.buff)
	b.buff = nil
}

func (b *Buffer) grow(n int) {
	l := len(b.buff)
	if l+n <= cap(b.buff) {
		b.buff = b.buff[:l+n]
		return
	}
	nb := make([]byte, l+n, cap(b.buff)*2+n)
	copy(nb, b.buff)
	b.buff = nb
}

func check(n int) {
	if n > TooBig {
		panic(fmt.Errorf("%v is too big", n))
	}
}
