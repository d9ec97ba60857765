package buffed

import "fmt"

// New returns a Cursor reading from container, positioned at 0.
// The container is held as given; it is not copied. For containers whose
// Sliceable methods have pointer receivers, C is the pointer type.
func New[C Sliceable](container C) *Cursor[C] {
	return &Cursor[C]{
		container: container,
	}
}

// Cursor provides sequential, bounds-checked typed decoding and encoding
// over a Sliceable container.
//
// The position always satisfies 0 <= position <= container.Len(). Successful
// accessors advance it by exactly the operation's width; failed accessors
// leave it untouched.
//
// A Cursor holds no resources beyond the container reference and the
// position, and has no teardown. It is not safe for concurrent use; callers
// wanting multiple readers over one immutable container should construct
// independent Cursors.
type Cursor[C Sliceable] struct {
	container C
	pos       int
}

// Container returns the underlying container as given to New.
func (c *Cursor[C]) Container() C {
	return c.container
}

// Position returns the cursor's offset into the container.
func (c *Cursor[C]) Position() int {
	return c.pos
}

// SetPosition sets the cursor's offset into the container.
// It fails with ErrOutOfBounds if p is negative or past the container's end.
// It does not require there to be enough remaining bytes for any particular
// future read; setting the position to exactly Len() is valid.
func (c *Cursor[C]) SetPosition(p int) error {
	if l := c.container.Len(); p < 0 || p > l {
		return RangeError{Err: ErrOutOfBounds, Off: p, Have: l}
	}
	c.pos = p
	return nil
}

// Remaining returns the number of unread bytes between the position and the
// container's end. Callers can use it to decide whether to attempt a read
// without triggering a failure path.
func (c *Cursor[C]) Remaining() int {
	return c.container.Len() - c.pos
}

// IsAvailable returns whether n bytes remain from the current position.
func (c *Cursor[C]) IsAvailable(n int) bool {
	return c.Remaining() >= n
}

// Skip advances the position by n bytes without decoding them.
// It fails with ErrInsufficientData if fewer than n bytes remain, and with
// ErrOutOfBounds if n is negative.
func (c *Cursor[C]) Skip(n int) error {
	if n < 0 {
		return RangeError{Err: ErrOutOfBounds, Off: c.pos + n, Have: c.container.Len()}
	}
	if c.Remaining() < n {
		return RangeError{Err: ErrInsufficientData, Off: c.pos, Want: n, Have: c.container.Len()}
	}
	c.pos += n
	return nil
}

// Reset sets the position back to 0. The container is untouched.
func (c *Cursor[C]) Reset() {
	c.pos = 0
}

// view returns the n bytes at the current position, without advancing.
func (c *Cursor[C]) view(n int) ([]byte, error) {
	b, ok := c.container.Slice(c.pos, c.pos+n)
	if !ok {
		return nil, RangeError{Err: ErrInsufficientData, Off: c.pos, Want: n, Have: c.container.Len()}
	}
	if len(b) != n {
		fmt.Fprintf(Warnings, "buffed: %T is a bad Sliceable implementation. Slice(%v, %v) returned a %v byte view.\n", c.container, c.pos, c.pos+n, len(b))
		return nil, RangeError{Err: ErrInsufficientData, Off: c.pos, Want: n, Have: c.container.Len()}
	}
	return b, nil
}

// put writes p at the current position and advances past it.
func (c *Cursor[C]) put(p []byte) error {
	m, ok := any(c.container).(Mutable)
	if !ok || !m.Set(c.pos, p) {
		return RangeError{Err: ErrInsufficientCapacity, Off: c.pos, Want: len(p), Have: c.container.Len()}
	}
	c.pos += len(p)
	return nil
}
