package buffed

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// ReadUint8 reads an unsigned byte, advancing the position by 1.
func (c *Cursor[C]) ReadUint8() (uint8, error) {
	b, err := c.view(1)
	if err != nil {
		return 0, err
	}
	c.pos++
	return b[0], nil
}

// ReadInt8 reads a signed byte, advancing the position by 1.
func (c *Cursor[C]) ReadInt8() (int8, error) {
	n, err := c.ReadUint8()
	return int8(n), err
}

// ReadUint16BE reads a big-endian uint16, advancing the position by 2.
func (c *Cursor[C]) ReadUint16BE() (uint16, error) {
	b, err := c.view(2)
	if err != nil {
		return 0, err
	}
	c.pos += 2
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint16LE reads a little-endian uint16, advancing the position by 2.
func (c *Cursor[C]) ReadUint16LE() (uint16, error) {
	b, err := c.view(2)
	if err != nil {
		return 0, err
	}
	c.pos += 2
	return binary.LittleEndian.Uint16(b), nil
}

// ReadInt16BE reads a big-endian int16, advancing the position by 2.
func (c *Cursor[C]) ReadInt16BE() (int16, error) {
	n, err := c.ReadUint16BE()
	return int16(n), err
}

// ReadInt16LE reads a little-endian int16, advancing the position by 2.
func (c *Cursor[C]) ReadInt16LE() (int16, error) {
	n, err := c.ReadUint16LE()
	return int16(n), err
}

// ReadUint24BE reads a big-endian 24-bit unsigned integer,
// advancing the position by 3.
func (c *Cursor[C]) ReadUint24BE() (uint32, error) {
	b, err := c.view(3)
	if err != nil {
		return 0, err
	}
	c.pos += 3
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// ReadUint24LE reads a little-endian 24-bit unsigned integer,
// advancing the position by 3.
func (c *Cursor[C]) ReadUint24LE() (uint32, error) {
	b, err := c.view(3)
	if err != nil {
		return 0, err
	}
	c.pos += 3
	return uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0]), nil
}

// ReadUint32BE reads a big-endian uint32, advancing the position by 4.
func (c *Cursor[C]) ReadUint32BE() (uint32, error) {
	b, err := c.view(4)
	if err != nil {
		return 0, err
	}
	c.pos += 4
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint32LE reads a little-endian uint32, advancing the position by 4.
func (c *Cursor[C]) ReadUint32LE() (uint32, error) {
	b, err := c.view(4)
	if err != nil {
		return 0, err
	}
	c.pos += 4
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32BE reads a big-endian int32, advancing the position by 4.
func (c *Cursor[C]) ReadInt32BE() (int32, error) {
	n, err := c.ReadUint32BE()
	return int32(n), err
}

// ReadInt32LE reads a little-endian int32, advancing the position by 4.
func (c *Cursor[C]) ReadInt32LE() (int32, error) {
	n, err := c.ReadUint32LE()
	return int32(n), err
}

// ReadUint64BE reads a big-endian uint64, advancing the position by 8.
func (c *Cursor[C]) ReadUint64BE() (uint64, error) {
	b, err := c.view(8)
	if err != nil {
		return 0, err
	}
	c.pos += 8
	return binary.BigEndian.Uint64(b), nil
}

// ReadUint64LE reads a little-endian uint64, advancing the position by 8.
func (c *Cursor[C]) ReadUint64LE() (uint64, error) {
	b, err := c.view(8)
	if err != nil {
		return 0, err
	}
	c.pos += 8
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64BE reads a big-endian int64, advancing the position by 8.
func (c *Cursor[C]) ReadInt64BE() (int64, error) {
	n, err := c.ReadUint64BE()
	return int64(n), err
}

// ReadInt64LE reads a little-endian int64, advancing the position by 8.
func (c *Cursor[C]) ReadInt64LE() (int64, error) {
	n, err := c.ReadUint64LE()
	return int64(n), err
}

// ReadFloat32BE reads a big-endian IEEE 754 float32,
// advancing the position by 4.
func (c *Cursor[C]) ReadFloat32BE() (float32, error) {
	n, err := c.ReadUint32BE()
	return math.Float32frombits(n), err
}

// ReadFloat32LE reads a little-endian IEEE 754 float32,
// advancing the position by 4.
func (c *Cursor[C]) ReadFloat32LE() (float32, error) {
	n, err := c.ReadUint32LE()
	return math.Float32frombits(n), err
}

// ReadFloat64BE reads a big-endian IEEE 754 float64,
// advancing the position by 8.
func (c *Cursor[C]) ReadFloat64BE() (float64, error) {
	n, err := c.ReadUint64BE()
	return math.Float64frombits(n), err
}

// ReadFloat64LE reads a little-endian IEEE 754 float64,
// advancing the position by 8.
func (c *Cursor[C]) ReadFloat64LE() (float64, error) {
	n, err := c.ReadUint64LE()
	return math.Float64frombits(n), err
}

// ReadBytes reads the next n bytes, advancing the position by n.
// The returned view aliases the container where the container's Slice does,
// and is only valid until the container is next modified.
func (c *Cursor[C]) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, RangeError{Err: ErrOutOfBounds, Off: c.pos, Want: n, Have: c.container.Len()}
	}
	b, err := c.view(n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// ReadString reads a NUL-terminated string, advancing the position past the
// terminator. It fails with ErrInsufficientData when no terminator is found
// in the remaining bytes, and with ErrInvalidData when the string is not
// valid UTF-8; the position is unchanged on either failure.
func (c *Cursor[C]) ReadString() (string, error) {
	rem, ok := c.container.Slice(c.pos, c.container.Len())
	if !ok {
		return "", RangeError{Err: ErrInsufficientData, Off: c.pos, Want: 1, Have: c.container.Len()}
	}
	i := bytes.IndexByte(rem, 0)
	if i < 0 {
		return "", RangeError{Err: ErrInsufficientData, Off: c.pos, Want: len(rem) + 1, Have: c.container.Len()}
	}
	s := string(rem[:i])
	if !utf8.ValidString(s) {
		return "", DataError{Err: ErrInvalidData, Off: c.pos, Len: i}
	}
	c.pos += i + 1
	return s, nil
}
