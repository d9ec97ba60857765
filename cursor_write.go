package buffed

import (
	"encoding/binary"
	"math"
)

// Writes are the optional half of the cursor. They require the container to
// implement Mutable; over a read-only container every write fails with
// ErrInsufficientCapacity. Like reads, a successful write advances the
// position by exactly the encoded width and a failed write leaves it untouched.

// WriteUint8 writes an unsigned byte, advancing the position by 1.
func (c *Cursor[C]) WriteUint8(n uint8) error {
	return c.put([]byte{n})
}

// WriteInt8 writes a signed byte, advancing the position by 1.
func (c *Cursor[C]) WriteInt8(n int8) error {
	return c.put([]byte{uint8(n)})
}

// WriteUint16BE writes a big-endian uint16, advancing the position by 2.
func (c *Cursor[C]) WriteUint16BE(n uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], n)
	return c.put(b[:])
}

// WriteUint16LE writes a little-endian uint16, advancing the position by 2.
func (c *Cursor[C]) WriteUint16LE(n uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], n)
	return c.put(b[:])
}

// WriteInt16BE writes a big-endian int16, advancing the position by 2.
func (c *Cursor[C]) WriteInt16BE(n int16) error {
	return c.WriteUint16BE(uint16(n))
}

// WriteInt16LE writes a little-endian int16, advancing the position by 2.
func (c *Cursor[C]) WriteInt16LE(n int16) error {
	return c.WriteUint16LE(uint16(n))
}

// WriteUint24BE writes the low 24 bits of n big-endian,
// advancing the position by 3.
func (c *Cursor[C]) WriteUint24BE(n uint32) error {
	return c.put([]byte{uint8(n >> 16), uint8(n >> 8), uint8(n)})
}

// WriteUint24LE writes the low 24 bits of n little-endian,
// advancing the position by 3.
func (c *Cursor[C]) WriteUint24LE(n uint32) error {
	return c.put([]byte{uint8(n), uint8(n >> 8), uint8(n >> 16)})
}

// WriteUint32BE writes a big-endian uint32, advancing the position by 4.
func (c *Cursor[C]) WriteUint32BE(n uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], n)
	return c.put(b[:])
}

// WriteUint32LE writes a little-endian uint32, advancing the position by 4.
func (c *Cursor[C]) WriteUint32LE(n uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], n)
	return c.put(b[:])
}

// WriteInt32BE writes a big-endian int32, advancing the position by 4.
func (c *Cursor[C]) WriteInt32BE(n int32) error {
	return c.WriteUint32BE(uint32(n))
}

// WriteInt32LE writes a little-endian int32, advancing the position by 4.
func (c *Cursor[C]) WriteInt32LE(n int32) error {
	return c.WriteUint32LE(uint32(n))
}

// WriteUint64BE writes a big-endian uint64, advancing the position by 8.
func (c *Cursor[C]) WriteUint64BE(n uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	return c.put(b[:])
}

// WriteUint64LE writes a little-endian uint64, advancing the position by 8.
func (c *Cursor[C]) WriteUint64LE(n uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], n)
	return c.put(b[:])
}

// WriteInt64BE writes a big-endian int64, advancing the position by 8.
func (c *Cursor[C]) WriteInt64BE(n int64) error {
	return c.WriteUint64BE(uint64(n))
}

// WriteInt64LE writes a little-endian int64, advancing the position by 8.
func (c *Cursor[C]) WriteInt64LE(n int64) error {
	return c.WriteUint64LE(uint64(n))
}

// WriteFloat32BE writes a big-endian IEEE 754 float32,
// advancing the position by 4.
func (c *Cursor[C]) WriteFloat32BE(n float32) error {
	return c.WriteUint32BE(math.Float32bits(n))
}

// WriteFloat32LE writes a little-endian IEEE 754 float32,
// advancing the position by 4.
func (c *Cursor[C]) WriteFloat32LE(n float32) error {
	return c.WriteUint32LE(math.Float32bits(n))
}

// WriteFloat64BE writes a big-endian IEEE 754 float64,
// advancing the position by 8.
func (c *Cursor[C]) WriteFloat64BE(n float64) error {
	return c.WriteUint64BE(math.Float64bits(n))
}

// WriteFloat64LE writes a little-endian IEEE 754 float64,
// advancing the position by 8.
func (c *Cursor[C]) WriteFloat64LE(n float64) error {
	return c.WriteUint64LE(math.Float64bits(n))
}

// WriteBytes writes p, advancing the position by len(p).
func (c *Cursor[C]) WriteBytes(p []byte) error {
	return c.put(p)
}

// WriteString writes s followed by a NUL terminator, advancing the position
// by len(s)+1.
func (c *Cursor[C]) WriteString(s string) error {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return c.put(b)
}
