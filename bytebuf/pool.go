package bytebuf

import (
	"math/bits"
	"sync"
)

// MinBufferSize is the minimum capacity in bytes that GetBuffer returns.
var MinBufferSize = 32

// Pools of power-of-two sized buffers; buffers[i] holds buffers of cap 1<<i.
var buffers [32]sync.Pool

func init() {
	// set pool new functions
	for i := range buffers {
		size := 1 << i
		buffers[i].New = func() interface{} {
			return make([]byte, 0, size)
		}
	}
}

// GetBuffer returns a buffer with a cap of at least n and len of 0 from the
// pool. If n is too large to pool, it allocates instead.
func GetBuffer(n int) []byte {
	if n < MinBufferSize {
		n = MinBufferSize
	}
	i := bits.Len(uint(n - 1))
	if i >= len(buffers) {
		return make([]byte, 0, n)
	}
	return buffers[i].Get().([]byte)[:0]
}

// PutBuffer places a buffer in the buffer pool.
// If the buffer is too small or too large to make pooling efficient, it
// discards the buffer.
func PutBuffer(buff []byte) {
	c := cap(buff)
	if c < MinBufferSize {
		return
	}
	i := bits.Len(uint(c)) - 1
	if i >= len(buffers) {
		return
	}
	buffers[i].Put(buff[:0])
}
