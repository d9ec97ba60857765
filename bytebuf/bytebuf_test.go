package bytebuf_test

import (
	"fmt"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/heavens/buffed-io/bytebuf"
)

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	b := bytebuf.From(data)
	defer b.Close()

	for start := 0; start <= len(data); start++ {
		for end := start; end <= len(data); end++ {
			s, ok := b.Slice(start, end)
			if !ok {
				t.Fatalf("Slice(%v, %v) failed on container of length %v", start, end, len(data))
			}
			td.Cmp(t, s, data[start:end])
		}
	}

	for end := 0; end <= len(data); end++ {
		s, ok := b.SliceTo(end)
		if !ok {
			t.Fatalf("SliceTo(%v) failed on container of length %v", end, len(data))
		}
		full, _ := b.Slice(0, end)
		td.Cmp(t, s, full)
	}
}

func TestSliceBounds(t *testing.T) {
	b := bytebuf.From([]byte{1, 2, 3, 4})
	defer b.Close()

	testCases := []struct{ start, end int }{
		{0, 5},
		{3, 2},
		{-1, 2},
		{2, -1},
		{5, 5},
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprintf("%v..%v", tC.start, tC.end), func(t *testing.T) {
			if s, ok := b.Slice(tC.start, tC.end); ok {
				t.Fatalf("Slice(%v, %v) returned %v; wanted no result", tC.start, tC.end, s)
			}
		})
	}

	if s, ok := b.SliceTo(5); ok {
		t.Fatalf("SliceTo(5) returned %v; wanted no result", s)
	}
	if s, ok := b.SliceTo(-1); ok {
		t.Fatalf("SliceTo(-1) returned %v; wanted no result", s)
	}
}

func TestSet(t *testing.T) {
	b := bytebuf.New(0)
	defer b.Close()

	if !b.Set(0, []byte{1, 2, 3}) {
		t.Fatal("Set at 0 on empty buffer failed")
	}
	td.Cmp(t, b.Bytes(), []byte{1, 2, 3})

	// overlapping the end grows the buffer
	if !b.Set(2, []byte{9, 9}) {
		t.Fatal("Set overlapping the end failed")
	}
	td.Cmp(t, b.Bytes(), []byte{1, 2, 9, 9})

	// appending at exactly the end grows the buffer
	if !b.Set(4, []byte{5}) {
		t.Fatal("Set at end failed")
	}
	td.Cmp(t, b.Bytes(), []byte{1, 2, 9, 9, 5})

	// a gap past the end is refused
	if b.Set(6, []byte{1}) {
		t.Fatal("Set past end succeeded")
	}
	td.Cmp(t, b.Len(), 5)

	if b.Set(-1, []byte{1}) {
		t.Fatal("Set at negative offset succeeded")
	}
	td.Cmp(t, b.Bytes(), []byte{1, 2, 9, 9, 5})
}

func TestFrom(t *testing.T) {
	data := []byte{1, 2, 3}
	b := bytebuf.From(data)
	defer b.Close()

	data[0] = 9
	td.Cmp(t, b.Bytes(), []byte{1, 2, 3})
}

func TestWrap(t *testing.T) {
	data := []byte{1, 2, 3}
	b := bytebuf.Wrap(data)

	if !b.Set(0, []byte{9}) {
		t.Fatal("Set failed")
	}
	td.Cmp(t, data, []byte{9, 2, 3})
}

func TestReset(t *testing.T) {
	b := bytebuf.From([]byte{1, 2, 3})
	defer b.Close()

	b.Reset()
	td.Cmp(t, b.Len(), 0)

	if s, ok := b.SliceTo(1); ok {
		t.Fatalf("SliceTo(1) on reset buffer returned %v; wanted no result", s)
	}

	if !b.Set(0, []byte{7}) {
		t.Fatal("Set after Reset failed")
	}
	td.Cmp(t, b.Bytes(), []byte{7})
}

func TestNewZeroed(t *testing.T) {
	b := bytebuf.From([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	b.Close()

	// a fresh buffer may reuse the closed buffer's storage,
	// but must not expose its contents.
	b = bytebuf.New(4)
	defer b.Close()

	td.Cmp(t, b.Bytes(), []byte{0, 0, 0, 0})
}

func TestGetBuffer(t *testing.T) {
	sizes := []int{1, 31, 32, 33, 1000, 4096}

	for _, size := range sizes {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			buff := bytebuf.GetBuffer(size)
			if cap(buff) < size {
				t.Fatalf("GetBuffer(%v) returned cap %v", size, cap(buff))
			}
			td.Cmp(t, len(buff), 0)
			bytebuf.PutBuffer(buff)
		})
	}
}

func BenchmarkPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bytebuf.PutBuffer(bytebuf.GetBuffer(512))
	}
}

func BenchmarkAllocate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buff := make([]byte, 0, 512)
		_ = buff
	}
}
