package buffed

// Sliceable is implemented by containers that expose themselves as a
// read-only, length-bounded, indexable byte source.
// The container need not be a contiguous byte region in memory; it may be a
// rope, a wrapped vector or a view materialized on demand.
//
// Slicing methods must be pure. Implementations must not mutate state in
// response to a slicing call, and repeated calls with the same range must
// return equal data as long as the underlying container is unmodified.
type Sliceable interface {
	// Len returns the number of addressable bytes in the container.
	// It is called on every bounds check, and so must be cheap.
	Len() int

	// Slice returns the bytes in the interval [start, end).
	// It returns (nil, false) when end exceeds Len, start exceeds end,
	// or either bound is negative; there are no partial results.
	//
	// The returned view exposes exactly the requested bytes in order.
	// No copy is required by contract, but implementations may copy
	// internally; callers must not assume either. Views are only valid
	// until the container is next modified.
	Slice(start, end int) ([]byte, bool)

	// SliceTo returns the bytes in the interval [0, end).
	// It is equivalent to Slice(0, end), and exists as an optimization
	// hook for containers whose storage makes prefix slicing cheaper
	// than general ranges.
	SliceTo(end int) ([]byte, bool)
}

// Mutable is implemented by Sliceable containers that also accept writes.
// Containers that cannot accept writes simply don't implement it; every
// write through a Cursor over such a container fails with
// ErrInsufficientCapacity.
type Mutable interface {
	Sliceable

	// Set copies p into the container at the interval [off, off+len(p)),
	// growing the container when it can. It returns false when the write
	// cannot be accommodated; off past the current end, a full
	// fixed-capacity container, or an unreasonably large request.
	// On a false return the container must be unmodified.
	Set(off int, p []byte) bool
}
