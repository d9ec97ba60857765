// Package buffed provides a generic, bounds-checked cursor for reading and
// writing typed primitive values out of an arbitrary backing container.
//
// Goals include:
//
// Container-agnostic: the cursor is generic over anything implementing Sliceable;
// a heap-allocated byte vector, a memory-mapped region and a lazily-materialized
// view are all driven through the same typed accessor suite. The bytebuf and view
// sub-packages provide ready-made containers, but nothing in this package depends
// on them.
//
// Atomic accessors: every typed read or write either completes, advancing the
// position by exactly the operation's width, or fails with a typed error and
// leaves the position untouched. There is no partial decoding and no silent
// truncation, so a caller can retry the same operation at the same offset after
// the container grows.
//
// Allocation- and blocking-free: no accessor performs io, suspends, or retries
// internally. Waiting for more bytes to arrive belongs to the layer above, which
// can poll Remaining and invoke the cursor once enough data is known to be
// present.
package buffed

import (
	"io"
	"os"
)

// Warnings is where warnings are sent to.
// The cursor continues to operate with e.g. incorrectly implemented Sliceable
// containers where it can, however it won't silently put up with things that
// seem worrying.
var Warnings io.Writer = os.Stderr
