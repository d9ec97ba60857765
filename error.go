package buffed

import (
	"errors"
	"fmt"
)

// Error handling in buffed is designed to reuse a small set of common error
// kinds for as many errors as possible, with extra information wrapped as
// applicable. A failed accessor never partially mutates the cursor; the
// position is exactly as it was before the call, so the caller is free to
// retry the same operation once the container grows, or try a different one.
// Nothing is retried internally.
//
// All error cases are grouped into two error wrappers; RangeError and
// DataError, the idea being that RangeError errors describe an operation that
// didn't fit in the container, and DataError errors describe bytes that were
// present but impossible to decode.
//
// In this way, errors can be checked with
//
//	if errors.Is(err, buffed.ErrInsufficientData) {
//		// wait for more bytes, retry at the same position
//	}
//
// or unwrapped for their diagnostics with
//
//	var rerr buffed.RangeError
//	if errors.As(err, &rerr) {
//		// rerr.Off, rerr.Want, rerr.Have
//	}
var (
	// ErrOutOfBounds is returned when an explicit position set falls
	// outside [0, Len()].
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInsufficientData is returned when a typed read requires more
	// bytes than remain from the current position.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInsufficientCapacity is returned when a typed write cannot be
	// accommodated by the container; a read-only container, or a
	// fixed-capacity container that is full.
	ErrInsufficientCapacity = errors.New("insufficient capacity")

	// ErrInvalidData is returned when the read bytes are impossible to
	// decode as the requested type, e.g. a string that isn't valid UTF-8.
	ErrInvalidData = errors.New("invalid data")
)

// RangeError is returned when an operation doesn't fit in the container.
// It carries the attempted range and the container's length, sufficient for
// the caller to construct a diagnostic message.
type RangeError struct {
	// Err is the error kind; one of ErrOutOfBounds, ErrInsufficientData
	// and ErrInsufficientCapacity.
	Err error

	// Off is the offset the operation was attempted at.
	Off int

	// Want is the width of the attempted operation in bytes.
	// It is 0 for position sets, where Off alone is out of range.
	Want int

	// Have is the container's length at the time of the call.
	Have int
}

// Error implements error
func (e RangeError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("%v: position %v outside container of length %v", e.Err, e.Off, e.Have)
	}
	return fmt.Sprintf("%v: want %v bytes at offset %v, but container length is %v", e.Err, e.Want, e.Off, e.Have)
}

// Unwrap implements errors's Unwrap()
func (e RangeError) Unwrap() error {
	return e.Err
}

// DataError is returned when bytes were successfully sliced from the
// container but cannot be decoded as the requested type.
type DataError struct {
	// Err is the error kind; ErrInvalidData.
	Err error

	// Off is the offset the bytes were read from.
	Off int

	// Len is the number of undecodable bytes.
	Len int
}

// Error implements error
func (e DataError) Error() string {
	return fmt.Sprintf("%v: %v bytes at offset %v", e.Err, e.Len, e.Off)
}

// Unwrap implements errors's Unwrap()
func (e DataError) Unwrap() error {
	return e.Err
}
