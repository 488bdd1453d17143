package inlinefn

import "errors"

var (
	// ErrCapacityExceeded reports an adapter too large for the declared
	// slot, or a copy from a larger-declared-capacity source. There is
	// no heap fallback: the bind or copy panics with this error instead.
	ErrCapacityExceeded = errors.New("capture exceeds declared capacity")

	// ErrReferenceCapture reports a capture whose memory layout contains
	// pointer words. The slot is opaque to the garbage collector, so
	// such captures cannot be stored.
	ErrReferenceCapture = errors.New("capture contains reference types")
)
