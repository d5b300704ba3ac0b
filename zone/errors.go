package zone

import "errors"

var (
	// ErrOutOfMemory indicates the slab source could not provide backing memory.
	ErrOutOfMemory = errors.New("zone: out of memory")

	// ErrSizeInvalid indicates a negative allocation size.
	ErrSizeInvalid = errors.New("zone: invalid size")
)
