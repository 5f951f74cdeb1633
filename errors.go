package cfft

import "errors"

// ErrInvalidArgument is returned when aliasing rules are violated, a
// destination stride is zero, or a non-power-of-two size is requested while
// NPOT support is disabled in Config.
var ErrInvalidArgument = errors.New("cfft: invalid argument")

// ErrOutOfMemory is returned when the allocator backing the Bluestein (NPOT)
// scratch buffers fails. The destination arrays are left untouched when this
// is returned: nothing has been written to them yet at the point allocation
// is attempted.
var ErrOutOfMemory = errors.New("cfft: out of memory")
