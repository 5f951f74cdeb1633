package cfft

// Config holds the compile-time knobs the original engine exposed as
// preprocessor constants (TMP_BUF_LOG2, Q, NPOT and bit-reverse-table
// toggles, SIMD force/forbid, detection caching). There is no per-type
// disable flag: the element type is whatever T the caller instantiates.
// Go has no preprocessor, so these become ordinary struct fields read at call time;
// a zero-config caller gets DefaultConfig's values through the package-level
// entry points.
//
// Following the teacher's ModeConfig (celt/modes.go): a plain struct with a
// constructor, not a functional-options builder.
type Config[T Float] struct {
	// TmpBufLog2 sizes the stack-scoped scratch buffer used for twiddles and
	// bit-reversal tiling: TmpBufSize = 2^TmpBufLog2. Must be >= 2.
	TmpBufLog2 int

	// Q is the Carter-Gatlin block-log2 parameter for large in-place
	// bit-reversal permutations. Must satisfy 1 <= Q and 2*Q <= TmpBufLog2.
	Q int

	// DisableNPOT rejects non-power-of-two sizes with ErrInvalidArgument
	// instead of routing them through the Bluestein driver.
	DisableNPOT bool

	// DisableBitReverseTable forces the branch-free nibble-swap bit
	// reversal even for small indices, skipping the static lookup table.
	DisableBitReverseTable bool

	// ForceSIMD, if nonzero, restricts the capability probe's result to
	// exactly these widths regardless of what the CPU actually reports —
	// useful for testing the scalar and SIMD code paths against each other
	// on the same machine.
	ForceSIMD Width

	// ForbidSIMD masks out widths the probe would otherwise report, e.g. to
	// force the portable fallback path.
	ForbidSIMD Width

	// CacheSIMD enables single-initialization caching of the capability
	// probe's result. When true, the probe runs once per process behind a
	// sync.Once, so concurrent first calls are safe; all later calls only
	// read the cached mask.
	CacheSIMD bool

	// Allocator backs the scratch buffers the Bluestein (NPOT) driver needs.
	// It is the Go shape of the original's injectable alloc/free function
	// pointer pair. The default never fails.
	Allocator Allocator[T]
}

// TwiddlesBufLog2 is the log2 size of the precomputed twiddle buffer that
// fits inside the scratch: one less than TmpBufLog2, since the scratch is
// shared between the (tr, ti) halves.
func (c *Config[T]) TwiddlesBufLog2() int { return c.TmpBufLog2 - 1 }

// TmpBufSize is 2^TmpBufLog2, the scratch buffer's element count per channel.
func (c *Config[T]) TmpBufSize() int { return 1 << uint(c.TmpBufLog2) }

// TwiddlesBufSize is 2^TwiddlesBufLog2.
func (c *Config[T]) TwiddlesBufSize() int { return 1 << uint(c.TwiddlesBufLog2()) }

// Validate checks the invariants spec.md §3/§9 place on TmpBufLog2 and Q:
// log2|buffer| >= 2, 1 <= Q, and 2*Q <= TmpBufLog2 (the in-place large-N
// bit-reversal scratch, sized 2^(2Q), must fit inside the driver-supplied
// scratch sized 2^TmpBufLog2).
func (c *Config[T]) Validate() error {
	if c.TmpBufLog2 < 2 {
		return ErrInvalidArgument
	}
	if c.Q < 1 || 2*c.Q > c.TmpBufLog2 {
		return ErrInvalidArgument
	}
	return nil
}

// DefaultConfig returns the engine's default knobs: TmpBufLog2=10 (a 1024
// element scratch per channel), Q = min(TmpBufLog2/2, 6), NPOT and the
// bit-reverse table both enabled, no SIMD forced or forbidden, detection
// caching on, and the default make-based allocator.
func DefaultConfig[T Float]() *Config[T] {
	const tmpBufLog2 = 10
	q := tmpBufLog2 / 2
	if q > 6 {
		q = 6
	}
	return &Config[T]{
		TmpBufLog2: tmpBufLog2,
		Q:          q,
		CacheSIMD:  true,
		Allocator:  sliceAllocator[T]{},
	}
}

// Allocator is the injectable allocation seam the NPOT (Bluestein) driver
// uses for its scratch buffers — the Go equivalent of the original's
// alloc/free function-pointer pair. Implementations whose Alloc can fail
// (an arena, a bounded pool) let callers observe ErrOutOfMemory instead of
// the engine panicking on an allocation failure.
type Allocator[T Float] interface {
	// Alloc returns two same-length real-valued slices of length n, zeroed,
	// or an error if the allocation cannot be satisfied.
	Alloc(n int) (a, b []T, err error)
	// Free releases slices previously returned by Alloc. Implementations
	// backed by the garbage collector may no-op.
	Free(a, b []T)
}

// sliceAllocator is the default Allocator: ordinary make, which in Go never
// returns a nil slice/fails the way a C allocator can — Free is a no-op and
// collection is left to the garbage collector.
type sliceAllocator[T Float] struct{}

func (sliceAllocator[T]) Alloc(n int) ([]T, []T, error) {
	return make([]T, n), make([]T, n), nil
}

func (sliceAllocator[T]) Free([]T, []T) {}
