package cfft

// isPowerOfTwo reports whether n is an exact power of two (n >= 1).
func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// log2Exact returns log2(n) for a value already known to be a power of two.
func log2Exact(n int) int {
	b := 0
	for n > 1 {
		n >>= 1
		b++
	}
	return b
}

// validateConfig runs the config-level checks each entry point makes after
// its own buffer-length checks and before the per-call shape checks
// (validateShape): a non-nil config (falling back to DefaultConfig),
// the config's own invariants, and a non-nil allocator. Returns the config
// to use (never nil) and any validation error.
func validateConfig[T Float](cfg *Config[T]) (*Config[T], error) {
	if cfg == nil {
		cfg = DefaultConfig[T]()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Allocator == nil {
		return cfg, ErrInvalidArgument
	}
	return cfg, nil
}

// validateShape runs the per-call checks spec.md §4.12 places on every
// entry point, in the order it specifies:
//
//  1. num_elements < 1 is a success no-op, signaled by the bool return.
//  2. A channel that aliases itself between src and dst (same backing
//     array) must use matching strides for that channel.
//  3. A real buffer (src or dst) must never alias an imaginary buffer (src
//     or dst) — cross-channel aliasing is always rejected.
//  4. Destination strides must be nonzero; source strides may be 0, which
//     the permutation and Bluestein drivers treat as an all-zero broadcast.
//  5. Non-power-of-two n is rejected when cfg.DisableNPOT is set.
func validateShape[T Float](cfg *Config[T], srcReal, srcImag, dstReal, dstImag []T, srcRealStride, srcImagStride, dstRealStride, dstImagStride, n int) (noop bool, err error) {
	if n < 1 {
		return true, nil
	}
	if samebacking(srcReal, dstReal) && srcRealStride != dstRealStride {
		return false, ErrInvalidArgument
	}
	if samebacking(srcImag, dstImag) && srcImagStride != dstImagStride {
		return false, ErrInvalidArgument
	}
	if samebacking(srcReal, srcImag) || samebacking(srcReal, dstImag) ||
		samebacking(dstReal, srcImag) || samebacking(dstReal, dstImag) {
		return false, ErrInvalidArgument
	}
	if dstRealStride == 0 || dstImagStride == 0 {
		return false, ErrInvalidArgument
	}
	if !isPowerOfTwo(n) && cfg.DisableNPOT {
		return false, ErrInvalidArgument
	}
	return false, nil
}

// zeroSource stands in for a nil real or imaginary input array: a single
// zero-valued element read at stride 0, the all-zero broadcast spec.md §6
// requires entry points to support when a source channel is absent.
func zeroSource[T Float]() []T { return make([]T, 1) }

// resolveSource substitutes zeroSource (at stride 0) for a nil src channel,
// regardless of whatever stride the caller supplied — there is no real data
// behind a nil source, so the stride the caller passed for it is moot.
func resolveSource[T Float](src []T, stride int) ([]T, int) {
	if len(src) == 0 {
		return zeroSource[T](), 0
	}
	return src, stride
}

// transformCore dispatches to the POT or Bluestein driver over n complex
// samples addressed by independent strides per channel, per buffer. It is
// the single point every public entry point below reduces to.
func transformCore[T Float](cfg *Config[T], srcReal, srcImag []T, srcRealStride, srcImagStride int, dstReal, dstImag []T, dstRealStride, dstImagStride, n int, scale T, inverse bool) error {
	noop, err := validateShape(cfg, srcReal, srcImag, dstReal, dstImag, srcRealStride, srcImagStride, dstRealStride, dstImagStride, n)
	if err != nil {
		return err
	}
	if noop {
		return nil
	}
	srcReal, srcRealStride = resolveSource(srcReal, srcRealStride)
	srcImag, srcImagStride = resolveSource(srcImag, srcImagStride)

	if isPowerOfTwo(n) {
		return fftPOT(cfg, srcReal, srcImag, srcRealStride, srcImagStride, dstReal, dstImag, dstRealStride, dstImagStride, log2Exact(n), scale, inverse)
	}
	return bluesteinTransform(cfg, srcReal, srcImag, srcRealStride, srcImagStride, dstReal, dstImag, dstRealStride, dstImagStride, n, scale, inverse)
}

// Forward is the common case of ForwardPlanar: an in-place, unscaled
// forward transform over real, imag (both read and written).
func Forward[T Float](cfg *Config[T], real, imag []T) error {
	return ForwardPlanar(cfg, real, imag, real, imag, one[T]())
}

// Inverse is the common case of InversePlanar: an in-place inverse
// transform over real, imag, normalized by 1/n.
func Inverse[T Float](cfg *Config[T], real, imag []T) error {
	n := len(real)
	if n == 0 {
		return InversePlanar(cfg, real, imag, real, imag, one[T]())
	}
	return InversePlanar(cfg, real, imag, real, imag, one[T]()/T(n))
}

// ForwardPlanar computes dst[j] = scale * sum(src[k] * exp(-2*pi*i*j*k/n),
// k=0..n-1) over planar, unit-stride (real, imag) arrays, n = len(dstReal) =
// len(dstImag). src and dst may be the same arrays (in-place) or disjoint
// ones; either source channel may be nil, treated as all-zero. n need not
// be a power of two unless cfg.DisableNPOT is set. A nil cfg uses
// DefaultConfig[T]().
func ForwardPlanar[T Float](cfg *Config[T], srcReal, srcImag, dstReal, dstImag []T, scale T) error {
	return planar(cfg, srcReal, srcImag, dstReal, dstImag, scale, false)
}

// InversePlanar is the inverse-direction counterpart of ForwardPlanar: the
// exponent's sign flips, scale is applied exactly as given (pass 1/n for a
// true normalized inverse).
func InversePlanar[T Float](cfg *Config[T], srcReal, srcImag, dstReal, dstImag []T, scale T) error {
	return planar(cfg, srcReal, srcImag, dstReal, dstImag, scale, true)
}

func planar[T Float](cfg *Config[T], srcReal, srcImag, dstReal, dstImag []T, scale T, inverse bool) error {
	n := len(dstReal)
	if len(dstImag) != n {
		return ErrInvalidArgument
	}
	if len(srcReal) != 0 && len(srcReal) != n {
		return ErrInvalidArgument
	}
	if len(srcImag) != 0 && len(srcImag) != n {
		return ErrInvalidArgument
	}
	cfg, err := validateConfig(cfg)
	if err != nil {
		return err
	}
	return transformCore(cfg, srcReal, srcImag, 1, 1, dstReal, dstImag, 1, 1, n, scale, inverse)
}

// ForwardStrided computes the forward DFT over n complex samples addressed
// as srcReal[i*srcRealStride]/srcImag[i*srcImagStride] into
// dstReal[i*dstRealStride]/dstImag[i*dstImagStride] — e.g. one channel of
// an interleaved multi-channel buffer. Source strides may be 0 (broadcast)
// or the source channel nil (all-zero); destination strides must be
// nonzero. src and dst may share backing.
func ForwardStrided[T Float](cfg *Config[T], srcReal, srcImag []T, srcRealStride, srcImagStride int, dstReal, dstImag []T, dstRealStride, dstImagStride, n int, scale T) error {
	return strided(cfg, srcReal, srcImag, srcRealStride, srcImagStride, dstReal, dstImag, dstRealStride, dstImagStride, n, scale, false)
}

// InverseStrided is the inverse-direction counterpart of ForwardStrided.
func InverseStrided[T Float](cfg *Config[T], srcReal, srcImag []T, srcRealStride, srcImagStride int, dstReal, dstImag []T, dstRealStride, dstImagStride, n int, scale T) error {
	return strided(cfg, srcReal, srcImag, srcRealStride, srcImagStride, dstReal, dstImag, dstRealStride, dstImagStride, n, scale, true)
}

func strided[T Float](cfg *Config[T], srcReal, srcImag []T, srcRealStride, srcImagStride int, dstReal, dstImag []T, dstRealStride, dstImagStride, n int, scale T, inverse bool) error {
	if n < 0 {
		return ErrInvalidArgument
	}
	if need := spanNeeded(dstRealStride, n); len(dstReal) < need {
		return ErrInvalidArgument
	}
	if need := spanNeeded(dstImagStride, n); len(dstImag) < need {
		return ErrInvalidArgument
	}
	if len(srcReal) != 0 {
		if need := spanNeeded(srcRealStride, n); len(srcReal) < need {
			return ErrInvalidArgument
		}
	}
	if len(srcImag) != 0 {
		if need := spanNeeded(srcImagStride, n); len(srcImag) < need {
			return ErrInvalidArgument
		}
	}
	cfg, err := validateConfig(cfg)
	if err != nil {
		return err
	}
	return transformCore(cfg, srcReal, srcImag, srcRealStride, srcImagStride, dstReal, dstImag, dstRealStride, dstImagStride, n, scale, inverse)
}

// spanNeeded returns the minimum slice length needed to address n elements
// at the given stride; a stride of 0 (broadcast) needs only one element.
func spanNeeded(stride, n int) int {
	if n == 0 {
		return 0
	}
	if stride == 0 {
		return 1
	}
	return (n-1)*stride + 1
}

// ForwardInterleaved computes the forward DFT of n complex samples packed
// as (re, im, re, im, ...) in src, writing the same layout to dst (which
// must have length >= 2*n each; src may equal dst for in-place, or be nil
// for an all-zero source).
func ForwardInterleaved[T Float](cfg *Config[T], src, dst []T, n int, scale T) error {
	return interleaved(cfg, src, dst, n, scale, false)
}

// InverseInterleaved is the inverse-direction counterpart of
// ForwardInterleaved.
func InverseInterleaved[T Float](cfg *Config[T], src, dst []T, n int, scale T) error {
	return interleaved(cfg, src, dst, n, scale, true)
}

func interleaved[T Float](cfg *Config[T], src, dst []T, n int, scale T, inverse bool) error {
	if n < 0 || len(dst) < 2*n {
		return ErrInvalidArgument
	}
	if len(src) != 0 && len(src) < 2*n {
		return ErrInvalidArgument
	}
	cfg, err := validateConfig(cfg)
	if err != nil {
		return err
	}
	// The interleaved format ties the real and imaginary components of one
	// channel to a single buffer by construction, so the cross-channel
	// aliasing rule (validateShape steps 2-3) doesn't apply here: src and
	// dst may be the same buffer (in-place) or disjoint ones.
	if n < 1 {
		return nil
	}
	if !isPowerOfTwo(n) && cfg.DisableNPOT {
		return ErrInvalidArgument
	}

	if !isPowerOfTwo(n) {
		scratch, _, err := cfg.Allocator.Alloc(2 * n)
		if err != nil {
			return err
		}
		defer cfg.Allocator.Free(scratch, nil)
		re, im := scratch[:n], scratch[n:2*n]
		if len(src) != 0 {
			for i := 0; i < n; i++ {
				re[i], im[i] = src[2*i], src[2*i+1]
			}
		}
		if err := bluesteinTransform(cfg, re, im, 1, 1, re, im, 1, 1, n, scale, inverse); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			dst[2*i], dst[2*i+1] = re[i], im[i]
		}
		return nil
	}

	log2n := log2Exact(n)
	planarBuf, _, err := cfg.Allocator.Alloc(2 * n)
	if err != nil {
		return err
	}
	defer cfg.Allocator.Free(planarBuf, nil)
	re, im := planarBuf[:n], planarBuf[n:2*n]

	if len(src) != 0 {
		deinterleaveInput(src, re, im)
	}
	if err := fftPOTCore(cfg, re, im, 1, 1, re, im, 1, 1, log2n, inverse); err != nil {
		return err
	}
	if scale != one[T]() {
		scaleInPlace(re, im, 1, 1, n, scale)
	}
	interleaveOutput(re, im, 1, n, dst)
	return nil
}
