package cfft

// fftPOT drives a power-of-two forward/inverse transform: bit-reverse src
// into dst, combine with the butterfly driver (which builds each pass's
// twiddles into the config-sized buffer), and multiply every output by
// scale — spec.md §4.9's
// seven-step driver, with validation owned by entry.go and the caller's
// real scale applied last rather than an implicit 1/N (spec.md §1, §4.9
// step 7). src and dst may share backing (in-place) or not; src strides
// may be 0 (broadcast), dst strides must not be.
func fftPOT[T Float](cfg *Config[T], srcReal, srcImag []T, srcRealStride, srcImagStride int, dstReal, dstImag []T, dstRealStride, dstImagStride int, log2n int, scale T, inverse bool) error {
	if err := fftPOTCore(cfg, srcReal, srcImag, srcRealStride, srcImagStride, dstReal, dstImag, dstRealStride, dstImagStride, log2n, inverse); err != nil {
		return err
	}
	if scale != one[T]() {
		scaleInPlace(dstReal, dstImag, dstRealStride, dstImagStride, 1<<uint(log2n), scale)
	}
	return nil
}

// fftPOTCore is fftPOT without the final scale multiply, exposed so the
// Bluestein driver can apply its own scale schedule across the forward and
// inverse legs of the chirp-z convolution (spec.md §4.10, §9).
func fftPOTCore[T Float](cfg *Config[T], srcReal, srcImag []T, srcRealStride, srcImagStride int, dstReal, dstImag []T, dstRealStride, dstImagStride int, log2n int, inverse bool) error {
	n := 1 << uint(log2n)

	// fft2 and fft4 are closed-form leaves that operate directly on
	// natural-order input (their own combine already implements the
	// even/odd split), so the general bit-reversal permutation only runs
	// for log2n >= 3, where the butterfly driver genuinely needs its input
	// pre-reversed. Neither path touches the twiddle scratch below.
	if log2n <= 2 {
		copyChannel(srcReal, srcRealStride, dstReal, dstRealStride, n)
		copyChannel(srcImag, srcImagStride, dstImag, dstImagStride, n)
		switch log2n {
		case 1:
			fft2(dstReal, dstImag, dstRealStride, dstImagStride)
		case 2:
			fft4(dstReal, dstImag, dstRealStride, dstImagStride, inverse)
		}
		return nil
	}

	// The scratch allocation is bounded by cfg.TmpBufSize() regardless of
	// n (spec.md §3, §4.9 step 1): tile is the bit-reversal permutation's
	// scratch (permute only ever needs cfg.TmpBufSize() elements,
	// independent of n), and the twiddle half is split into tr/ti of
	// cfg.TwiddlesBufSize() each. Transforms whose resolution exceeds the
	// buffer get their twiddles rebuilt per-pass inside butterflyMultipass
	// instead of via one whole-transform table.
	tile, twidBuf, err := cfg.Allocator.Alloc(cfg.TmpBufSize())
	if err != nil {
		return err
	}
	defer cfg.Allocator.Free(tile, twidBuf)

	half := cfg.TwiddlesBufSize()
	tr, ti := twidBuf[:half], twidBuf[half:2*half]

	permute(cfg, srcReal, srcRealStride, dstReal, dstRealStride, log2n, tile)
	permute(cfg, srcImag, srcImagStride, dstImag, dstImagStride, log2n, tile)

	butterfly(cfg, dstReal, dstImag, dstRealStride, dstImagStride, log2n, tr, ti, inverse)
	return nil
}

// copyChannel writes dst[i*dstStride] = src[i*srcStride] for i in [0,n), or
// broadcasts src[0] when srcStride is 0. Safe when src and dst share
// backing at equal strides (a no-op copy).
func copyChannel[T Float](src []T, srcStride int, dst []T, dstStride, n int) {
	if srcStride == 0 {
		x := src[0]
		for i := 0; i < n; i++ {
			dst[i*dstStride] = x
		}
		return
	}
	if samebacking(src, dst) && srcStride == dstStride {
		return
	}
	for i := 0; i < n; i++ {
		dst[i*dstStride] = src[i*srcStride]
	}
}

// scaleInPlace multiplies both channels by s, the shared tail of every
// scaled transform (POT direct and Bluestein alike).
func scaleInPlace[T Float](real, imag []T, realStride, imagStride, n int, s T) {
	for i := 0; i < n; i++ {
		real[i*realStride] *= s
		imag[i*imagStride] *= s
	}
}
