package cfft

// bluesteinTransform computes an arbitrary-length forward/inverse DFT via
// Bluestein's chirp-z algorithm, reducing it to a power-of-two convolution
// (spec.md §4.10). src and dst may share backing (in-place) or not; src
// strides may be 0 (broadcast), dst strides must not be. The caller's scale
// is applied once, after the inverse leg of the convolution (spec.md §4.10
// step 5), matching the general scale-parameterized DFT of spec.md §1.
//
// Chirp: t[k] = exp(+-2*pi*i*k^2/(2N)), read out of the 2N-long NPOT
// twiddle table built by computeTwiddlesNpot rather than recomputed from
// scratch, and indexed by k^2 mod 2N via the running-sum trick
// j(k+1) = (j(k) + 2k+1) mod 2N (spec.md §4.10 step 1 / §4.3). With
// a[i] = x[i]*t[i] and b[i] = conj(t[i]) (mirrored at M-i), the cyclic
// convolution of a and b, dechirped by one more multiply by t[i], recovers
// the length-N transform (spec.md §4.10 steps 2-6).
//
// The 1/M normalization an M-point convolution needs is applied right
// after the forward transform of a rather than held until the end: the
// pointwise product and the inverse transform that follows then both
// operate on already-scaled magnitudes instead of accumulating the full
// unnormalized M-point sum before a single late division (spec.md §9's
// intermediate-magnitude bound).
func bluesteinTransform[T Float](cfg *Config[T], srcReal, srcImag []T, srcRealStride, srcImagStride int, dstReal, dstImag []T, dstRealStride, dstImagStride int, n int, scale T, inverse bool) error {
	if n == 1 {
		dstReal[0] = srcReal[0] * scale
		dstImag[0] = srcImag[0] * scale
		return nil
	}

	log2m := nextPow2Log2(2*n - 1)
	m := 1 << uint(log2m)

	convBuf, kernelBuf, err := cfg.Allocator.Alloc(2 * m)
	if err != nil {
		return err
	}
	defer cfg.Allocator.Free(convBuf, kernelBuf)

	chirpBuf, _, err := cfg.Allocator.Alloc(2 * (2 * n))
	if err != nil {
		return err
	}
	defer cfg.Allocator.Free(chirpBuf, nil)

	aReal, aImag := convBuf[:m], convBuf[m:2*m]
	bReal, bImag := kernelBuf[:m], kernelBuf[m:2*m]
	chirpTr, chirpTi := chirpBuf[:2*n], chirpBuf[2*n:4*n]
	computeTwiddlesNpot(2*n, chirpTr, chirpTi, inverse)

	// t[k] = chirp[k^2 mod 2N], with j tracking k^2 mod 2N via the
	// incremental quadratic-residue walk.
	j := 0
	for k := 0; k < n; k++ {
		wr, wi := chirpTr[j], chirpTi[j]

		xr := srcReal[k*srcRealStride]
		xi := srcImag[k*srcImagStride]
		aReal[k] = xr*wr - xi*wi
		aImag[k] = xr*wi + xi*wr

		if k == 0 {
			bReal[0], bImag[0] = wr, -wi
		} else {
			bReal[k], bImag[k] = wr, -wi
			bReal[m-k], bImag[m-k] = wr, -wi
		}

		j += 2*k + 1
		if j >= 2*n {
			j -= 2 * n
		}
	}
	// aReal/aImag/bReal/bImag beyond what was written above stay at the
	// zero Alloc hands back — the zero-padding §4.10 step 2 calls for.

	if err := fftPOTCore(cfg, aReal, aImag, 1, 1, aReal, aImag, 1, 1, log2m, false); err != nil {
		return err
	}
	scaleInPlace(aReal, aImag, 1, 1, m, one[T]()/T(m))

	if err := fftPOTCore(cfg, bReal, bImag, 1, 1, bReal, bImag, 1, 1, log2m, false); err != nil {
		return err
	}

	for i := 0; i < m; i++ {
		ar, ai := aReal[i], aImag[i]
		br, bi := bReal[i], bImag[i]
		aReal[i] = ar*br - ai*bi
		aImag[i] = ar*bi + ai*br
	}

	if err := fftPOTCore(cfg, aReal, aImag, 1, 1, aReal, aImag, 1, 1, log2m, true); err != nil {
		return err
	}
	if scale != one[T]() {
		scaleInPlace(aReal, aImag, 1, 1, m, scale)
	}

	j = 0
	for k := 0; k < n; k++ {
		wr, wi := chirpTr[j], chirpTi[j]
		cr, ci := aReal[k], aImag[k]
		dstReal[k*dstRealStride] = cr*wr - ci*wi
		dstImag[k*dstImagStride] = cr*wi + ci*wr

		j += 2*k + 1
		if j >= 2*n {
			j -= 2 * n
		}
	}
	return nil
}

// nextPow2Log2 returns the smallest b such that 2^b >= x.
func nextPow2Log2(x int) int {
	b := 0
	for (1 << uint(b)) < x {
		b++
	}
	return b
}
