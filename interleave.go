package cfft

// deinterleaveInput splits an interleaved (re, im, re, im, ...) buffer into
// natural-order planar (real[], imag[]) form — src's even offsets feed
// real, its odd offsets feed imag. The bit-reversal permutation the
// butterfly driver needs is left to fftPOTCore itself, which is the only
// place that knows whether this size's leaf (fft2/fft4, expecting
// natural order) or the general multipass combine (expecting bit-reversed
// order) will run (spec.md §4.5, §4.9).
func deinterleaveInput[T Float](src []T, dstReal, dstImag []T) {
	n := len(dstReal)
	for i := 0; i < n; i++ {
		dstReal[i] = src[2*i]
		dstImag[i] = src[2*i+1]
	}
}

// interleaveOutput zips planar (real, imag) results, already in natural
// order after the butterfly combine, into a single interleaved buffer. No
// permutation is needed here: decimation-in-time only requires
// bit-reversal on the way in.
func interleaveOutput[T Float](real, imag []T, stride, n int, dst []T) {
	for i := 0; i < n; i++ {
		dst[2*i] = real[i*stride]
		dst[2*i+1] = imag[i*stride]
	}
}
