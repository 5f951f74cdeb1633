package cfft

// fft8 is the hand-scheduled size-8 decimation-in-time butterfly used as the
// base case by butterflyMultipass (spec.md §4.4), transcribed from the
// original's dbcF_fft8. c is the caller-supplied sqrt(2)/2 so the leaf
// itself never reaches into a constant; only the sign of the cross terms
// changes between forward and inverse.
func fft8[T Float](real, imag []T, realStride, imagStride int, inverse bool, c T) {
	r0, i0 := real[0], imag[0]
	r1, i1 := real[realStride], imag[imagStride]
	r2, i2 := real[2*realStride], imag[2*imagStride]
	r3, i3 := real[3*realStride], imag[3*imagStride]
	r4, i4 := real[4*realStride], imag[4*imagStride]
	r5, i5 := real[5*realStride], imag[5*imagStride]
	r6, i6 := real[6*realStride], imag[6*imagStride]
	r7, i7 := real[7*realStride], imag[7*imagStride]

	R0, R1, I0, I1 := r0+r1, r0-r1, i0+i1, i0-i1
	R2, R3, I2, I3 := r2+r3, r2-r3, i2+i3, i2-i3
	R4, R5, I4, I5 := r4+r5, r4-r5, i4+i5, i4-i5
	R6, R7, I6, I7 := r6+r7, r6-r7, i6+i7, i6-i7

	var p5, m5, p7, m7 T
	if !inverse {
		r0, i0 = R0+R2, I0+I2
		r1, i1 = R1+I3, I1-R3
		r2, i2 = R0-R2, I0-I2
		r3, i3 = R1-I3, I1+R3
		r4, i4 = R4+R6, I4+I6
		r5, i5 = R5+I7, I5-R7
		r6, i6 = R4-R6, I4-I6
		r7, i7 = R5-I7, I5+R7
		p5, m5 = c*(r5+i5), c*(r5-i5)
		p7, m7 = c*(r7+i7), c*(r7-i7)
		real[0], imag[0] = r0+r4, i0+i4
		real[realStride], imag[imagStride] = r1+p5, i1-m5
		real[2*realStride], imag[2*imagStride] = r2+i6, i2-r6
		real[3*realStride], imag[3*imagStride] = r3-m7, i3-p7
		real[4*realStride], imag[4*imagStride] = r0-r4, i0-i4
		real[5*realStride], imag[5*imagStride] = r1-p5, i1+m5
		real[6*realStride], imag[6*imagStride] = r2-i6, i2+r6
		real[7*realStride], imag[7*imagStride] = r3+m7, i3+p7
		return
	}

	r0, i0 = R0+R2, I0+I2
	r1, i1 = R1-I3, I1+R3
	r2, i2 = R0-R2, I0-I2
	r3, i3 = R1+I3, I1-R3
	r4, i4 = R4+R6, I4+I6
	r5, i5 = R5-I7, I5+R7
	r6, i6 = R4-R6, I4-I6
	r7, i7 = R5+I7, I5-R7
	p5, m5 = c*(r5+i5), c*(r5-i5)
	p7, m7 = c*(r7+i7), c*(r7-i7)
	real[0], imag[0] = r0+r4, i0+i4
	real[realStride], imag[imagStride] = r1+m5, i1+p5
	real[2*realStride], imag[2*imagStride] = r2-i6, i2+r6
	real[3*realStride], imag[3*imagStride] = r3-p7, i3+m7
	real[4*realStride], imag[4*imagStride] = r0-r4, i0-i4
	real[5*realStride], imag[5*imagStride] = r1-m5, i1-p5
	real[6*realStride], imag[6*imagStride] = r2+i6, i2-r6
	real[7*realStride], imag[7*imagStride] = r3+p7, i3-m7
}
