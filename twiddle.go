package cfft

// cexpm1 returns exp(2*pi*i/2^k) - 1 as (real, imag). For k within the
// tabulated range it is a direct lookup; for k >= 17 the degree-8/7 Taylor
// expansion of cos(x)-1 and sin(x) around x = 2*pi/2^k is used instead, both
// grounded on the original's dbcF_cexpm1 (spec.md §4.3).
func cexpm1[T Float](k int) (T, T) {
	if k >= 0 && k < len(cexpm1Table) {
		row := cexpm1Table[k]
		return T(row[0]), T(row[1])
	}
	n := float64(uint64(1) << uint(k))
	x := twoPi / n
	x2 := x * x
	real := -x2 * (taylorC2 - x2*(taylorC4-x2*(taylorC6-x2*taylorC8)))
	imag := x * (taylorC1 - x2*(taylorC3-x2*(taylorC5-x2*taylorC7)))
	return T(real), T(imag)
}

// cexp returns exp(2*pi*i/2^k) = 1 + cexpm1(k).
func cexp[T Float](k int) (T, T) {
	r, i := cexpm1[T](k)
	return one[T]() + r, i
}

// cexpm1Npot returns exp(2*pi*i*p/q) - 1 via the 33-term continued-fraction
// style evaluation from the original's dbcF_cexpm1_npot, which stays
// accurate even for modest p/q where the Taylor series above would need
// many more terms.
func cexpm1Npot[T Float](p, q int) (T, T) {
	x := twoPi * float64(p) / float64(q)
	x2 := x * x
	c, s := 1.0, 1.0
	for i := 32; i >= 0; i-- {
		fi := float64(i)
		j := 2*fi + 3
		k := 2*fi + 3
		j = j * j
		c = 1.0 - x2*c/(j+k)
		s = 1.0 - x2*s/(j-k)
	}
	c = -c * 0.5 * x2
	s = s * x
	return T(c), T(s)
}

// computeTwiddles fills tr[0:2^log2b), ti[0:2^log2b) with
// exp(+-2*pi*i*k/2^log2n) by doubling the filled prefix: given the first 2^i
// twiddles, twiddle[2^i+j] = twiddle[j] * exp(+-2*pi*i/2^(log2n-i)). The
// multiplication runs on the (cos-1, sin) representation and converts back
// to (cos, sin) only once at the end, bounding the error to O(log N) per
// entry (spec.md §4.3, §9 "recursive multiplier chaining").
func computeTwiddles[T Float](log2n, log2b int, tr, ti []T, inverse bool) {
	tr[0] = zero[T]()
	ti[0] = zero[T]()
	for i := 0; i < log2b; i++ {
		k := 1 << uint(i)
		x, y := cexpm1[T](log2n - i)
		if !inverse {
			y = -y
		}
		for j := 0; j < k; j++ {
			tr[k+j] = (x*tr[j] - y*ti[j]) + (x + tr[j])
			ti[k+j] = (y*tr[j] + x*ti[j]) + (y + ti[j])
		}
	}
	n := 1 << uint(log2b)
	for i := 0; i < n; i++ {
		tr[i] = one[T]() + tr[i]
	}
}

// computeTwiddlesNpot builds the 2N-long chirp exp(+-2*pi*i*k/(2N)) in three
// stages: the first quarter is doubled from cexpm1Npot seeds, the second
// quarter mirrors it about the midpoint (real negated, imag copied), and the
// second half negates the first half outright (spec.md §4.3). n here is
// always the even length 2N the caller passes (matching the original's
// "always gets called with even n" note).
func computeTwiddlesNpot[T Float](n int, tr, ti []T, inverse bool) {
	if n < 1 {
		return
	}
	m := n >> 1
	h := (m + 2) >> 1
	tr[0] = zero[T]()
	ti[0] = zero[T]()
	for i := 1; i < h; i *= 2 {
		x, y := cexpm1Npot[T](i, n)
		if !inverse {
			y = -y
		}
		j := i
		if h < i*2 {
			j = h - i
		}
		for k := 0; k < j; k++ {
			tr[i+k] = (x*tr[k] - y*ti[k]) + (x + tr[k])
			ti[i+k] = (y*tr[k] + x*ti[k]) + (y + ti[k])
		}
	}
	for i := 0; i < h; i++ {
		tr[i] = one[T]() + tr[i]
	}
	for i := h; i < m; i++ {
		tr[i] = -tr[m-i]
		ti[i] = ti[m-i]
	}
	for i := 0; i < m; i++ {
		tr[m+i] = -tr[i]
		ti[m+i] = -ti[i]
	}
}
