package cfft

import (
	"math"
	"testing"
)

const epsilon32 = 1e-3
const epsilon64 = 1e-9

func closeEnough[T Float](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// naiveDFT is the O(n^2) reference transform used to check the engine's
// output independently of its own internal twiddle/permutation machinery.
func naiveDFT(re, im []float64, inverse bool) ([]float64, []float64) {
	n := len(re)
	outRe := make([]float64, n)
	outIm := make([]float64, n)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for k := 0; k < n; k++ {
		var sr, si float64
		for t := 0; t < n; t++ {
			angle := sign * 2 * math.Pi * float64(k) * float64(t) / float64(n)
			c, s := math.Cos(angle), math.Sin(angle)
			sr += re[t]*c - im[t]*s
			si += re[t]*s + im[t]*c
		}
		outRe[k], outIm[k] = sr, si
	}
	if inverse {
		for i := range outRe {
			outRe[i] /= float64(n)
			outIm[i] /= float64(n)
		}
	}
	return outRe, outIm
}

func randomSignal(n int, seed uint64) ([]float64, []float64) {
	re := make([]float64, n)
	im := make([]float64, n)
	for i := 0; i < n; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		re[i] = float64(int64(seed>>40)%1000) / 1000.0
		seed = seed*6364136223846793005 + 1442695040888963407
		im[i] = float64(int64(seed>>40)%1000) / 1000.0
	}
	return re, im
}

func TestForwardAgainstNaiveDFT(t *testing.T) {
	sizes := []int{1, 2, 4, 8, 16, 32, 3, 5, 6, 7, 9, 12}
	for _, n := range sizes {
		re64, im64 := randomSignal(n, uint64(n)*0x9e3779b97f4a7c15+1)
		wantRe, wantIm := naiveDFT(re64, im64, false)

		re := make([]float64, n)
		im := make([]float64, n)
		copy(re, re64)
		copy(im, im64)

		if err := Forward[float64](nil, re, im); err != nil {
			t.Fatalf("n=%d: Forward returned %v", n, err)
		}
		for k := 0; k < n; k++ {
			if !closeEnough(re[k], wantRe[k], epsilon64*float64(n)) || !closeEnough(im[k], wantIm[k], epsilon64*float64(n)) {
				t.Fatalf("n=%d k=%d: got (%v,%v) want (%v,%v)", n, k, re[k], im[k], wantRe[k], wantIm[k])
			}
		}
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	sizes := []int{1, 2, 4, 8, 16, 64, 256, 3, 5, 6, 10, 15, 100}
	for _, n := range sizes {
		re64, im64 := randomSignal(n, uint64(n)+7)
		re := make([]float64, n)
		im := make([]float64, n)
		copy(re, re64)
		copy(im, im64)

		if err := Forward[float64](nil, re, im); err != nil {
			t.Fatalf("n=%d: Forward: %v", n, err)
		}
		if err := Inverse[float64](nil, re, im); err != nil {
			t.Fatalf("n=%d: Inverse: %v", n, err)
		}
		for i := 0; i < n; i++ {
			if !closeEnough(re[i], re64[i], epsilon64*float64(n)) || !closeEnough(im[i], im64[i], epsilon64*float64(n)) {
				t.Fatalf("n=%d i=%d: round trip got (%v,%v) want (%v,%v)", n, i, re[i], im[i], re64[i], im64[i])
			}
		}
	}
}

func TestForwardLinearity(t *testing.T) {
	n := 32
	aRe, aIm := randomSignal(n, 11)
	bRe, bIm := randomSignal(n, 22)
	sumRe := make([]float64, n)
	sumIm := make([]float64, n)
	for i := range sumRe {
		sumRe[i] = aRe[i] + bRe[i]
		sumIm[i] = aIm[i] + bIm[i]
	}

	fa := append([]float64(nil), aRe...)
	fai := append([]float64(nil), aIm...)
	fb := append([]float64(nil), bRe...)
	fbi := append([]float64(nil), bIm...)
	fsum := append([]float64(nil), sumRe...)
	fsumi := append([]float64(nil), sumIm...)

	if err := Forward[float64](nil, fa, fai); err != nil {
		t.Fatal(err)
	}
	if err := Forward[float64](nil, fb, fbi); err != nil {
		t.Fatal(err)
	}
	if err := Forward[float64](nil, fsum, fsumi); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		wantRe := fa[i] + fb[i]
		wantIm := fai[i] + fbi[i]
		if !closeEnough(fsum[i], wantRe, epsilon64*float64(n)) || !closeEnough(fsumi[i], wantIm, epsilon64*float64(n)) {
			t.Fatalf("i=%d: FFT(a+b)=(%v,%v) want FFT(a)+FFT(b)=(%v,%v)", i, fsum[i], fsumi[i], wantRe, wantIm)
		}
	}
}

func TestConstantSignalIsImpulseAtZero(t *testing.T) {
	n := 16
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range re {
		re[i] = 1
	}
	if err := Forward[float64](nil, re, im); err != nil {
		t.Fatal(err)
	}
	if !closeEnough(re[0], float64(n), 1e-9) || !closeEnough(im[0], 0, 1e-9) {
		t.Fatalf("DC term = (%v,%v), want (%v,0)", re[0], im[0], n)
	}
	for k := 1; k < n; k++ {
		if !closeEnough(re[k], 0, 1e-9) || !closeEnough(im[k], 0, 1e-9) {
			t.Fatalf("bin %d = (%v,%v), want (0,0)", k, re[k], im[k])
		}
	}
}

func TestImpulseSignalIsFlatSpectrum(t *testing.T) {
	n := 16
	re := make([]float64, n)
	im := make([]float64, n)
	re[0] = 1
	if err := Forward[float64](nil, re, im); err != nil {
		t.Fatal(err)
	}
	for k := 0; k < n; k++ {
		if !closeEnough(re[k], 1, 1e-9) || !closeEnough(im[k], 0, 1e-9) {
			t.Fatalf("bin %d = (%v,%v), want (1,0)", k, re[k], im[k])
		}
	}
}

func TestFloat32Instantiation(t *testing.T) {
	n := 8
	re64, im64 := randomSignal(n, 99)
	wantRe, wantIm := naiveDFT(re64, im64, false)

	re := make([]float32, n)
	im := make([]float32, n)
	for i := range re {
		re[i] = float32(re64[i])
		im[i] = float32(im64[i])
	}
	if err := Forward[float32](nil, re, im); err != nil {
		t.Fatal(err)
	}
	for k := 0; k < n; k++ {
		if !closeEnough(float64(re[k]), wantRe[k], epsilon32) || !closeEnough(float64(im[k]), wantIm[k], epsilon32) {
			t.Fatalf("k=%d: got (%v,%v) want (%v,%v)", k, re[k], im[k], wantRe[k], wantIm[k])
		}
	}
}

func TestDisableNPOTRejectsNonPowerOfTwo(t *testing.T) {
	cfg := DefaultConfig[float64]()
	cfg.DisableNPOT = true
	re := make([]float64, 6)
	im := make([]float64, 6)
	if err := Forward(cfg, re, im); err != ErrInvalidArgument {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestForwardRejectsMismatchedLengths(t *testing.T) {
	re := make([]float64, 8)
	im := make([]float64, 4)
	if err := Forward[float64](nil, re, im); err != ErrInvalidArgument {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestForwardEmptyInputIsNoop(t *testing.T) {
	// spec.md §4.12 step 1: num_elements < 1 is a success no-op, not an
	// error — there is simply nothing to transform.
	if err := Forward[float64](nil, nil, nil); err != nil {
		t.Fatalf("got %v, want nil", err)
	}
}

func TestScaleIsAppliedToEveryOutput(t *testing.T) {
	n := 8
	re, im := randomSignal(n, 0x5ca1e)
	unscaledRe := append([]float64(nil), re...)
	unscaledIm := append([]float64(nil), im...)
	if err := ForwardPlanar[float64](nil, re, im, unscaledRe, unscaledIm, 1); err != nil {
		t.Fatal(err)
	}

	scale := 2.5
	scaledRe := append([]float64(nil), re...)
	scaledIm := append([]float64(nil), im...)
	if err := ForwardPlanar[float64](nil, re, im, scaledRe, scaledIm, scale); err != nil {
		t.Fatal(err)
	}
	for k := 0; k < n; k++ {
		if !closeEnough(scaledRe[k], unscaledRe[k]*scale, 1e-9) || !closeEnough(scaledIm[k], unscaledIm[k]*scale, 1e-9) {
			t.Fatalf("k=%d: got (%v,%v) want (%v,%v)", k, scaledRe[k], scaledIm[k], unscaledRe[k]*scale, unscaledIm[k]*scale)
		}
	}
}

func TestNullSourceBroadcastsZero(t *testing.T) {
	n := 8
	dstRe := make([]float64, n)
	dstIm := make([]float64, n)
	if err := ForwardPlanar[float64](nil, nil, nil, dstRe, dstIm, 1); err != nil {
		t.Fatal(err)
	}
	for k := 0; k < n; k++ {
		if dstRe[k] != 0 || dstIm[k] != 0 {
			t.Fatalf("k=%d: got (%v,%v), want (0,0) for an all-zero source", k, dstRe[k], dstIm[k])
		}
	}
}

func TestAliasingRejection(t *testing.T) {
	n := 8
	buf := make([]float64, n)
	// A real buffer must never alias an imaginary buffer.
	if err := ForwardPlanar[float64](nil, buf, buf, make([]float64, n), make([]float64, n), 1); err != ErrInvalidArgument {
		t.Fatalf("src real/imag alias: got %v, want ErrInvalidArgument", err)
	}
	dst := make([]float64, n)
	if err := ForwardPlanar[float64](nil, make([]float64, n), make([]float64, n), dst, dst, 1); err != ErrInvalidArgument {
		t.Fatalf("dst real/imag alias: got %v, want ErrInvalidArgument", err)
	}

	// A channel aliasing itself between src and dst must use matching
	// strides; here src and dst are the same array but addressed with
	// different strides, which must be rejected rather than silently
	// reinterpreted.
	same := make([]float64, 4*n)
	other := make([]float64, n)
	if err := ForwardStrided[float64](nil, same, other, 2, 1, same, other, 1, 1, n, 1); err != ErrInvalidArgument {
		t.Fatalf("mismatched self-aliasing strides: got %v, want ErrInvalidArgument", err)
	}
}

func TestDestinationStrideMustBeNonzero(t *testing.T) {
	n := 4
	re := make([]float64, n)
	im := make([]float64, n)
	if err := ForwardStrided[float64](nil, re, im, 1, 1, re, im, 0, 1, n, 1); err != ErrInvalidArgument {
		t.Fatalf("dst real stride 0: got %v, want ErrInvalidArgument", err)
	}
	if err := ForwardStrided[float64](nil, re, im, 1, 1, re, im, 1, 0, n, 1); err != ErrInvalidArgument {
		t.Fatalf("dst imag stride 0: got %v, want ErrInvalidArgument", err)
	}
}

// Concrete scenarios from spec.md §8.
func TestConcreteScenarioN1(t *testing.T) {
	re := []float64{7}
	im := []float64{-3}
	if err := ForwardPlanar[float64](nil, re, im, re, im, 3.0); err != nil {
		t.Fatal(err)
	}
	if !closeEnough(re[0], 21, 1e-9) || !closeEnough(im[0], -9, 1e-9) {
		t.Fatalf("got (%v,%v), want (21,-9)", re[0], im[0])
	}
}

func TestConcreteScenarioN2(t *testing.T) {
	re := []float64{1, 1}
	im := []float64{0, 0}
	if err := Forward[float64](nil, re, im); err != nil {
		t.Fatal(err)
	}
	wantRe := []float64{2, 0}
	wantIm := []float64{0, 0}
	for k := 0; k < 2; k++ {
		if !closeEnough(re[k], wantRe[k], 1e-9) || !closeEnough(im[k], wantIm[k], 1e-9) {
			t.Fatalf("k=%d: got (%v,%v) want (%v,%v)", k, re[k], im[k], wantRe[k], wantIm[k])
		}
	}
}

func TestConcreteScenarioN4(t *testing.T) {
	re := []float64{1, 2, 3, 4}
	im := []float64{0, 0, 0, 0}
	if err := Forward[float64](nil, re, im); err != nil {
		t.Fatal(err)
	}
	wantRe := []float64{10, -2, -2, -2}
	wantIm := []float64{0, 2, 0, -2}
	for k := 0; k < 4; k++ {
		if !closeEnough(re[k], wantRe[k], 1e-9) || !closeEnough(im[k], wantIm[k], 1e-9) {
			t.Fatalf("k=%d: got (%v,%v) want (%v,%v)", k, re[k], im[k], wantRe[k], wantIm[k])
		}
	}
}

func TestInterleavedMatchesPlanar(t *testing.T) {
	sizes := []int{8, 16, 6, 9}
	for _, n := range sizes {
		re, im := randomSignal(n, uint64(n)+500)

		planarRe := append([]float64(nil), re...)
		planarIm := append([]float64(nil), im...)
		if err := Forward[float64](nil, planarRe, planarIm); err != nil {
			t.Fatal(err)
		}

		data := make([]float64, 2*n)
		for i := 0; i < n; i++ {
			data[2*i], data[2*i+1] = re[i], im[i]
		}
		if err := ForwardInterleaved[float64](nil, data, data, n, 1); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < n; i++ {
			if !closeEnough(data[2*i], planarRe[i], epsilon64*float64(n)) || !closeEnough(data[2*i+1], planarIm[i], epsilon64*float64(n)) {
				t.Fatalf("n=%d i=%d: interleaved (%v,%v) want (%v,%v)", n, i, data[2*i], data[2*i+1], planarRe[i], planarIm[i])
			}
		}
	}
}

func TestStridedMatchesContiguous(t *testing.T) {
	n := 16
	stride := 3
	re, im := randomSignal(n, 321)

	planarRe := append([]float64(nil), re...)
	planarIm := append([]float64(nil), im...)
	if err := Forward[float64](nil, planarRe, planarIm); err != nil {
		t.Fatal(err)
	}

	stridedRe := make([]float64, (n-1)*stride+1)
	stridedIm := make([]float64, (n-1)*stride+1)
	for i := 0; i < n; i++ {
		stridedRe[i*stride] = re[i]
		stridedIm[i*stride] = im[i]
	}
	if err := ForwardStrided[float64](nil, stridedRe, stridedIm, stride, stride, stridedRe, stridedIm, stride, stride, n, 1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if !closeEnough(stridedRe[i*stride], planarRe[i], epsilon64*float64(n)) || !closeEnough(stridedIm[i*stride], planarIm[i], epsilon64*float64(n)) {
			t.Fatalf("i=%d: strided (%v,%v) want (%v,%v)", i, stridedRe[i*stride], stridedIm[i*stride], planarRe[i], planarIm[i])
		}
	}
}

func TestParseval(t *testing.T) {
	n := 32
	re, im := randomSignal(n, 777)
	var energyIn float64
	for i := 0; i < n; i++ {
		energyIn += re[i]*re[i] + im[i]*im[i]
	}

	fr := append([]float64(nil), re...)
	fi := append([]float64(nil), im...)
	if err := Forward[float64](nil, fr, fi); err != nil {
		t.Fatal(err)
	}
	var energyOut float64
	for i := 0; i < n; i++ {
		energyOut += fr[i]*fr[i] + fi[i]*fi[i]
	}
	energyOut /= float64(n)
	if !closeEnough(energyIn, energyOut, 1e-6*float64(n)) {
		t.Fatalf("Parseval mismatch: time-domain energy %v, freq-domain energy/N %v", energyIn, energyOut)
	}
}

func TestLargeNPOTCarterGatlinPath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Carter-Gatlin-sized transform in short mode")
	}
	n := 1 << 17
	re := make([]float64, n)
	im := make([]float64, n)
	re[1] = 1
	orig := append([]float64(nil), re...)
	if err := Forward[float64](nil, re, im); err != nil {
		t.Fatal(err)
	}
	if err := Inverse[float64](nil, re, im); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if !closeEnough(re[i], orig[i], 1e-6) {
			t.Fatalf("i=%d: got %v want %v", i, re[i], orig[i])
		}
	}
}
