package cfft

// butterflyBlock combines a size-b block split into low/high halves (LR/LI,
// HR/HI) through a running twiddle (C, S), spec.md §4.5. When the block is
// small enough that all b of its twiddles are already in the precomputed
// buffer (log2b <= cfg.TwiddlesBufLog2()), each pair is rotated by tr[i]/
// ti[i] further rotated by the running (C, S). Otherwise the block is split
// into two size-(b/2) halves and the combine recurses, folding one freshly
// computed root of unity (X, Y) = cexp(log2n-log2b+1) into the running
// multiplier carried into the high half — (C*X-S*Y, S*X+C*Y). This
// recursive multiplier chaining is the accuracy guarantee spec.md §9 calls
// out: every level only ever multiplies two already-accurate factors
// together instead of synthesizing a twiddle from scratch at the block's
// full resolution, transcribed from dbcF_butterfly_block in
// _examples/original_source/dbc_fft.h.
func butterflyBlock[T Float](cfg *Config[T], log2n, log2b int, LR, LI, HR, HI []T, realStride, imagStride int, C, S T, inverse bool, tr, ti []T) {
	b := 1 << uint(log2b)
	h := b >> 1

	if log2b <= cfg.TwiddlesBufLog2() {
		j, k := 0, 0
		for i := 0; i < b; i++ {
			c := C*tr[i] - S*ti[i]
			s := S*tr[i] + C*ti[i]
			xl, yl := LR[j], LI[k]
			xr, yr := HR[j], HI[k]
			x := c*xr - s*yr
			y := s*xr + c*yr
			LR[j], LI[k] = xl+x, yl+y
			HR[j], HI[k] = xl-x, yl-y
			j += realStride
			k += imagStride
		}
		return
	}

	X, Y := cexp[T](log2n - log2b + 1)
	if !inverse {
		Y = -Y
	}
	butterflyBlock(cfg, log2n, log2b-1, LR, LI, HR, HI, realStride, imagStride, C, S, inverse, tr, ti)
	butterflyBlock(cfg, log2n, log2b-1, LR[h*realStride:], LI[h*imagStride:], HR[h*realStride:], HI[h*imagStride:], realStride, imagStride, C*X-S*Y, S*X+C*Y, inverse, tr, ti)
}

// butterflyPass applies one complete radix-2 stage of size n=2^log2n across
// c=2^log2c contiguous blocks, spec.md §4.6, transcribed from
// dbcF_butterfly_pass. When the precomputed buffer holds the whole pass's
// twiddles (log2n-1 <= log2t), each block is combined directly off tr/ti.
// When it doesn't — the buffer only reaches log2t < log2n-1 — every block
// instead goes through butterflyBlock, which supplies the missing
// resolution via the recursive multiplier chain above. This dual path is
// the "twiddle-layout contract" spec.md §9 calls symmetric: the buffer's
// size is fixed by the config, independent of the transform, and the pass
// adapts to whatever resolution the buffer holds.
func butterflyPass[T Float](cfg *Config[T], log2n, log2c int, real, imag []T, realStride, imagStride int, inverse bool, log2t int, tr, ti []T) {
	if log2n == 0 {
		return
	}
	n := 1 << uint(log2n)
	h := n >> 1
	c := 1 << uint(log2c)
	LR, LI := real, imag
	HR, HI := real[h*realStride:], imag[h*imagStride:]

	if log2n-1 <= log2t {
		if h > 1 {
			for i := 0; i < c; i++ {
				j, k := 0, 0
				for d := 0; d < h; d++ {
					C, S := tr[d], ti[d]
					xl, yl := LR[j], LI[k]
					xr, yr := HR[j], HI[k]
					x := C*xr - S*yr
					y := S*xr + C*yr
					LR[j], LI[k] = xl+x, yl+y
					HR[j], HI[k] = xl-x, yl-y
					j += realStride
					k += imagStride
				}
				if i+1 < c {
					LR, LI = LR[n*realStride:], LI[n*imagStride:]
					HR, HI = HR[n*realStride:], HI[n*imagStride:]
				}
			}
			return
		}
		for i := 0; i < c; i++ {
			xl, yl := LR[0], LI[0]
			xr, yr := HR[0], HI[0]
			LR[0], LI[0] = xl+xr, yl+yr
			HR[0], HI[0] = xl-xr, yl-yr
			if i+1 < c {
				LR, LI = LR[n*realStride:], LI[n*imagStride:]
				HR, HI = HR[n*realStride:], HI[n*imagStride:]
			}
		}
		return
	}

	for i := 0; i < c; i++ {
		butterflyBlock(cfg, log2n, log2n-1, LR, LI, HR, HI, realStride, imagStride, one[T](), zero[T](), inverse, tr, ti)
		if i+1 < c {
			LR, LI = LR[n*realStride:], LI[n*imagStride:]
			HR, HI = HR[n*realStride:], HI[n*imagStride:]
		}
	}
}

// butterflyMultipass runs a series of depth passes down to (log2n, log2c),
// spec.md §4.7, transcribed from dbcF_butterfly_multipass. Three scheduling
// choices from the original are preserved: (1) the SIMD back-end (see
// simd_widths.go) gets first refusal on however many of the remaining
// passes it can run at once; (2) once exactly log2n passes remain and at
// least 3 do, the bottom three passes collapse into a direct sweep of fft8
// leaves (spec.md §4.4) instead of three separate generic passes; (3)
// otherwise one ordinary pass runs per iteration, with twiddles rebuilt to
// the buffer's bound (log2t) each time.
func butterflyMultipass[T Float](cfg *Config[T], log2n, log2c, depth int, real, imag []T, realStride, imagStride int, inverse bool, tr, ti []T) {
	for depth > 0 {
		if d := butterflyMultipassSIMD(cfg, log2n, log2c, depth, real, imag, realStride, imagStride, inverse, tr, ti); d > 0 {
			depth -= d
			continue
		}
		if depth == log2n && depth >= 3 {
			m := 1 << uint(log2n+log2c-3)
			c, _ := cexp[T](3)
			for j := 0; j < m; j++ {
				fft8(real[8*realStride*j:], imag[8*imagStride*j:], realStride, imagStride, inverse, c)
			}
			depth -= 3
			continue
		}
		log2d := log2n - depth + 1
		log2t := log2d - 1
		if bufLog2 := cfg.TwiddlesBufLog2(); log2t > bufLog2 {
			log2t = bufLog2
		}
		computeTwiddles(log2d, log2t, tr, ti, inverse)
		butterflyPass(cfg, log2d, log2c+log2n-log2d, real, imag, realStride, imagStride, inverse, log2t, tr, ti)
		depth--
	}
}

// butterfly is the top-level combine driver for a power-of-two transform
// already in bit-reversed order (spec.md §4.4/§4.9), transcribed from
// dbcF_butterfly. Past log2n=12 the transform is split into two halves,
// each combined independently by a recursive call, before a single
// top-level multipass of depth 1 stitches them together — the original's
// own answer to a stage whose twiddle table would otherwise outgrow any
// reasonable scratch. log2n<=2 is never reached here: those sizes are
// handled directly by fftPOTCore's closed-form leaves (see pot.go).
func butterfly[T Float](cfg *Config[T], real, imag []T, realStride, imagStride, log2n int, tr, ti []T, inverse bool) {
	if log2n > 12 {
		half := 1 << uint(log2n-1)
		butterfly(cfg, real, imag, realStride, imagStride, log2n-1, tr, ti, inverse)
		butterfly(cfg, real[half*realStride:], imag[half*imagStride:], realStride, imagStride, log2n-1, tr, ti, inverse)
		butterflyMultipass(cfg, log2n, 0, 1, real, imag, realStride, imagStride, inverse, tr, ti)
		return
	}
	butterflyMultipass(cfg, log2n, 0, log2n, real, imag, realStride, imagStride, inverse, tr, ti)
}
