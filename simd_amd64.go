//go:build amd64 && !purego

package cfft

import "golang.org/x/sys/cpu"

// platformDetectSIMD mirrors celt/kissfft32_opt_amd64.go and
// internal/celt/imdct_amd64.go's cpu.X86.HasAVX/HasAVX2 dispatch, extended
// to the full width set spec.md §4.1 asks for. golang.org/x/sys/cpu reads
// CPUID and XGETBV(XCR0) itself and never executes an instruction from the
// feature class it is testing, so the probe never risks a SIGILL on an
// unsupported width.
func platformDetectSIMD() Width {
	var w Width
	// SSE2 is part of the amd64 baseline ABI: every amd64 process can use
	// it, so the narrowest float32/float64 widths are always present.
	w |= Width4F | Width2D
	if cpu.X86.HasAVX {
		w |= Width8F | Width4D
	}
	if cpu.X86.HasAVX2 {
		// AVX2 adds integer/FMA lanes the accuracy-sensitive twiddle path
		// doesn't need, but it confirms the 256-bit float lanes are fast
		// paths rather than microcoded, so widen the default here too.
		w |= Width8F | Width4D
	}
	if cpu.X86.HasAVX512F {
		w |= Width16F | Width8D
	}
	return w
}
