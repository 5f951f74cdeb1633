//go:build arm64 && !purego

package cfft

import "golang.org/x/sys/cpu"

// platformDetectSIMD mirrors the arm64 half of the teacher's build-tag split
// (celt/kf_bfly_asm.go, celt/haar1_asm.go: "arm64 || amd64"). NEON (ASIMD) is
// mandatory on arm64, so it is always reported; there is no 512-bit or
// float64-only wide lane on this architecture in the pack's target set.
func platformDetectSIMD() Width {
	if cpu.ARM64.HasASIMD {
		return Width4F | Width2D
	}
	return 0
}
