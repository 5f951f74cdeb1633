//go:build (!amd64 && !arm64) || purego

package cfft

// platformDetectSIMD on architectures the pack has no SIMD grounding for (or
// under the purego build tag, which the teacher's amd64/arm64 files also
// respect) reports no usable width; every driver takes the portable scalar
// path. Config.ForceSIMD still lets a caller exercise the width-specialized
// code on such a build for testing.
func platformDetectSIMD() Width { return 0 }
