package cfft

import "sync"

// Width is a bitmask over the SIMD lane widths the butterfly back-end can
// target. Each bit names a (lane count, element type) pair: "4f" is 4 lanes
// of float32, "2d" is 2 lanes of float64, and so on. A zero Width means no
// SIMD path is usable and every driver falls back to the scalar kernel.
type Width uint32

const (
	Width4F  Width = 1 << iota // 4 lanes of float32 (128-bit)
	Width8F                    // 8 lanes of float32 (256-bit)
	Width16F                   // 16 lanes of float32 (512-bit)
	Width2D                    // 2 lanes of float64 (128-bit)
	Width4D                    // 4 lanes of float64 (256-bit)
	Width8D                    // 8 lanes of float64 (512-bit)
)

// widthLanes returns how many T-sized lanes a Width processes per iteration.
func widthLanes(w Width) int {
	switch w {
	case Width2D:
		return 2
	case Width4F, Width4D:
		return 4
	case Width8F, Width8D:
		return 8
	case Width16F:
		return 16
	default:
		return 0
	}
}

var (
	simdCacheOnce sync.Once
	simdCacheVal  Width
)

// DetectSIMD reports which SIMD widths this process may safely use. With
// cache=true the underlying CPU/OS probe runs at most once per process
// (the design notes call for a lazy, write-once cell rather than a
// read-modify-write; sync.Once gives exactly that), and concurrent first
// calls all wait for that single probe to finish. With cache=false the probe always
// re-executes, which is safe from any number of goroutines but repeats the
// (cheap) CPUID/XGETBV work on every call.
func DetectSIMD(cache bool) Width {
	if !cache {
		return platformDetectSIMD()
	}
	simdCacheOnce.Do(func() {
		simdCacheVal = platformDetectSIMD()
	})
	return simdCacheVal
}

// effectiveSIMD folds a Config's ForceSIMD/ForbidSIMD overrides into the
// probed mask. ForceSIMD, when nonzero, replaces the probed result outright
// (used to exercise a specific width's code path regardless of what the
// host CPU actually supports); ForbidSIMD always subtracts from whatever
// mask results.
func effectiveSIMD[T Float](cfg *Config[T]) Width {
	w := DetectSIMD(cfg.CacheSIMD)
	if cfg.ForceSIMD != 0 {
		w = cfg.ForceSIMD
	}
	return w &^ cfg.ForbidSIMD
}

// widthsForType restricts a capability mask to the widths relevant to T,
// widest first, since butterflyMultipassSIMD wants to try the widest
// usable width before narrower ones.
func widthsForType[T Float](w Width) []Width {
	var zero T
	switch any(zero).(type) {
	case float32:
		return filterPresent(w, Width16F, Width8F, Width4F)
	case float64:
		return filterPresent(w, Width8D, Width4D, Width2D)
	default:
		return nil
	}
}

func filterPresent(w Width, candidates ...Width) []Width {
	out := make([]Width, 0, len(candidates))
	for _, c := range candidates {
		if w&c != 0 {
			out = append(out, c)
		}
	}
	return out
}
