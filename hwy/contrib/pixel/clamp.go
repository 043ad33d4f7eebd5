package pixel

import "github.com/ajroetker/go-pixconv/hwy"

// Clamp saturates every sample of buf in place: x >= highest becomes highest,
// otherwise x <= lowest becomes lowest. NaN compares false both ways and is
// left untouched.
func Clamp(buf []float64, lowest, highest float64) {
	lo := hwy.Set(lowest)
	hi := hwy.Set(highest)
	lanes := hwy.MaxLanes[float64]()
	i := 0

	// Process full vectors
	for ; i+lanes <= len(buf); i += lanes {
		hwy.Store(hwy.Clamp(hwy.Load(buf[i:]), lo, hi), buf[i:])
	}

	// Handle tail elements via buffer
	if remaining := len(buf) - i; remaining > 0 {
		tail := make([]float64, lanes)
		copy(tail, buf[i:])
		hwy.Store(hwy.Clamp(hwy.Load(tail), lo, hi), tail)
		copy(buf[i:], tail[:remaining])
	}
}

// saturate is the scalar form of Clamp.
func saturate(x, lowest, highest float64) float64 {
	if x >= highest {
		return highest
	}
	if x <= lowest {
		return lowest
	}
	return x
}

// hasNaN reports whether buf holds a NaN.
func hasNaN(buf []float64) bool {
	lanes := hwy.MaxLanes[float64]()
	for i := 0; i < len(buf); i += lanes {
		if hwy.IsNaN(hwy.Load(buf[i:])).AnyTrue() {
			return true
		}
	}
	return false
}
