//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available as part of ARMv8-A.
	// SVE hardware still reports 128-bit chunks here: the SVE vector length
	// is only known inside streaming code, which this package never emits.
	switch {
	case cpu.ARM64.HasSVE:
		setLevel(DispatchSVE, 16)
	case cpu.ARM64.HasASIMD:
		setLevel(DispatchNEON, 16)
	default:
		setScalarMode()
	}
}

// HasF16C returns false on arm64; F16C is an x86 extension.
func HasF16C() bool {
	return false
}
