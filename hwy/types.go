// Package hwy provides the numeric substrate of the pixel conversion kernels:
// lane type constraints, portable vector operations sized to the runtime
// SIMD width, saturating narrowing conversions and 16-bit float formats.
//
// Operations are written once against Vec and Mask and chunked by MaxLanes,
// so kernels built on them process buffers in register-sized steps:
//
//	lo, hi := hwy.Set(0.0), hwy.Set(1.0)
//	lanes := hwy.MaxLanes[float64]()
//	for i := 0; i+lanes <= len(buf); i += lanes {
//	    v := hwy.Load(buf[i:])
//	    hwy.Store(hwy.Clamp(v, lo, hi), buf[i:])
//	}
package hwy

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Complexes is a constraint for the built-in complex types. They are not
// lane types; kernels split them into real and imaginary float lanes.
type Complexes interface {
	constraints.Complex
}

// Vec is a portable vector handle that wraps SIMD operations.
// In base (scalar) mode, it wraps a slice.
//
// Vec instances should not be created directly; use Load or Set instead.
type Vec[T Lanes] struct {
	data []T
}

// Mask represents the result of a comparison operation.
// It is consumed by IfThenElse to select lanes.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits []bool
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}
