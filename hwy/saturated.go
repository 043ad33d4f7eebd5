// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"math"
	"unsafe"
)

// This file provides saturated conversions.
// Saturated operations clamp results to the type's valid range instead of wrapping.

// Clamp clamps each element to the range [lo, hi]: lanes >= hi become hi,
// otherwise lanes <= lo become lo. The upper bound is tested first, so
// inverted bounds resolve to hi. NaN lanes compare false both ways and pass
// through unchanged.
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	below := IfThenElse(LessEqual(v, lo), lo, v)
	return IfThenElse(GreaterEqual(v, hi), hi, below)
}

// IsSigned reports whether the integer type T is signed.
func IsSigned[T Integers]() bool {
	return ^T(0) < 0
}

// bitSize returns the width of T in bits.
func bitSize[T Integers]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IntLimits returns the lowest and highest values of integer type T as
// float64. For 64-bit types the highest value rounds up to 2^63 or 2^64,
// so it must be paired with ConvertSaturated rather than a plain cast.
func IntLimits[T Integers]() (lowest, highest float64) {
	bits := bitSize[T]()
	if IsSigned[T]() {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1) - 1
	}
	return 0, math.Ldexp(1, bits) - 1
}

// ConvertSaturated converts x to the integer type T, truncating toward zero
// and saturating at the type's range instead of wrapping.
// For example, uint8: 300.7 = 255, -4 = 0; int8: -200 = -128.
// NaN converts to zero.
func ConvertSaturated[T Integers](x float64) T {
	if math.IsNaN(x) {
		return 0
	}
	x = math.Trunc(x)
	bits := bitSize[T]()
	if IsSigned[T]() {
		lowest := T(1) << (bits - 1)
		if x <= -math.Ldexp(1, bits-1) {
			return lowest
		}
		if x >= math.Ldexp(1, bits-1) {
			return ^lowest
		}
		return T(int64(x))
	}
	if x <= 0 {
		return 0
	}
	if x >= math.Ldexp(1, bits) {
		return ^T(0)
	}
	return T(uint64(x))
}
