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

import "math"

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number,
// the sample format of half-float images.
//
// Format: Sign (1 bit) | Exponent (5 bits, bias 15) | Mantissa (10 bits)
//
// The largest finite value is 65504.
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero     Float16 = 0x0000
	Float16One      Float16 = 0x3C00
	Float16MaxValue Float16 = 0x7BFF // 65504
	Float16Inf      Float16 = 0x7C00
	Float16NegInf   Float16 = 0xFC00
	Float16NaN      Float16 = 0x7E00 // quiet NaN

	float16SignMask = 0x8000
)

// Float32 widens h to float32. The conversion is exact.
func (h Float16) Float32() float32 {
	sign := uint32(h&float16SignMask) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF
	switch exp {
	case 0:
		// zero or subnormal: mant * 2^-24
		f := float32(mant) / (1 << 24)
		if sign != 0 {
			f = -f
		}
		return f
	case 0x1F:
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	}
	return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
}

// Float64 widens h to float64. The conversion is exact.
func (h Float16) Float64() float64 {
	return float64(h.Float32())
}

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x3FF != 0
}

// Float16FromFloat32 rounds f to the nearest Float16, ties to even.
// Values beyond the finite range become infinities; NaN stays NaN.
func Float16FromFloat32(f float32) Float16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & float16SignMask
	exp := int32(b>>23&0xFF) - 127 + 15
	mant := b & 0x7FFFFF

	switch {
	case b&0x7FFFFFFF > 0x7F800000:
		return Float16(sign) | Float16NaN
	case exp >= 0x1F:
		return Float16(sign) | Float16Inf
	case exp <= 0:
		if exp < -10 {
			return Float16(sign)
		}
		// Subnormal: shift the full significand into the 10-bit field.
		mant |= 0x800000
		shift := uint32(14 - exp)
		return Float16(sign | uint16(roundShift(mant, shift)))
	}
	// Carry out of the mantissa correctly bumps the exponent, up to Inf.
	r := uint32(exp)<<10 | roundShift(mant, 13)
	return Float16(sign | uint16(r))
}

// Float16FromFloat64 rounds f to the nearest Float16, ties to even.
func Float16FromFloat64(f float64) Float16 {
	return Float16FromFloat32(narrowToOdd(f))
}

// narrowToOdd narrows f to float32 rounding to odd: the magnitude is
// truncated and the lowest mantissa bit is set when any bits were dropped.
// Rounding the result once more to a format at least two bits narrower
// gives the same value as rounding f directly.
func narrowToOdd(f float64) float32 {
	t := float32(f)
	if math.IsNaN(f) || float64(t) == f {
		return t
	}
	b := math.Float32bits(t)
	if math.Abs(float64(t)) > math.Abs(f) {
		b--
	}
	return math.Float32frombits(b | 1)
}

// roundShift returns v >> shift rounded to nearest, ties to even.
func roundShift(v, shift uint32) uint32 {
	r := v >> shift
	rem := v & (1<<shift - 1)
	half := uint32(1) << (shift - 1)
	if rem > half || (rem == half && r&1 == 1) {
		r++
	}
	return r
}
