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

// BFloat16 represents a Brain Float 16 (bfloat16) number: a float32 with
// the lower 16 mantissa bits dropped. It keeps the float32 exponent range
// at roughly 2.4 decimal digits of precision.
type BFloat16 uint16

// BFloat16 constants for special values.
const (
	BFloat16Zero     BFloat16 = 0x0000
	BFloat16One      BFloat16 = 0x3F80
	BFloat16MaxValue BFloat16 = 0x7F7F // ~3.39e38
	BFloat16Inf      BFloat16 = 0x7F80
	BFloat16NegInf   BFloat16 = 0xFF80
	BFloat16NaN      BFloat16 = 0x7FC0 // quiet NaN
)

// Float32 widens h to float32. The conversion is exact.
func (h BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(h) << 16)
}

// Float64 widens h to float64. The conversion is exact.
func (h BFloat16) Float64() float64 {
	return float64(h.Float32())
}

// IsNaN reports whether h is a NaN.
func (h BFloat16) IsNaN() bool {
	return h&0x7F80 == 0x7F80 && h&0x7F != 0
}

// BFloat16FromFloat32 rounds f to the nearest BFloat16, ties to even.
func BFloat16FromFloat32(f float32) BFloat16 {
	b := math.Float32bits(f)
	if b&0x7FFFFFFF > 0x7F800000 {
		// Keep the sign, force a quiet NaN so truncation cannot yield Inf.
		return BFloat16(b>>16) | 0x0040
	}
	b += 0x7FFF + (b>>16)&1
	return BFloat16(b >> 16)
}

// BFloat16FromFloat64 rounds f to the nearest BFloat16, ties to even.
func BFloat16FromFloat64(f float64) BFloat16 {
	return BFloat16FromFloat32(narrowToOdd(f))
}
