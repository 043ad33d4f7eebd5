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

// Package pixel converts pixel values between representations, saturating
// out-of-range samples to the destination's domain.
//
// A pixel type is one of four kinds: a real scalar, a complex number, or a
// composite (slice or array) whose leaves are scalars or complex numbers.
// Each conversion runs the same three steps over a canonical float64 buffer:
//
//	Flatten     source components -> buffer (complex leaves add re, im)
//	Clamp       buffer saturated to [lowest, highest]
//	Reconstruct buffer -> destination components
//
// # Usage
//
//	conv, err := pixel.NewConverter[[]uint16, []complex64]()
//	if err != nil { ... }
//	if err := conv.SetInputComponentCount(3); err != nil { ... }
//	n, err := conv.ComputeOutputComponentCount() // n == 2
//	out, err := conv.Convert([]uint16{1, 2, 3})  // [(1+2i) (3+0i)]
//
// Bounds default to the destination leaf type's numeric limits and can be
// narrowed with SetLowestBound and SetHighestBound.
//
// # Concurrency
//
// A configured Converter may be shared by goroutines calling Convert. The
// setters must not run concurrently with Convert; callers serialize them or
// give each goroutine its own Converter.
//
// # NaN
//
// Clamp leaves NaN untouched. By default a NaN reaches floating-point
// destinations as NaN and integer destinations as zero; WithNaNPolicy(NaNReject)
// turns it into ErrNaN instead.
package pixel
