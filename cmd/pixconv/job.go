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

package main

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/image/math/fixed"

	"github.com/ajroetker/go-pixconv/hwy"
	"github.com/ajroetker/go-pixconv/hwy/contrib/pixel"
)

// leafTypes maps type names accepted on the command line to Go types.
var leafTypes = map[string]reflect.Type{
	"int8":       reflect.TypeFor[int8](),
	"int16":      reflect.TypeFor[int16](),
	"int32":      reflect.TypeFor[int32](),
	"int64":      reflect.TypeFor[int64](),
	"int":        reflect.TypeFor[int](),
	"uint8":      reflect.TypeFor[uint8](),
	"byte":       reflect.TypeFor[byte](),
	"uint16":     reflect.TypeFor[uint16](),
	"uint32":     reflect.TypeFor[uint32](),
	"uint64":     reflect.TypeFor[uint64](),
	"uint":       reflect.TypeFor[uint](),
	"float16":    reflect.TypeFor[hwy.Float16](),
	"fixed26_6":  reflect.TypeFor[fixed.Int26_6](),
	"fixed52_12": reflect.TypeFor[fixed.Int52_12](),
	"bfloat16":   reflect.TypeFor[hwy.BFloat16](),
	"float32":    reflect.TypeFor[float32](),
	"float64":    reflect.TypeFor[float64](),
	"complex64":  reflect.TypeFor[complex64](),
	"complex128": reflect.TypeFor[complex128](),
	"cint8":      reflect.TypeFor[pixel.ComplexInt[int8]](),
	"cint16":     reflect.TypeFor[pixel.ComplexInt16](),
	"cint32":     reflect.TypeFor[pixel.ComplexInt32](),
	"cint64":     reflect.TypeFor[pixel.ComplexInt[int64]](),
}

// TypeNames returns the accepted leaf type names, sorted.
func TypeNames() []string {
	names := lo.Keys(leafTypes)
	slices.Sort(names)
	return names
}

// parseType resolves a type name such as "uint8", "[]complex64" or
// "[3][]float32" to a Go type.
func parseType(name string) (reflect.Type, error) {
	name = strings.TrimSpace(name)
	if t, ok := leafTypes[name]; ok {
		return t, nil
	}
	if rest, ok := strings.CutPrefix(name, "[]"); ok {
		elem, err := parseType(rest)
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	}
	if strings.HasPrefix(name, "[") {
		size, rest, ok := strings.Cut(name[1:], "]")
		if !ok {
			return nil, fmt.Errorf("type %q: unterminated array length", name)
		}
		n, err := strconv.Atoi(size)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("type %q: invalid array length %q", name, size)
		}
		elem, err := parseType(rest)
		if err != nil {
			return nil, err
		}
		return reflect.ArrayOf(n, elem), nil
	}
	return nil, fmt.Errorf("unknown type %q (want one of %s, optionally prefixed by [] or [N])",
		name, strings.Join(TypeNames(), ", "))
}

// Job is one conversion requested on the command line.
type Job struct {
	From, To string
	Values   []string

	// Count is the source component count; zero means len(Values).
	Count int

	// Lowest and Highest override the destination limits when non-nil.
	Lowest, Highest *float64

	// NaN is the NaN policy name accepted by pixel.ParseNaNPolicy.
	NaN string
}

// Run converts the job's value and returns the destination components
// formatted one per element.
func (j *Job) Run() ([]string, error) {
	in, err := parseType(j.From)
	if err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	out, err := parseType(j.To)
	if err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}
	policy := pixel.NaNPropagate
	if j.NaN != "" {
		if policy, err = pixel.ParseNaNPolicy(j.NaN); err != nil {
			return nil, fmt.Errorf("--nan: %w", err)
		}
	}

	conv, err := pixel.NewValueConverter(in, out, pixel.WithNaNPolicy(policy))
	if err != nil {
		return nil, err
	}
	src, err := buildValue(conv.SourceType(), j.Values)
	if err != nil {
		return nil, err
	}

	n := j.Count
	if n == 0 {
		n = len(j.Values)
	}
	if err := conv.SetInputComponentCount(n); err != nil {
		return nil, err
	}
	outCount, err := conv.ComputeOutputComponentCount()
	if err != nil {
		return nil, err
	}
	if j.Lowest != nil {
		conv.SetLowestBound(*j.Lowest)
	}
	if j.Highest != nil {
		conv.SetHighestBound(*j.Highest)
	}

	result, err := conv.Convert(src.Interface())
	if err != nil {
		return nil, err
	}
	return formatValue(conv.DestinationType(), reflect.ValueOf(result), outCount), nil
}

// buildValue parses values into a new value of type t, one element each.
func buildValue(t *pixel.Type, values []string) (reflect.Value, error) {
	if len(values) == 0 {
		return reflect.Value{}, fmt.Errorf("no values to convert")
	}
	v := reflect.New(t.ReflectType()).Elem()
	if size := t.FixedLen(); size == 0 {
		t.Resize(v, len(values))
	} else if len(values) > size {
		return reflect.Value{}, fmt.Errorf("%d values given but %v holds %d", len(values), t.ReflectType(), size)
	}
	for i, s := range values {
		c, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("value %d: %w", i, err)
		}
		if t.Leaf() == pixel.KindScalar && imag(c) != 0 {
			return reflect.Value{}, fmt.Errorf("value %d (%s): %v samples have no imaginary part", i, s, t.ReflectType())
		}
		t.SetComponent(v, i, real(c), imag(c))
	}
	return v, nil
}

func formatValue(t *pixel.Type, v reflect.Value, n int) []string {
	return lo.Map(lo.Range(n), func(i, _ int) string {
		re, im := t.Component(v, i)
		if t.Leaf() == pixel.KindComplex {
			return strconv.FormatComplex(complex(re, im), 'g', -1, 128)
		}
		return strconv.FormatFloat(re, 'g', -1, 64)
	})
}
