package pixel

import (
	"math"
	"reflect"
	"strconv"
	"unsafe"

	"golang.org/x/image/math/fixed"

	"github.com/ajroetker/go-pixconv/hwy"
)

// ComplexInt is a complex sample with integer parts, the layout used by
// radar products that store interleaved integer (re, im) pairs.
type ComplexInt[T hwy.SignedInts] struct {
	Re, Im T
}

// ComplexInt16 is a complex sample with int16 parts.
type ComplexInt16 = ComplexInt[int16]

// ComplexInt32 is a complex sample with int32 parts.
type ComplexInt32 = ComplexInt[int32]

// leaf reads and writes one scalar or complex sample through a pointer to it.
// Writes saturate to [lowest, highest], the natural domain of the sample type.
type leaf struct {
	kind            Kind
	lowest, highest float64
	get             func(p unsafe.Pointer) (re, im float64)
	set             func(p unsafe.Pointer, re, im float64)
}

func intLeaf[T hwy.Integers]() *leaf {
	lowest, highest := hwy.IntLimits[T]()
	return &leaf{
		kind:    KindScalar,
		lowest:  lowest,
		highest: highest,
		get: func(p unsafe.Pointer) (float64, float64) {
			return float64(*(*T)(p)), 0
		},
		set: func(p unsafe.Pointer, re, _ float64) {
			*(*T)(p) = hwy.ConvertSaturated[T](re)
		},
	}
}

func floatLeaf[T hwy.Floats]() *leaf {
	highest := math.MaxFloat64
	if unsafe.Sizeof(T(0)) == 4 {
		highest = math.MaxFloat32
	}
	return &leaf{
		kind:    KindScalar,
		lowest:  -highest,
		highest: highest,
		get: func(p unsafe.Pointer) (float64, float64) {
			return float64(*(*T)(p)), 0
		},
		set: func(p unsafe.Pointer, re, _ float64) {
			*(*T)(p) = T(saturate(re, -highest, highest))
		},
	}
}

func float16Leaf() *leaf {
	highest := hwy.Float16MaxValue.Float64()
	return &leaf{
		kind:    KindScalar,
		lowest:  -highest,
		highest: highest,
		get: func(p unsafe.Pointer) (float64, float64) {
			return (*(*hwy.Float16)(p)).Float64(), 0
		},
		set: func(p unsafe.Pointer, re, _ float64) {
			*(*hwy.Float16)(p) = hwy.Float16FromFloat64(saturate(re, -highest, highest))
		},
	}
}

func bfloat16Leaf() *leaf {
	highest := hwy.BFloat16MaxValue.Float64()
	return &leaf{
		kind:    KindScalar,
		lowest:  -highest,
		highest: highest,
		get: func(p unsafe.Pointer) (float64, float64) {
			return (*(*hwy.BFloat16)(p)).Float64(), 0
		},
		set: func(p unsafe.Pointer, re, _ float64) {
			*(*hwy.BFloat16)(p) = hwy.BFloat16FromFloat64(saturate(re, -highest, highest))
		},
	}
}

func complexLeaf[C hwy.Complexes]() *leaf {
	highest := math.MaxFloat64
	if unsafe.Sizeof(C(0)) == 8 {
		highest = math.MaxFloat32
	}
	return &leaf{
		kind:    KindComplex,
		lowest:  -highest,
		highest: highest,
		get: func(p unsafe.Pointer) (float64, float64) {
			c := complex128(*(*C)(p))
			return real(c), imag(c)
		},
		set: func(p unsafe.Pointer, re, im float64) {
			*(*C)(p) = C(complex(saturate(re, -highest, highest), saturate(im, -highest, highest)))
		},
	}
}

func complexIntLeaf[T hwy.SignedInts]() *leaf {
	lowest, highest := hwy.IntLimits[T]()
	return &leaf{
		kind:    KindComplex,
		lowest:  lowest,
		highest: highest,
		get: func(p unsafe.Pointer) (float64, float64) {
			c := (*ComplexInt[T])(p)
			return float64(c.Re), float64(c.Im)
		},
		set: func(p unsafe.Pointer, re, im float64) {
			c := (*ComplexInt[T])(p)
			c.Re = hwy.ConvertSaturated[T](re)
			c.Im = hwy.ConvertSaturated[T](im)
		},
	}
}

// fixedLeaf reads a fixed-point sample with fracBits fractional bits as its
// real value. Writes truncate toward zero at the sample's resolution.
func fixedLeaf[T hwy.SignedInts](fracBits int) *leaf {
	scale := math.Ldexp(1, fracBits)
	lowest, highest := hwy.IntLimits[T]()
	return &leaf{
		kind:    KindScalar,
		lowest:  lowest / scale,
		highest: highest / scale,
		get: func(p unsafe.Pointer) (float64, float64) {
			return float64(*(*T)(p)) / scale, 0
		},
		set: func(p unsafe.Pointer, re, _ float64) {
			*(*T)(p) = hwy.ConvertSaturated[T](re * scale)
		},
	}
}

// namedLeaves are matched by type identity before the underlying kind is
// consulted, so Float16 is not mistaken for a uint16 sample.
var namedLeaves = map[reflect.Type]*leaf{
	reflect.TypeFor[hwy.Float16]():       float16Leaf(),
	reflect.TypeFor[hwy.BFloat16]():      bfloat16Leaf(),
	reflect.TypeFor[fixed.Int26_6]():     fixedLeaf[fixed.Int26_6](6),
	reflect.TypeFor[fixed.Int52_12]():    fixedLeaf[fixed.Int52_12](12),
	reflect.TypeFor[ComplexInt[int8]]():  complexIntLeaf[int8](),
	reflect.TypeFor[ComplexInt[int16]](): complexIntLeaf[int16](),
	reflect.TypeFor[ComplexInt[int32]](): complexIntLeaf[int32](),
	reflect.TypeFor[ComplexInt[int64]](): complexIntLeaf[int64](),
}

var kindLeaves = map[reflect.Kind]*leaf{
	reflect.Int8:       intLeaf[int8](),
	reflect.Int16:      intLeaf[int16](),
	reflect.Int32:      intLeaf[int32](),
	reflect.Int64:      intLeaf[int64](),
	reflect.Uint8:      intLeaf[uint8](),
	reflect.Uint16:     intLeaf[uint16](),
	reflect.Uint32:     intLeaf[uint32](),
	reflect.Uint64:     intLeaf[uint64](),
	reflect.Float32:    floatLeaf[float32](),
	reflect.Float64:    floatLeaf[float64](),
	reflect.Complex64:  complexLeaf[complex64](),
	reflect.Complex128: complexLeaf[complex128](),
}

func init() {
	// int and uint share the layout of the fixed-size type of the same width.
	if strconv.IntSize == 64 {
		kindLeaves[reflect.Int] = intLeaf[int64]()
		kindLeaves[reflect.Uint] = intLeaf[uint64]()
	} else {
		kindLeaves[reflect.Int] = intLeaf[int32]()
		kindLeaves[reflect.Uint] = intLeaf[uint32]()
	}
}

// leafFor returns the codec for a scalar or complex type, or nil if t is not
// a leaf.
func leafFor(t reflect.Type) *leaf {
	if l, ok := namedLeaves[t]; ok {
		return l
	}
	return kindLeaves[t.Kind()]
}
