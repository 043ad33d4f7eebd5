package pixel

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"

	"github.com/ajroetker/go-pixconv/hwy"
)

func TestTypeFixedLen(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want int
	}{
		{reflect.TypeFor[uint8](), 1},
		{reflect.TypeFor[complex64](), 1},
		{reflect.TypeFor[[4]uint16](), 4},
		{reflect.TypeFor[[2][3]float32](), 6},
		{reflect.TypeFor[[]float32](), 0},
		{reflect.TypeFor[[][3]uint8](), 0},
	}
	for _, tt := range tests {
		pt, err := TypeOf(tt.typ)
		if err != nil {
			t.Fatalf("TypeOf(%v): %v", tt.typ, err)
		}
		if got := pt.FixedLen(); got != tt.want {
			t.Errorf("%v.FixedLen() = %d, want %d", tt.typ, got, tt.want)
		}
		if pt.ReflectType() != tt.typ {
			t.Errorf("ReflectType() = %v, want %v", pt.ReflectType(), tt.typ)
		}
	}
}

func TestTypeRejectsNestedVariableLength(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeFor[[][]uint8](),
		reflect.TypeFor[[2][]float32](),
	} {
		if _, err := TypeOf(typ); !errors.Is(err, ErrUnclassifiableType) {
			t.Errorf("TypeOf(%v): got err %v, want ErrUnclassifiableType", typ, err)
		}
	}
}

func TestTypeRejectsZeroLengthArray(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeFor[[0]float32](),
		reflect.TypeFor[[][0]uint8](),
		reflect.TypeFor[[3][0]complex64](),
	} {
		if _, err := TypeOf(typ); !errors.Is(err, ErrUnclassifiableType) {
			t.Errorf("TypeOf(%v): got err %v, want ErrUnclassifiableType", typ, err)
		}
	}
}

func TestTypeLimits(t *testing.T) {
	tests := []struct {
		typ             reflect.Type
		lowest, highest float64
	}{
		{reflect.TypeFor[uint8](), 0, 255},
		{reflect.TypeFor[int8](), -128, 127},
		{reflect.TypeFor[[]int16](), -32768, 32767},
		{reflect.TypeFor[uint32](), 0, math.MaxUint32},
		{reflect.TypeFor[float32](), -math.MaxFloat32, math.MaxFloat32},
		{reflect.TypeFor[[]complex64](), -math.MaxFloat32, math.MaxFloat32},
		{reflect.TypeFor[complex128](), -math.MaxFloat64, math.MaxFloat64},
		{reflect.TypeFor[ComplexInt16](), -32768, 32767},
		{reflect.TypeFor[hwy.Float16](), -65504, 65504},
		{reflect.TypeFor[fixed.Int26_6](), -(1 << 25), (1<<31 - 1) / 64.0},
	}
	for _, tt := range tests {
		pt, err := TypeOf(tt.typ)
		if err != nil {
			t.Fatalf("TypeOf(%v): %v", tt.typ, err)
		}
		lo, hi := pt.Limits()
		if lo != tt.lowest || hi != tt.highest {
			t.Errorf("%v.Limits() = (%g, %g), want (%g, %g)", tt.typ, lo, hi, tt.lowest, tt.highest)
		}
	}
}

func TestTypeComponentNested(t *testing.T) {
	pt, err := TypeFor[[][3]uint8]()
	if err != nil {
		t.Fatal(err)
	}
	px := [][3]uint8{{1, 2, 3}, {4, 5, 6}}
	v := reflect.ValueOf(px)
	if got := pt.Len(v); got != 6 {
		t.Fatalf("Len = %d, want 6", got)
	}
	var got []float64
	for i := range pt.Len(v) {
		re, im := pt.Component(v, i)
		if im != 0 {
			t.Errorf("Component(%d) imag = %g, want 0", i, im)
		}
		got = append(got, re)
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5, 6}, got); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeComponentUnaddressableArray(t *testing.T) {
	pt, err := TypeFor[[2]complex64]()
	if err != nil {
		t.Fatal(err)
	}
	re, im := pt.Component(reflect.ValueOf([2]complex64{1 + 2i, 3 - 4i}), 1)
	if re != 3 || im != -4 {
		t.Errorf("Component(1) = (%g, %g), want (3, -4)", re, im)
	}
}

func TestTypeSetComponentSaturates(t *testing.T) {
	pt, err := TypeFor[[]ComplexInt16]()
	if err != nil {
		t.Fatal(err)
	}
	var px []ComplexInt16
	v := reflect.ValueOf(&px).Elem()
	pt.Resize(v, 2)
	pt.SetComponent(v, 0, 1e6, -1e6)
	pt.SetComponent(v, 1, 12.9, -12.9)
	want := []ComplexInt16{{Re: 32767, Im: -32768}, {Re: 12, Im: -12}}
	if diff := cmp.Diff(want, px); diff != "" {
		t.Errorf("SetComponent mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeSetComponentHalf(t *testing.T) {
	pt, err := TypeFor[[2]hwy.Float16]()
	if err != nil {
		t.Fatal(err)
	}
	var px [2]hwy.Float16
	v := reflect.ValueOf(&px).Elem()
	pt.SetComponent(v, 0, 1, 0)
	pt.SetComponent(v, 1, 1e9, 0)
	if px[0] != hwy.Float16One {
		t.Errorf("px[0] = %#04x, want %#04x", uint16(px[0]), uint16(hwy.Float16One))
	}
	if px[1] != hwy.Float16MaxValue {
		t.Errorf("px[1] = %#04x, want max value", uint16(px[1]))
	}
}

func TestTypeFixedPoint(t *testing.T) {
	pt, err := TypeFor[[]fixed.Int26_6]()
	if err != nil {
		t.Fatal(err)
	}
	if pt.Kind() != KindCompositeOfScalar {
		t.Fatalf("Kind() = %v, want %v", pt.Kind(), KindCompositeOfScalar)
	}
	px := []fixed.Int26_6{fixed.I(3), 0, 0}
	v := reflect.ValueOf(&px).Elem()
	if re, _ := pt.Component(v, 0); re != 3 {
		t.Errorf("Component(0) = %g, want 3", re)
	}
	pt.SetComponent(v, 1, -2.5, 0)
	pt.SetComponent(v, 2, 1e12, 0)
	if px[1] != -fixed.I(2)-32 {
		t.Errorf("px[1] = %v, want -2:32", px[1])
	}
	if px[2] != math.MaxInt32 {
		t.Errorf("px[2] = %v, want saturated", px[2])
	}
}

func TestTypeResize(t *testing.T) {
	pt, err := TypeFor[[][2]float32]()
	if err != nil {
		t.Fatal(err)
	}
	px := [][2]float32{{1, 2}}
	v := reflect.ValueOf(&px).Elem()

	pt.Resize(v, 5)
	if len(px) != 3 {
		t.Fatalf("len after Resize(5) = %d, want 3", len(px))
	}
	if px[0] != [2]float32{1, 2} {
		t.Errorf("Resize dropped leading element: %v", px[0])
	}

	fixed, err := TypeFor[[3]uint8]()
	if err != nil {
		t.Fatal(err)
	}
	arr := [3]uint8{7, 8, 9}
	fixed.Resize(reflect.ValueOf(&arr).Elem(), 10)
	if arr != [3]uint8{7, 8, 9} {
		t.Errorf("Resize on array changed it: %v", arr)
	}
}

func TestFlattenReconstruct(t *testing.T) {
	src, err := TypeFor[[]complex128]()
	if err != nil {
		t.Fatal(err)
	}
	in := []complex128{1 + 2i, -3 + 4i}
	v := reflect.ValueOf(in)
	var buf []float64
	for i := range 2 {
		buf = Flatten(buf, src, v, i)
	}
	if diff := cmp.Diff([]float64{1, 2, -3, 4}, buf); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}

	dst, err := TypeFor[[4]int32]()
	if err != nil {
		t.Fatal(err)
	}
	var out [4]int32
	ov := reflect.ValueOf(&out).Elem()
	for i := range 4 {
		Reconstruct(buf, dst, ov, i)
	}
	if out != [4]int32{1, 2, -3, 4} {
		t.Errorf("Reconstruct = %v", out)
	}

	var back []complex128
	bv := reflect.ValueOf(&back).Elem()
	src.Resize(bv, 2)
	for i := range 2 {
		Reconstruct(buf, src, bv, i)
	}
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
