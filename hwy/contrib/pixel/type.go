package pixel

import (
	"fmt"
	"reflect"
)

// Type is the numeric-traits view of a pixel type, resolved once per type.
//
// Counts are always counts of elements: a complex sample is one element,
// and component i of a nested composite is its i-th leaf in row-major order.
// Methods taking a reflect.Value expect a value of the described type;
// SetComponent and Resize also need it to be settable.
type Type struct {
	rt    reflect.Type
	kind  Kind
	leaf  *leaf
	elem  *Type // element type of a composite, nil for leaves
	fixed int   // element count fixed by the type, 0 if variable-length
}

// TypeOf resolves the pixel type t.
func TypeOf(t reflect.Type) (*Type, error) {
	kind, err := Classify(t)
	if err != nil {
		return nil, err
	}
	if l := leafFor(t); l != nil {
		return &Type{rt: t, kind: kind, leaf: l, fixed: 1}, nil
	}

	elem, err := TypeOf(t.Elem())
	if err != nil {
		return nil, err
	}
	if elem.fixed == 0 {
		return nil, fmt.Errorf("%v: variable-length element %v cannot be indexed: %w",
			t, elem.rt, ErrUnclassifiableType)
	}
	pt := &Type{rt: t, kind: kind, leaf: elem.leaf, elem: elem}
	if t.Kind() == reflect.Array {
		if t.Len() == 0 {
			return nil, fmt.Errorf("%v: zero-length array holds no components: %w", t, ErrUnclassifiableType)
		}
		pt.fixed = t.Len() * elem.fixed
	}
	return pt, nil
}

// TypeFor resolves the pixel type P.
func TypeFor[P any]() (*Type, error) {
	return TypeOf(reflect.TypeFor[P]())
}

// Kind returns the kind of the type.
func (t *Type) Kind() Kind { return t.kind }

// Leaf returns the kind of the innermost sample: KindScalar or KindComplex.
func (t *Type) Leaf() Kind { return t.leaf.kind }

// ReflectType returns the Go type described by t.
func (t *Type) ReflectType() reflect.Type { return t.rt }

func (t *Type) String() string {
	return fmt.Sprintf("%v (%v)", t.rt, t.kind)
}

// FixedLen returns the element count fixed by the type: 1 for scalar and
// complex types, the total leaf count for arrays, and 0 for variable-length
// composites.
func (t *Type) FixedLen() int { return t.fixed }

// Limits returns the lowest and highest finite values of the leaf sample type.
func (t *Type) Limits() (lowest, highest float64) {
	return t.leaf.lowest, t.leaf.highest
}

// Len returns the element count of v.
func (t *Type) Len(v reflect.Value) int {
	if t.fixed > 0 {
		return t.fixed
	}
	return v.Len() * t.elem.fixed
}

// Component returns the real and imaginary parts of element i of v.
// The imaginary part of a scalar leaf is zero.
func (t *Type) Component(v reflect.Value, i int) (re, im float64) {
	if !v.CanAddr() {
		tmp := reflect.New(t.rt).Elem()
		tmp.Set(v)
		v = tmp
	}
	return t.leaf.get(t.locate(v, i).Addr().UnsafePointer())
}

// SetComponent writes element i of v, saturating to the leaf's limits.
// The imaginary part is ignored for scalar leaves.
func (t *Type) SetComponent(v reflect.Value, i int, re, im float64) {
	t.leaf.set(t.locate(v, i).Addr().UnsafePointer(), re, im)
}

// Resize makes a variable-length v hold n elements, keeping the leading
// ones. It is a no-op for fixed-size types.
func (t *Type) Resize(v reflect.Value, n int) {
	if t.fixed > 0 {
		return
	}
	per := t.elem.fixed
	outer := (n + per - 1) / per
	if v.Len() == outer {
		return
	}
	s := reflect.MakeSlice(t.rt, outer, outer)
	reflect.Copy(s, v)
	v.Set(s)
}

// locate descends through composite nesting to the leaf holding element i.
func (t *Type) locate(v reflect.Value, i int) reflect.Value {
	if t.elem == nil {
		return v
	}
	per := t.elem.fixed
	return t.elem.locate(v.Index(i/per), i%per)
}
