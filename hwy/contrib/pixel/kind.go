package pixel

import (
	"fmt"
	"reflect"
)

// Kind classifies a pixel type by shape.
type Kind int

const (
	// KindScalar is a single real number.
	KindScalar Kind = iota

	// KindComplex is a single number with real and imaginary parts.
	KindComplex

	// KindCompositeOfScalar is a slice or array whose leaves are real.
	KindCompositeOfScalar

	// KindCompositeOfComplex is a slice or array whose leaves are complex.
	KindCompositeOfComplex
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindComplex:
		return "complex"
	case KindCompositeOfScalar:
		return "composite-of-scalar"
	case KindCompositeOfComplex:
		return "composite-of-complex"
	default:
		return "unknown"
	}
}

// IsComposite reports whether k is one of the composite kinds.
func (k Kind) IsComposite() bool {
	return k == KindCompositeOfScalar || k == KindCompositeOfComplex
}

// Leaf returns the innermost kind: KindScalar or KindComplex.
func (k Kind) Leaf() Kind {
	switch k {
	case KindComplex, KindCompositeOfComplex:
		return KindComplex
	default:
		return KindScalar
	}
}

// Classify returns the kind of pixel type t. It looks only at the type's
// shape: composites are resolved by classifying their element type until a
// scalar or complex leaf is reached.
func Classify(t reflect.Type) (Kind, error) {
	if t == nil {
		return 0, fmt.Errorf("nil type: %w", ErrUnclassifiableType)
	}
	if l := leafFor(t); l != nil {
		return l.kind, nil
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		inner, err := Classify(t.Elem())
		if err != nil {
			return 0, fmt.Errorf("element of %v: %w", t, err)
		}
		if inner.Leaf() == KindComplex {
			return KindCompositeOfComplex, nil
		}
		return KindCompositeOfScalar, nil
	}
	return 0, fmt.Errorf("%v: %w", t, ErrUnclassifiableType)
}

// ClassifyOf returns the kind of the pixel type P.
func ClassifyOf[P any]() (Kind, error) {
	return Classify(reflect.TypeFor[P]())
}
