package pixel

import "reflect"

// Flatten appends element i of v to buf: one sample for a scalar leaf, the
// real then imaginary part for a complex leaf.
func Flatten(buf []float64, t *Type, v reflect.Value, i int) []float64 {
	re, im := t.Component(v, i)
	if t.Leaf() == KindComplex {
		return append(buf, re, im)
	}
	return append(buf, re)
}

// Reconstruct writes element i of v from buf, the inverse of Flatten: a
// scalar leaf reads buf[i], a complex leaf reads buf[2i] and buf[2i+1].
func Reconstruct(buf []float64, t *Type, v reflect.Value, i int) {
	if t.Leaf() == KindComplex {
		t.SetComponent(v, i, buf[2*i], buf[2*i+1])
		return
	}
	t.SetComponent(v, i, buf[i], 0)
}

// scalarsPer returns the buffer slots one element of a leaf kind occupies.
func scalarsPer(leaf Kind) int {
	if leaf == KindComplex {
		return 2
	}
	return 1
}
