package pixel

import (
	"fmt"
	"reflect"
)

// state tracks the configuration lifecycle:
// unconfigured -> sizeKnown -> ready.
type state int

const (
	unconfigured state = iota
	sizeKnown
	ready
)

// kernel holds the negotiated sizes and bounds shared by Converter and
// ValueConverter.
type kernel struct {
	in, out *Type
	nan     NaNPolicy
	state   state

	lowest, highest float64

	inCount     int // source elements read per conversion
	scalarCount int // flattened length of the source elements
	outCount    int // destination elements written per conversion
}

func (k *kernel) setup(in, out reflect.Type, opts []Option) error {
	src, err := TypeOf(in)
	if err != nil {
		return fmt.Errorf("source type: %w", err)
	}
	dst, err := TypeOf(out)
	if err != nil {
		return fmt.Errorf("destination type: %w", err)
	}
	cfg := newConfig(opts)
	*k = kernel{in: src, out: dst, nan: cfg.nan}
	k.lowest, k.highest = dst.Limits()
	return nil
}

// SourceType returns the resolved source pixel type.
func (k *kernel) SourceType() *Type { return k.in }

// DestinationType returns the resolved destination pixel type.
func (k *kernel) DestinationType() *Type { return k.out }

// SetInputComponentCount declares how many source elements each conversion
// reads. Scalar and complex sources hold exactly one; fixed-size composites
// accept up to their length. A complex element counts once.
//
// Changing the count invalidates a previously computed output count.
func (k *kernel) SetInputComponentCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%d source components: %w", n, ErrComponentCount)
	}
	if fixed := k.in.FixedLen(); fixed > 0 && n > fixed {
		return fmt.Errorf("%d source components for %v holding %d: %w",
			n, k.in.rt, fixed, ErrComponentCount)
	}
	k.inCount = n
	k.scalarCount = n * scalarsPer(k.in.Leaf())
	k.outCount = 0
	k.state = sizeKnown
	return nil
}

// ComputeOutputComponentCount negotiates and returns the number of
// destination elements. Fixed-size destinations always get their own length;
// variable-length destinations get one element per scalar, or one per pair
// of scalars when their leaves are complex.
func (k *kernel) ComputeOutputComponentCount() (int, error) {
	if k.state == unconfigured {
		return 0, fmt.Errorf("output count requested before input count was set: %w", ErrNotConfigured)
	}
	switch {
	case k.out.FixedLen() > 0:
		k.outCount = k.out.FixedLen()
	case k.out.Leaf() == KindComplex:
		k.outCount = (k.scalarCount + 1) / 2
	default:
		k.outCount = k.scalarCount
	}
	k.state = ready
	return k.outCount, nil
}

// InputComponentCount returns the declared source element count.
func (k *kernel) InputComponentCount() int { return k.inCount }

// ScalarCount returns the flattened length of the declared source elements.
func (k *kernel) ScalarCount() int { return k.scalarCount }

// OutputComponentCount returns the negotiated destination element count,
// or zero before ComputeOutputComponentCount.
func (k *kernel) OutputComponentCount() int { return k.outCount }

// SetLowestBound sets the lower saturation bound for later conversions.
func (k *kernel) SetLowestBound(v float64) { k.lowest = v }

// SetHighestBound sets the upper saturation bound for later conversions.
func (k *kernel) SetHighestBound(v float64) { k.highest = v }

// Bounds returns the current saturation bounds.
func (k *kernel) Bounds() (lowest, highest float64) {
	return k.lowest, k.highest
}

// convert flattens src, clamps the buffer and reconstructs it into dst,
// which must be a settable zero value of the destination type.
func (k *kernel) convert(src, dst reflect.Value) error {
	if k.state != ready {
		return fmt.Errorf("conversion before output count negotiation: %w", ErrNotConfigured)
	}

	outPer := scalarsPer(k.out.Leaf())
	need := k.outCount * outPer
	buf := make([]float64, 0, max(k.scalarCount+1, need))

	avail := min(k.inCount, k.in.Len(src))
	for i := range avail {
		buf = Flatten(buf, k.in, src, i)
	}
	if len(buf) != k.scalarCount {
		return fmt.Errorf("flattened %d scalars from %d of %d %v elements, want %d: %w",
			len(buf), avail, k.inCount, k.in.rt, k.scalarCount, ErrScalarCountMismatch)
	}
	if k.nan == NaNReject && hasNaN(buf) {
		return ErrNaN
	}

	// The last complex element has an implicit zero imaginary part.
	if outPer == 2 && len(buf)%2 == 1 {
		buf = append(buf, 0)
	}
	// Fixed-size destinations may hold more elements than were flattened.
	for len(buf) < need {
		buf = append(buf, 0)
	}
	Clamp(buf, k.lowest, k.highest)

	k.out.Resize(dst, k.outCount)
	for i := range k.outCount {
		Reconstruct(buf, k.out, dst, i)
	}
	return nil
}

// Converter converts pixel values of type In into pixel values of type Out.
//
// Construct it once per type pair, call SetInputComponentCount and
// ComputeOutputComponentCount, optionally adjust the bounds, then call
// Convert once per pixel.
type Converter[In, Out any] struct {
	kernel
}

// NewConverter returns a converter from In to Out with bounds set to the
// limits of Out's leaf type. It fails with ErrUnclassifiableType if either
// type is not a pixel type.
func NewConverter[In, Out any](opts ...Option) (*Converter[In, Out], error) {
	c := &Converter[In, Out]{}
	if err := c.setup(reflect.TypeFor[In](), reflect.TypeFor[Out](), opts); err != nil {
		return nil, err
	}
	return c, nil
}

// Convert converts one pixel value.
func (c *Converter[In, Out]) Convert(in In) (Out, error) {
	var out Out
	err := c.convert(reflect.ValueOf(&in).Elem(), reflect.ValueOf(&out).Elem())
	if err != nil {
		var zero Out
		return zero, err
	}
	return out, nil
}

// ValueConverter is a Converter whose pixel types are chosen at run time.
type ValueConverter struct {
	kernel
}

// NewValueConverter returns a converter from pixel type in to pixel type out.
func NewValueConverter(in, out reflect.Type, opts ...Option) (*ValueConverter, error) {
	c := &ValueConverter{}
	if err := c.setup(in, out, opts); err != nil {
		return nil, err
	}
	return c, nil
}

// Convert converts one pixel value, which must have the source type exactly.
func (c *ValueConverter) Convert(in any) (any, error) {
	v := reflect.ValueOf(in)
	if !v.IsValid() || v.Type() != c.in.rt {
		return nil, fmt.Errorf("got %T, want %v: %w", in, c.in.rt, ErrTypeMismatch)
	}
	src := reflect.New(c.in.rt).Elem()
	src.Set(v)
	dst := reflect.New(c.out.rt).Elem()
	if err := c.convert(src, dst); err != nil {
		return nil, err
	}
	return dst.Interface(), nil
}
