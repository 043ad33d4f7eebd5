package pixel

import "errors"

// Sentinel errors. Callers match them with errors.Is; returned errors wrap
// them with the offending type or count.
var (
	// ErrUnclassifiableType is returned when a pixel type resolves to none of
	// the four kinds, or is a composite that cannot be sized.
	ErrUnclassifiableType = errors.New("pixel: unclassifiable pixel type")

	// ErrNotConfigured is returned when ComputeOutputComponentCount runs before
	// SetInputComponentCount, or Convert runs before ComputeOutputComponentCount.
	ErrNotConfigured = errors.New("pixel: converter not configured")

	// ErrScalarCountMismatch is returned when the flattened buffer length
	// disagrees with the negotiated scalar count.
	ErrScalarCountMismatch = errors.New("pixel: scalar count mismatch")

	// ErrComponentCount is returned for an input component count the source
	// type cannot hold.
	ErrComponentCount = errors.New("pixel: invalid component count")

	// ErrNaN is returned by Convert under NaNReject when the input holds a NaN.
	ErrNaN = errors.New("pixel: NaN in input")

	// ErrTypeMismatch is returned by ValueConverter.Convert when the value's
	// dynamic type is not the configured source type.
	ErrTypeMismatch = errors.New("pixel: value type mismatch")
)
