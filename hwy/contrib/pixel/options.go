package pixel

import "fmt"

// NaNPolicy selects how Convert treats NaN samples.
type NaNPolicy int

const (
	// NaNPropagate leaves NaN unclamped. Floating-point destinations receive
	// NaN; integer destinations receive zero.
	NaNPropagate NaNPolicy = iota

	// NaNReject makes Convert fail with ErrNaN.
	NaNReject
)

func (p NaNPolicy) String() string {
	switch p {
	case NaNPropagate:
		return "propagate"
	case NaNReject:
		return "reject"
	default:
		return fmt.Sprintf("NaNPolicy(%d)", int(p))
	}
}

// ParseNaNPolicy parses "propagate" or "reject".
func ParseNaNPolicy(s string) (NaNPolicy, error) {
	switch s {
	case "propagate":
		return NaNPropagate, nil
	case "reject":
		return NaNReject, nil
	}
	return 0, fmt.Errorf("pixel: unknown NaN policy %q", s)
}

// config holds construction-time settings.
type config struct {
	nan NaNPolicy
}

// Option configures a converter at construction.
type Option func(*config)

// WithNaNPolicy sets the NaN policy. It panics on a value outside the
// declared policies.
func WithNaNPolicy(p NaNPolicy) Option {
	if p != NaNPropagate && p != NaNReject {
		panic(fmt.Sprintf("pixel: WithNaNPolicy(%v): unknown policy", p))
	}
	return func(c *config) { c.nan = p }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
