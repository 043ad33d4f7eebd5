//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures fall back to scalar mode.
	setScalarMode()
}

// HasF16C returns false outside amd64.
func HasF16C() bool {
	return false
}
