package maskblur

import "errors"

// Errors returned by the blur entry points. The engine never logs and never
// retries; it reports exactly one of these to the immediate caller and
// leaves no partially written mask behind.
var (
	// ErrUnsupportedFormat reports a source mask whose Format is not
	// FormatA8. Nothing is allocated before this check.
	ErrUnsupportedFormat = errors.New("maskblur: unsupported mask format")

	// ErrInvalidRadius reports a blur radius that is not positive after
	// quality adjustment.
	ErrInvalidRadius = errors.New("maskblur: blur radius must be > 0")

	// ErrAllocationTooLarge reports a destination or scratch buffer whose
	// computed size is empty or not representable.
	ErrAllocationTooLarge = errors.New("maskblur: mask allocation too large")
)
