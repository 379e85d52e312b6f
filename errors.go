package dtagen

import "errors"

// Standard errors returned by the fixture suite
var (
	// ErrEmptySuite indicates that no fixture cases are registered
	ErrEmptySuite = errors.New("dtagen: empty fixture suite")

	// ErrUnknownCompression indicates an unrecognized compression name
	ErrUnknownCompression = errors.New("dtagen: unknown compression type")
)
