package hlist

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (or used as panic values) by List operations.
var (
	// ErrIndexOutOfRange is returned when an index is outside the valid
	// range for the operation.
	ErrIndexOutOfRange = errors.New("hlist: index out of range")

	// ErrNilFunc is the panic value (wrapped) when a nil function is passed
	// to a higher-order operation.
	ErrNilFunc = errors.New("hlist: nil function")

	// ErrInvalidWindowSize is the panic value (wrapped) when Windowed is
	// called with size <= 0.
	ErrInvalidWindowSize = errors.New("hlist: window size must be greater than 0")
)

func indexError(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}

// mustFunc panics when a required function argument is missing.
func mustFunc(missing bool, op string) {
	if missing {
		panic(fmt.Errorf("%w: %s", ErrNilFunc, op))
	}
}
