package chainmap

import "errors"

var (
	// ErrInvalidArgument is returned when a map is constructed with a
	// non-positive capacity, chain count or load factor.
	ErrInvalidArgument = errors.New("chainmap: invalid argument")

	// ErrNoMoreElements is the panic value of Next on an exhausted iterator.
	ErrNoMoreElements = errors.New("chainmap: no more elements")
)
