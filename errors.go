package tterm

import "errors"

// Sentinel errors for the tterm package.
var (
	// ErrInvalidColor is returned by ParseColor for malformed input.
	ErrInvalidColor = errors.New("tterm: invalid color")

	// ErrNilCache is returned when a renderer is created without a cache.
	ErrNilCache = errors.New("tterm: nil font cache")
)
