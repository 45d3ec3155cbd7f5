package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("gridgraph: width and height must be positive")
)
