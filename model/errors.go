package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a width or height below one
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrUnknownPattern is returned when a pattern name is not in the registry
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrOutOfBounds is returned when a pattern footprint does not fit inside the grid
	ErrOutOfBounds = errors.New("placement out of bounds")
	// ErrInvalidPattern is returned for empty, ragged or non-binary pattern matrices
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrDuplicatePattern is returned when a registry already holds a pattern with the same name
	ErrDuplicatePattern = errors.New("duplicate pattern")
	// ErrMalformedPlacement is returned for placement records that cannot be parsed
	ErrMalformedPlacement = errors.New("malformed placement record")
)
