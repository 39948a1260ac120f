package utils

import "errors"

// Sentinel errors shared by the geometry, assembly and configuration layers.
// Callers match them with errors.Is; producers wrap them with context.
var (
	// ErrInvalidConfiguration is returned before any assembly work starts when
	// the run parameters cannot describe a valid boundary or grid.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDegenerateSegment is returned when two consecutive boundary points
	// coincide and a segment tangent cannot be normalized.
	ErrDegenerateSegment = errors.New("degenerate boundary segment")
)
