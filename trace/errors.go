package trace

import "errors"

// Construction-time failures. getPaths and every other query-time
// operation never returns an error: a beam either contributes a path or
// it doesn't.
var (
	// ErrTooFewVertices is returned when a polygon has fewer than 3 vertices.
	ErrTooFewVertices = errors.New("trace: polygon has fewer than 3 vertices")
	// ErrNonCoplanar is returned when a polygon's vertices don't lie on its plane.
	ErrNonCoplanar = errors.New("trace: polygon vertices are not coplanar")
	// ErrDegenerateArea is returned when a polygon's area is below the minimum aperture area.
	ErrDegenerateArea = errors.New("trace: polygon has zero or near-zero area")
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("trace: invalid configuration")
)
