package geom

import (
	"github.com/pkg/errors"
)

var (
	// ErrDimensionMismatch is returned when two points of different
	// dimension are combined, or when an axis index falls outside a point.
	ErrDimensionMismatch = errors.New("point dimension mismatch")

	// ErrUnsupportedOperation is returned for point-by-point multiplication
	// or division, exponentiation and reflected subtraction or division.
	ErrUnsupportedOperation = errors.New("unsupported point operation")

	// ErrConstruction is returned when a point variant cannot be rebuilt
	// from a coordinate slice, which means the slice has the wrong arity.
	ErrConstruction = errors.New("point cannot be constructed from coordinates")

	// ErrInvalidArgument is returned when an operation receives an argument
	// of the wrong kind: a nil pivot, a non-finite angle, an unusable plane
	// or a non-numeric scalar.
	ErrInvalidArgument = errors.New("invalid argument")
)
