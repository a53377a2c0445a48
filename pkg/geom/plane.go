package geom

import (
	"github.com/pkg/errors"
)

// Plane masks a point down to two of its axes. It is the rotation plane
// used by Rotate: the projection of (x, y, z) on PlaneXZ is (x, z).
//
// The projection is abstract. It does not remember which space it came
// from; callers write results back onto the original axes themselves.
type Plane struct {
	basis [2]int
	valid bool
}

var (
	PlaneXY = Plane{basis: [2]int{0, 1}, valid: true}
	PlaneXZ = Plane{basis: [2]int{0, 2}, valid: true}
	PlaneYZ = Plane{basis: [2]int{1, 2}, valid: true}
)

// NewPlane returns the plane spanned by exactly two distinct axes.
func NewPlane(basis ...int) (Plane, error) {
	if len(basis) != 2 {
		return Plane{}, errors.Wrapf(ErrInvalidArgument, "plane needs exactly 2 axes, got %d", len(basis))
	}
	if basis[0] < 0 || basis[1] < 0 || basis[0] == basis[1] {
		return Plane{}, errors.Wrapf(ErrInvalidArgument, "plane axes %v", basis)
	}
	return Plane{basis: [2]int{basis[0], basis[1]}, valid: true}, nil
}

// Basis returns the two axis indices of the plane.
func (pl Plane) Basis() (int, int) {
	return pl.basis[0], pl.basis[1]
}

// Valid reports whether pl was built by NewPlane or is one of the
// predefined planes. The zero Plane is not valid.
func (pl Plane) Valid() bool {
	return pl.valid
}

// Projection returns the two basis coordinates of p as a 2-dimensional
// Point.
func (pl Plane) Projection(p Vector) (Point, error) {
	if !pl.valid {
		return Point{}, errors.Wrap(ErrInvalidArgument, "projection onto the zero plane")
	}
	if IsNil(p) {
		return Point{}, errors.Wrap(ErrInvalidArgument, "projection of a nil point")
	}
	i, j := pl.Basis()
	if i >= p.Dim() || j >= p.Dim() {
		return Point{}, errors.Wrapf(ErrDimensionMismatch, "plane (%d, %d) on %s", i, j, describe(p))
	}
	return NewPoint(p.Coord(i), p.Coord(j)), nil
}
