package geom

import (
	"math"

	"github.com/pkg/errors"
)

// Rotate rotates p in place by angle radians around about, confined to
// plane. Both points are projected onto the plane, the bearing from the
// pivot to p is advanced by angle and the two resulting coordinates are
// written back onto the plane's axes. All other axes of p are untouched.
// The mutated p is returned for chaining.
func Rotate[P Mutable](p P, about Vector, angle float64, plane Plane) (P, error) {
	if IsNil(p) {
		return p, errors.Wrap(ErrInvalidArgument, "rotated point is nil")
	}
	if IsNil(about) {
		return p, errors.Wrap(ErrInvalidArgument, "rotation pivot is nil")
	}
	if !isFinite(angle) {
		return p, errors.Wrapf(ErrInvalidArgument, "rotation angle %v", angle)
	}
	if !plane.Valid() {
		return p, errors.Wrap(ErrInvalidArgument, "rotation plane is the zero Plane")
	}

	self, err := plane.Projection(p)
	if err != nil {
		return p, err
	}
	axis, err := plane.Projection(about)
	if err != nil {
		return p, err
	}

	dx := self.Coord(0) - axis.Coord(0)
	dy := self.Coord(1) - axis.Coord(1)
	r := math.Hypot(dx, dy)
	target := math.Atan2(dy, dx) + angle

	i, j := plane.Basis()
	if err := p.SetCoord(i, axis.Coord(0)+r*math.Cos(target)); err != nil {
		return p, err
	}
	if err := p.SetCoord(j, axis.Coord(1)+r*math.Sin(target)); err != nil {
		return p, err
	}
	return p, nil
}
