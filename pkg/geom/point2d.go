package geom

import (
	"math"

	"github.com/pkg/errors"
)

// Point2D is a point in the plane, typically a screen coordinate.
type Point2D struct {
	c [2]float64
}

// NewPoint2D returns the point (x, y).
func NewPoint2D(x, y float64) Point2D {
	return Point2D{c: [2]float64{x, y}}
}

func (p Point2D) Dim() int            { return 2 }
func (p Point2D) Coord(i int) float64 { return p.c[i] }
func (p Point2D) Coords() []float64   { return []float64{p.c[0], p.c[1]} }
func (p Point2D) X() float64          { return p.c[0] }
func (p Point2D) Y() float64          { return p.c[1] }

// Key returns the structural identity of p.
func (p Point2D) Key() Key { return keyOf(p) }

// Equal reports whether o has exactly the same coordinates as p.
func (p Point2D) Equal(o Vector) bool { return equal(p, o) }

func (p Point2D) String() string { return format("Point2D", p) }

// WithCoords builds a Point2D from exactly two coordinates.
func (Point2D) WithCoords(c []float64) (Point2D, error) {
	if len(c) != 2 {
		return Point2D{}, errors.Wrapf(ErrConstruction, "Point2D from %d coordinates", len(c))
	}
	return NewPoint2D(c[0], c[1]), nil
}

// SetCoord replaces the i'th coordinate.
func (p *Point2D) SetCoord(i int, v float64) error {
	if i < 0 || i >= 2 {
		return errors.Wrapf(ErrDimensionMismatch, "axis %d outside Point2D", i)
	}
	p.c[i] = v
	return nil
}

func (p *Point2D) SetX(v float64) { p.c[0] = v }
func (p *Point2D) SetY(v float64) { p.c[1] = v }

func (p Point2D) Add(o Point2D) Point2D {
	return NewPoint2D(p.c[0]+o.c[0], p.c[1]+o.c[1])
}

func (p Point2D) Sub(o Point2D) Point2D {
	return NewPoint2D(p.c[0]-o.c[0], p.c[1]-o.c[1])
}

func (p Point2D) Scale(k float64) Point2D {
	return NewPoint2D(p.c[0]*k, p.c[1]*k)
}

func (p Point2D) Neg() Point2D {
	return NewPoint2D(-p.c[0], -p.c[1])
}

// DistTo returns the Euclidean distance between p and o.
func (p Point2D) DistTo(o Point2D) float64 {
	return math.Hypot(o.c[0]-p.c[0], o.c[1]-p.c[1])
}

// Direction returns the unit vector pointing from p toward o. When the
// two points coincide there is no direction and the zero vector is
// returned.
func (p Point2D) Direction(o Point2D) Point2D {
	dx, dy := o.c[0]-p.c[0], o.c[1]-p.c[1]
	if dx == 0 && dy == 0 {
		return Point2D{}
	}
	angle := math.Atan2(dy, dx)
	return NewPoint2D(math.Cos(angle), math.Sin(angle))
}

// RotateAbout returns p rotated by angle radians around about. Unlike
// Rotate it needs no plane and leaves p untouched.
func (p Point2D) RotateAbout(about Point2D, angle float64) Point2D {
	d := p.Sub(about)
	r := math.Hypot(d.c[0], d.c[1])
	target := math.Atan2(d.c[1], d.c[0]) + angle
	return about.Add(NewPoint2D(math.Cos(target), math.Sin(target)).Scale(r))
}

// Rotate rotates p in place inside plane. See the package-level Rotate.
func (p *Point2D) Rotate(about Vector, angle float64, plane Plane) (*Point2D, error) {
	return Rotate(p, about, angle, plane)
}

// To3D embeds p in 3D space at depth zero.
func (p Point2D) To3D() Point3D {
	return NewPoint3D(p.c[0], p.c[1], 0)
}
