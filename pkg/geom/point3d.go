package geom

import (
	"github.com/pkg/errors"
)

// Projector maps a 3D point onto the screen.
type Projector interface {
	Project(p Point3D) Point2D
}

// Point3D is the vertex type of all 3D geometry. Screen conventions
// apply: x grows to the right, y grows down and z grows into the screen.
type Point3D struct {
	c [3]float64
}

// NewPoint3D returns the point (x, y, z).
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{c: [3]float64{x, y, z}}
}

func (p Point3D) Dim() int            { return 3 }
func (p Point3D) Coord(i int) float64 { return p.c[i] }
func (p Point3D) Coords() []float64   { return []float64{p.c[0], p.c[1], p.c[2]} }
func (p Point3D) X() float64          { return p.c[0] }
func (p Point3D) Y() float64          { return p.c[1] }
func (p Point3D) Z() float64          { return p.c[2] }

// Key returns the structural identity of p.
func (p Point3D) Key() Key { return keyOf(p) }

// Equal reports whether o has exactly the same coordinates as p.
func (p Point3D) Equal(o Vector) bool { return equal(p, o) }

func (p Point3D) String() string { return format("Point3D", p) }

// WithCoords builds a Point3D from exactly three coordinates.
func (Point3D) WithCoords(c []float64) (Point3D, error) {
	if len(c) != 3 {
		return Point3D{}, errors.Wrapf(ErrConstruction, "Point3D from %d coordinates", len(c))
	}
	return NewPoint3D(c[0], c[1], c[2]), nil
}

// SetCoord replaces the i'th coordinate.
func (p *Point3D) SetCoord(i int, v float64) error {
	if i < 0 || i >= 3 {
		return errors.Wrapf(ErrDimensionMismatch, "axis %d outside Point3D", i)
	}
	p.c[i] = v
	return nil
}

func (p *Point3D) SetX(v float64) { p.c[0] = v }
func (p *Point3D) SetY(v float64) { p.c[1] = v }
func (p *Point3D) SetZ(v float64) { p.c[2] = v }

func (p Point3D) Add(o Point3D) Point3D {
	return NewPoint3D(p.c[0]+o.c[0], p.c[1]+o.c[1], p.c[2]+o.c[2])
}

func (p Point3D) Sub(o Point3D) Point3D {
	return NewPoint3D(p.c[0]-o.c[0], p.c[1]-o.c[1], p.c[2]-o.c[2])
}

func (p Point3D) Scale(k float64) Point3D {
	return NewPoint3D(p.c[0]*k, p.c[1]*k, p.c[2]*k)
}

func (p Point3D) Neg() Point3D {
	return NewPoint3D(-p.c[0], -p.c[1], -p.c[2])
}

// Rotate rotates p in place inside plane. See the package-level Rotate.
func (p *Point3D) Rotate(about Vector, angle float64, plane Plane) (*Point3D, error) {
	return Rotate(p, about, angle, plane)
}

// Flatten drops the depth coordinate.
func (p Point3D) Flatten() Point2D {
	return NewPoint2D(p.c[0], p.c[1])
}

// To2D projects p onto the screen.
func (p Point3D) To2D(pr Projector) Point2D {
	return pr.Project(p)
}
