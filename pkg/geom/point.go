package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// KeyTolerance is the grid that coordinates are snapped to when a point
// is turned into a Key.
const KeyTolerance = 1e-9

// Vector is the read-only view shared by every point variant.
type Vector interface {
	// Dim returns the number of coordinates.
	Dim() int
	// Coord returns the i'th coordinate. It panics when i is out of range,
	// like indexing a slice.
	Coord(i int) float64
	// Coords returns a copy of all coordinates.
	Coords() []float64
}

// Kind is implemented by point variants that can rebuild themselves from
// a coordinate slice of their own arity. P is the variant itself.
type Kind[P any] interface {
	Vector
	WithCoords(c []float64) (P, error)
}

// Mutable is implemented by pointers to point variants.
type Mutable interface {
	Vector
	SetCoord(i int, v float64) error
}

// Key identifies a point by its coordinates, snapped to KeyTolerance.
// Two points with the same Key are treated as the same vertex.
type Key string

// Point is a point of arbitrary dimension.
//
// Point is a value type. SetCoord copies the backing slice before writing,
// so copies of a Point never observe each other's updates.
type Point struct {
	c []float64
}

// NewPoint returns a point with the given coordinates.
func NewPoint(first float64, rest ...float64) Point {
	c := make([]float64, 0, 1+len(rest))
	c = append(c, first)
	c = append(c, rest...)
	return Point{c: c}
}

// Snapshot copies any vector into a Point.
func Snapshot(v Vector) Point {
	return Point{c: v.Coords()}
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p.c) }

// Coord returns the i'th coordinate.
func (p Point) Coord(i int) float64 { return p.c[i] }

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float64 { return append([]float64(nil), p.c...) }

// Key returns the structural identity of p.
func (p Point) Key() Key { return keyOf(p) }

// Equal reports whether o has exactly the same coordinates as p.
func (p Point) Equal(o Vector) bool { return equal(p, o) }

func (p Point) String() string { return format("Point", p) }

// WithCoords returns a Point holding a copy of c.
func (p Point) WithCoords(c []float64) (Point, error) {
	if len(c) == 0 {
		return Point{}, errors.Wrap(ErrConstruction, "Point needs at least one coordinate")
	}
	return Point{c: append([]float64(nil), c...)}, nil
}

// SetCoord replaces the i'th coordinate.
func (p *Point) SetCoord(i int, v float64) error {
	if i < 0 || i >= len(p.c) {
		return errors.Wrapf(ErrDimensionMismatch, "axis %d outside %d-dimensional point", i, len(p.c))
	}
	c := append([]float64(nil), p.c...)
	c[i] = v
	p.c = c
	return nil
}

// Rotate rotates p in place. See the package-level Rotate.
func (p *Point) Rotate(about Vector, angle float64, plane Plane) (*Point, error) {
	return Rotate(p, about, angle, plane)
}

// Slice returns the coordinates in [lo, hi) of v. Both bounds are
// clamped to [0, Dim()], and an empty slice is returned when hi <= lo.
func Slice(v Vector, lo, hi int) []float64 {
	n := v.Dim()
	lo = min(max(lo, 0), n)
	hi = min(max(hi, 0), n)
	if hi <= lo {
		return []float64{}
	}
	return v.Coords()[lo:hi]
}

func keyOf(v Vector) Key {
	var b strings.Builder
	for i := 0; i < v.Dim(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		// Adding zero folds -0 into +0.
		snapped := math.Round(v.Coord(i)/KeyTolerance) + 0
		b.WriteString(strconv.FormatFloat(snapped, 'f', 0, 64))
	}
	return Key(b.String())
}

func format(name string, v Vector) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i := 0; i < v.Dim(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v.Coord(i), 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

func equal(a, b Vector) bool {
	if IsNil(b) || a.Dim() != b.Dim() {
		return false
	}
	for i := 0; i < a.Dim(); i++ {
		if a.Coord(i) != b.Coord(i) {
			return false
		}
	}
	return true
}
