package shape

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/chazu/painter3d/pkg/geom"
)

// Drawable is implemented by everything the renderer knows how to draw.
type Drawable interface {
	drawable()
}

// Polygon is a closed loop of vertices of one point variant. Vertex i is
// joined to vertex i+1 and the last vertex is joined back to the first.
type Polygon[P geom.Kind[P]] struct {
	vertices []P
	color    Color
}

// Polygon2D is a polygon already in screen space.
type Polygon2D = Polygon[geom.Point2D]

// Face is a planar loop of 3D vertices, one facet of a solid.
type Face = Polygon[geom.Point3D]

// NewPolygon returns a polygon over a copy of vertices.
func NewPolygon[P geom.Kind[P]](vertices []P, color Color) (*Polygon[P], error) {
	if len(vertices) < 3 {
		return nil, errors.Wrapf(ErrVertexCount, "got %d", len(vertices))
	}
	dim := vertices[0].Dim()
	for i, v := range vertices[1:] {
		if v.Dim() != dim {
			return nil, errors.Wrapf(ErrVertexType, "vertex %d has dimension %d, want %d", i+1, v.Dim(), dim)
		}
	}
	return &Polygon[P]{
		vertices: append([]P(nil), vertices...),
		color:    color,
	}, nil
}

// NewPolygon2D returns a screen-space polygon.
func NewPolygon2D(vertices []geom.Point2D, color Color) (*Polygon2D, error) {
	return NewPolygon(vertices, color)
}

// NewFace returns a 3D face.
func NewFace(vertices []geom.Point3D, color Color) (*Face, error) {
	return NewPolygon(vertices, color)
}

func (p *Polygon[P]) drawable() {}

// Vertices returns a copy of the vertex loop.
func (p *Polygon[P]) Vertices() []P {
	return append([]P(nil), p.vertices...)
}

// Vertex returns the i'th vertex.
func (p *Polygon[P]) Vertex(i int) P {
	return p.vertices[i]
}

func (p *Polygon[P]) Len() int     { return len(p.vertices) }
func (p *Polygon[P]) Color() Color { return p.color }

// SetColor replaces the fill color.
func (p *Polygon[P]) SetColor(c Color) {
	p.color = c
}

// Edges returns the vertex pairs of the closed loop.
func (p *Polygon[P]) Edges() [][2]P {
	edges := make([][2]P, len(p.vertices))
	for i, v := range p.vertices {
		edges[i] = [2]P{v, p.vertices[(i+1)%len(p.vertices)]}
	}
	return edges
}

// Coords returns the raw coordinates of every vertex.
func (p *Polygon[P]) Coords() [][]float64 {
	out := make([][]float64, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.Coords()
	}
	return out
}

// Center returns the arithmetic mean of the vertices.
func (p *Polygon[P]) Center() (P, error) {
	sum := make([]float64, p.vertices[0].Dim())
	for _, v := range p.vertices {
		floats.Add(sum, v.Coords())
	}
	floats.Scale(1/float64(len(p.vertices)), sum)
	return p.vertices[0].WithCoords(sum)
}

// RotateFace rotates every vertex of f in place. The pivot is copied
// first, so it may safely be one of f's own vertices.
func RotateFace(f *Face, about geom.Vector, angle float64, plane geom.Plane) error {
	if geom.IsNil(about) {
		return errors.Wrap(geom.ErrInvalidArgument, "rotation pivot is nil")
	}
	pivot := geom.Snapshot(about)
	for i := range f.vertices {
		if _, err := f.vertices[i].Rotate(pivot, angle, plane); err != nil {
			return errors.Wrapf(err, "rotate vertex %d", i)
		}
	}
	return nil
}

// TranslateFace moves every vertex of f by offset.
func TranslateFace(f *Face, offset geom.Point3D) {
	for i := range f.vertices {
		f.vertices[i] = f.vertices[i].Add(offset)
	}
}
