package shape

import (
	"math"

	"github.com/pkg/errors"

	"github.com/chazu/painter3d/pkg/geom"
)

// Prism is an axis-aligned box. It is built from one corner and three
// edge lengths; the six faces are its only state.
type Prism struct {
	*Solid
	origin  geom.Point3D
	x, y, z float64
}

// Face order of a prism, as returned by Faces.
const (
	FaceFront = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

// NewPrism builds the box with corner origin and edges along +x, +y and
// +z. Colors are assigned to faces in order and cycle when fewer than six
// are given; with none, every face gets DefaultColor.
func NewPrism(origin geom.Point3D, xedge, yedge, zedge float64, colors ...Color) (*Prism, error) {
	for _, e := range []float64{xedge, yedge, zedge} {
		if !(e > 0) || math.IsInf(e, 0) {
			return nil, errors.Wrapf(ErrInvalidDimensions, "edges (%g, %g, %g)", xedge, yedge, zedge)
		}
	}
	if len(colors) == 0 {
		colors = []Color{DefaultColor}
	}

	x0, y0, z0 := origin.X(), origin.Y(), origin.Z()
	x1, y1, z1 := x0+xedge, y0+yedge, z0+zedge
	p := geom.NewPoint3D

	loops := [6][4]geom.Point3D{
		FaceFront:  {p(x0, y0, z0), p(x1, y0, z0), p(x1, y1, z0), p(x0, y1, z0)},
		FaceBack:   {p(x0, y0, z1), p(x1, y0, z1), p(x1, y1, z1), p(x0, y1, z1)},
		FaceLeft:   {p(x0, y0, z0), p(x0, y1, z0), p(x0, y1, z1), p(x0, y0, z1)},
		FaceRight:  {p(x1, y0, z0), p(x1, y1, z0), p(x1, y1, z1), p(x1, y0, z1)},
		FaceTop:    {p(x0, y0, z0), p(x1, y0, z0), p(x1, y0, z1), p(x0, y0, z1)},
		FaceBottom: {p(x0, y1, z0), p(x1, y1, z0), p(x1, y1, z1), p(x0, y1, z1)},
	}

	faces := make([]*Face, 0, len(loops))
	for i, loop := range loops {
		f, err := NewFace(loop[:], colors[i%len(colors)])
		if err != nil {
			return nil, err
		}
		faces = append(faces, f)
	}

	s, err := NewSolid(faces)
	if err != nil {
		return nil, errors.Wrap(err, "prism")
	}
	return &Prism{Solid: s, origin: origin, x: xedge, y: yedge, z: zedge}, nil
}

// NewCube builds a prism with three equal edges.
func NewCube(origin geom.Point3D, edge float64, colors ...Color) (*Prism, error) {
	return NewPrism(origin, edge, edge, edge, colors...)
}

// Origin returns the corner the prism was built from. It is not updated
// by Rotate or Translate.
func (p *Prism) Origin() geom.Point3D {
	return p.origin
}

// Edges returns the three edge lengths.
func (p *Prism) Edges() (x, y, z float64) {
	return p.x, p.y, p.z
}

// Center returns the centroid of the six face centroids. The centroids
// are collected into a throwaway Face so Polygon.Center can average them.
func (p *Prism) Center() (geom.Point3D, error) {
	centers := make([]geom.Point3D, 0, len(p.faces))
	for _, f := range p.faces {
		c, err := f.Center()
		if err != nil {
			return geom.Point3D{}, err
		}
		centers = append(centers, c)
	}
	tmp, err := NewFace(centers, DefaultColor)
	if err != nil {
		return geom.Point3D{}, err
	}
	return tmp.Center()
}
