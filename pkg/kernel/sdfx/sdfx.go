// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"

	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution along
// the longest bounding box axis.
const DefaultMeshCells = 40

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max geom.Point3D) {
	bb := s.s.BoundingBox()
	min = geom.NewPoint3D(bb.Min.X, bb.Min.Y, bb.Min.Z)
	max = geom.NewPoint3D(bb.Max.X, bb.Max.Y, bb.Max.Z)
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// Option configures an SdfxKernel.
type Option func(*SdfxKernel)

// WithCells sets the marching cubes resolution. Values below 1 are ignored.
func WithCells(n int) Option {
	return func(k *SdfxKernel) {
		if n > 0 {
			k.cells = n
		}
	}
}

// New returns a new SdfxKernel.
func New(opts ...Option) *SdfxKernel {
	k := &SdfxKernel{cells: DefaultMeshCells}
	for _, o := range opts {
		o(k)
	}
	return k
}

// Cells returns the marching cubes resolution.
func (k *SdfxKernel) Cells() int { return k.cells }

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

func checkSize(name string, vals ...float64) error {
	for _, v := range vals {
		if !(v > 0) || math.IsInf(v, 0) {
			return errors.Wrapf(kernel.ErrInvalidSize, "%s: %v", name, vals)
		}
	}
	return nil
}

// Box creates a box with the given dimensions. The resulting solid has its
// minimum corner at the origin, matching shape.NewPrism. sdf.Box3D centers
// the box at the origin, so it is shifted by half the dimensions.
func (k *SdfxKernel) Box(x, y, z float64) (kernel.Solid, error) {
	if err := checkSize("box", x, y, z); err != nil {
		return nil, err
	}
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, errors.Wrap(err, "sdfx box")
	}
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m)), nil
}

// Sphere creates a sphere centered at the origin.
func (k *SdfxKernel) Sphere(radius float64) (kernel.Solid, error) {
	if err := checkSize("sphere", radius); err != nil {
		return nil, err
	}
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, errors.Wrap(err, "sdfx sphere")
	}
	return wrap(s), nil
}

// Cylinder creates a cylinder along Z, centered at the origin.
func (k *SdfxKernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	if err := checkSize("cylinder", height, radius); err != nil {
		return nil, err
	}
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, errors.Wrap(err, "sdfx cylinder")
	}
	return wrap(s), nil
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *SdfxKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by offset.
func (k *SdfxKernel) Translate(s kernel.Solid, offset geom.Point3D) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: offset.X(), Y: offset.Y(), Z: offset.Z()})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Rotate turns a solid by angle radians from the plane's first basis axis
// toward its second, the same sense as geom.Rotate.
func (k *SdfxKernel) Rotate(s kernel.Solid, plane geom.Plane, angle float64) (kernel.Solid, error) {
	m, err := planeRotation(plane, angle)
	if err != nil {
		return nil, err
	}
	return wrap(sdf.Transform3D(unwrap(s), m)), nil
}

func planeRotation(plane geom.Plane, angle float64) (sdf.M44, error) {
	if !plane.Valid() {
		return sdf.M44{}, errors.Wrap(geom.ErrInvalidArgument, "zero plane")
	}
	a, b := plane.Basis()
	if a > b {
		a, b = b, a
		angle = -angle
	}
	switch {
	case a == 0 && b == 1:
		return sdf.RotateZ(angle), nil
	case a == 0 && b == 2:
		return sdf.RotateY(-angle), nil
	case a == 1 && b == 2:
		return sdf.RotateX(angle), nil
	}
	return sdf.M44{}, errors.Wrapf(geom.ErrDimensionMismatch, "plane (%d, %d) outside 3D", a, b)
}

// ToMesh converts a solid to a triangle mesh using marching cubes. Each
// triangle gets its own three vertices; use Mesh.Weld to share them.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(sdf3, renderer)
	if len(triangles) == 0 {
		return nil, kernel.ErrEmptyMesh
	}

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
