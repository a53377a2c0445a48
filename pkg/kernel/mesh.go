package kernel

import (
	"math"

	"github.com/pkg/errors"

	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/shape"
)

// DefaultWeldTolerance merges marching-cubes vertices that land on the
// same spot from neighbouring cells.
const DefaultWeldTolerance = 1e-4

// ErrEmptyMesh is returned when a mesh has no triangles to convert.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// Mesh is an indexed triangle mesh.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `yaml:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `yaml:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `yaml:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `yaml:"name"`     // scene node this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Vertex returns vertex i as a point.
func (m *Mesh) Vertex(i int) geom.Point3D {
	return geom.NewPoint3D(float64(m.Vertices[3*i]), float64(m.Vertices[3*i+1]), float64(m.Vertices[3*i+2]))
}

// Triangle returns the corners of triangle t.
func (m *Mesh) Triangle(t int) [3]geom.Point3D {
	return [3]geom.Point3D{
		m.Vertex(int(m.Indices[3*t])),
		m.Vertex(int(m.Indices[3*t+1])),
		m.Vertex(int(m.Indices[3*t+2])),
	}
}

// Weld returns a copy of m in which vertices within tolerance of each
// other share one index. Triangles that collapse are dropped.
func (m *Mesh) Weld(tolerance float64) *Mesh {
	if tolerance <= 0 {
		tolerance = DefaultWeldTolerance
	}
	type cell [3]int64
	snap := func(v float32) int64 { return int64(math.Round(float64(v) / tolerance)) }

	out := &Mesh{Name: m.Name}
	seen := make(map[cell]uint32)
	remap := make([]uint32, m.VertexCount())
	for i := range remap {
		x, y, z := m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]
		c := cell{snap(x), snap(y), snap(z)}
		idx, ok := seen[c]
		if !ok {
			idx = uint32(out.VertexCount())
			seen[c] = idx
			out.Vertices = append(out.Vertices, x, y, z)
			if len(m.Normals) == len(m.Vertices) {
				out.Normals = append(out.Normals, m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2])
			}
		}
		remap[i] = idx
	}
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := remap[m.Indices[3*t]], remap[m.Indices[3*t+1]], remap[m.Indices[3*t+2]]
		if a == b || b == c || a == c {
			continue
		}
		out.Indices = append(out.Indices, a, b, c)
	}
	return out
}

// Faces converts every triangle into a face of the given color.
func (m *Mesh) Faces(color shape.Color) ([]*shape.Face, error) {
	if m.TriangleCount() == 0 {
		return nil, ErrEmptyMesh
	}
	faces := make([]*shape.Face, 0, m.TriangleCount())
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		f, err := shape.NewFace(tri[:], color)
		if err != nil {
			return nil, errors.Wrapf(err, "triangle %d", t)
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// Solid welds the mesh and builds a closed solid from its triangles.
func (m *Mesh) Solid(color shape.Color) (*shape.Solid, error) {
	faces, err := m.Weld(DefaultWeldTolerance).Faces(color)
	if err != nil {
		return nil, err
	}
	s, err := shape.NewSolid(faces)
	if err != nil {
		return nil, errors.Wrapf(err, "mesh %q", m.Name)
	}
	return s, nil
}
