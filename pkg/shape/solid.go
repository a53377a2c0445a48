package shape

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"

	"github.com/chazu/painter3d/pkg/geom"
)

// Solid is a closed polyhedron made of faces (a "Polygon3D"). Closure
// means every vertex appears in at least two faces.
type Solid struct {
	faces []*Face
}

// NewSolid validates faces and wraps them in a Solid. The solid owns the
// face slice from then on.
func NewSolid(faces []*Face) (*Solid, error) {
	if len(faces) < 4 {
		return nil, errors.Wrapf(ErrFaceCount, "got %d", len(faces))
	}
	for i, f := range faces {
		if f == nil {
			return nil, errors.Wrapf(ErrFaceCount, "face %d is nil", i)
		}
	}
	if err := checkClosed(faces); err != nil {
		return nil, err
	}
	return &Solid{faces: append([]*Face(nil), faces...)}, nil
}

// checkClosed builds a histogram of vertex occurrences across all faces
// and reports every vertex seen fewer than two times.
func checkClosed(faces []*Face) error {
	counts, order := histogram(faces)
	var err error
	for _, v := range order {
		if counts[v.Key()] < 2 {
			err = multierr.Append(err, errors.Wrapf(ErrOpenSolid, "free-hanging vertex %s", v))
		}
	}
	return err
}

// histogram counts vertex occurrences by structural identity. order holds
// the first instance of each distinct vertex in encounter order.
func histogram(faces []*Face) (map[geom.Key]int, []geom.Point3D) {
	counts := make(map[geom.Key]int)
	var order []geom.Point3D
	for _, f := range faces {
		for _, v := range f.vertices {
			k := v.Key()
			if counts[k] == 0 {
				order = append(order, v)
			}
			counts[k]++
		}
	}
	return counts, order
}

func (s *Solid) drawable() {}

// Faces returns the faces of the solid. The faces themselves are shared,
// so in-place edits through them are visible to the solid.
func (s *Solid) Faces() []*Face {
	return append([]*Face(nil), s.faces...)
}

// VertexCounts returns how many faces each distinct vertex belongs to.
func (s *Solid) VertexCounts() map[geom.Key]int {
	counts, _ := histogram(s.faces)
	return counts
}

// Vertices returns each distinct vertex once, in face order.
func (s *Solid) Vertices() []geom.Point3D {
	_, order := histogram(s.faces)
	return order
}

// Center returns the mean of the face centroids.
func (s *Solid) Center() (geom.Point3D, error) {
	sum := make([]float64, 3)
	for _, f := range s.faces {
		c, err := f.Center()
		if err != nil {
			return geom.Point3D{}, err
		}
		floats.Add(sum, c.Coords())
	}
	floats.Scale(1/float64(len(s.faces)), sum)
	return geom.Point3D{}.WithCoords(sum)
}

// Rotate rotates every face in place. All copies of a shared vertex see
// the same arithmetic, so the solid stays closed.
func (s *Solid) Rotate(about geom.Vector, angle float64, plane geom.Plane) error {
	if geom.IsNil(about) {
		return errors.Wrap(geom.ErrInvalidArgument, "rotation pivot is nil")
	}
	pivot := geom.Snapshot(about)
	for i, f := range s.faces {
		if err := RotateFace(f, pivot, angle, plane); err != nil {
			return errors.Wrapf(err, "face %d", i)
		}
	}
	return nil
}

// Translate moves every face by offset.
func (s *Solid) Translate(offset geom.Point3D) {
	for _, f := range s.faces {
		TranslateFace(f, offset)
	}
}
