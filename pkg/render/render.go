// Package render draws polygons, faces and solids onto a Surface using
// the painter's algorithm: faces are sorted by the distance of their
// projected centroid from the vanishing point and drawn farthest first,
// so nearer faces paint over farther ones without a depth buffer.
package render

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/project"
	"github.com/chazu/painter3d/pkg/shape"
)

// ErrUnsupportedDrawable is returned for drawables the renderer has no
// rule for, such as polygons over N-dimensional points.
var ErrUnsupportedDrawable = errors.New("unsupported drawable")

// Surface is the fill primitive: it paints an anti-aliased outline and a
// filled interior for a polygon of at least three screen vertices.
type Surface interface {
	FillPolygon(vertices []geom.Point2D, c shape.Color) error
}

// Camera describes a viewer position and orientation. Projection does not
// use it yet; it is carried so callers can already supply one.
type Camera struct {
	Position   geom.Point3D
	Pitch, Yaw float64
}

// Renderer draws onto one surface through one projector.
type Renderer struct {
	camera    Camera
	surface   Surface
	projector *project.Projector
	logger    *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for frame diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a renderer. The surface is borrowed for the duration of
// each Draw call only.
func New(camera Camera, surface Surface, projector *project.Projector, opts ...Option) *Renderer {
	r := &Renderer{
		camera:    camera,
		surface:   surface,
		projector: projector,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Camera() Camera                { return r.camera }
func (r *Renderer) Projector() *project.Projector { return r.projector }

// Draw draws d. Solids and composites are flattened to faces and depth
// sorted across all of their faces before anything is painted. The first
// error aborts the draw.
func (r *Renderer) Draw(d shape.Drawable) error {
	switch d := d.(type) {
	case *shape.Polygon2D:
		return r.fill(d.Vertices(), d.Color())
	case *shape.Face:
		return r.fill(r.projector.ProjectAll(d.Vertices()), d.Color())
	case *shape.Prism:
		return r.drawFaces(d.Faces())
	case *shape.Solid:
		return r.drawFaces(d.Faces())
	case *shape.Composite:
		return r.drawFaces(d.AllFaces())
	default:
		return errors.Wrapf(ErrUnsupportedDrawable, "%T", d)
	}
}

// Frame draws every drawable in order as one pass.
func (r *Renderer) Frame(ds ...shape.Drawable) error {
	for i, d := range ds {
		if err := r.Draw(d); err != nil {
			return errors.Wrapf(err, "frame: drawable %d", i)
		}
	}
	r.logger.Debug("frame drawn", zap.Int("drawables", len(ds)))
	return nil
}

func (r *Renderer) drawFaces(faces []*shape.Face) error {
	sorted, err := SortFaces(faces, r.projector)
	if err != nil {
		return err
	}
	for i, f := range sorted {
		if err := r.Draw(f); err != nil {
			return errors.Wrapf(err, "face %d", i)
		}
	}
	r.logger.Debug("faces drawn", zap.Int("faces", len(sorted)))
	return nil
}

func (r *Renderer) fill(vertices []geom.Point2D, c shape.Color) error {
	return r.surface.FillPolygon(vertices, c)
}

// FaceDepth returns the distance from the vanishing point to the
// projection of f's centroid.
func FaceDepth(f *shape.Face, p *project.Projector) (float64, error) {
	c, err := f.Center()
	if err != nil {
		return 0, err
	}
	return p.DistFromVP(p.Project(c)), nil
}

// SortFaces returns faces ordered by FaceDepth, farthest first. Faces at
// equal depth keep their input order.
func SortFaces(faces []*shape.Face, p *project.Projector) ([]*shape.Face, error) {
	type keyed struct {
		face  *shape.Face
		depth float64
	}
	ks := make([]keyed, len(faces))
	for i, f := range faces {
		d, err := FaceDepth(f, p)
		if err != nil {
			return nil, errors.Wrapf(err, "depth of face %d", i)
		}
		ks[i] = keyed{face: f, depth: d}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].depth > ks[j].depth })

	out := make([]*shape.Face, len(ks))
	for i, k := range ks {
		out[i] = k.face
	}
	return out, nil
}
