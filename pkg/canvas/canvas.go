// Package canvas provides render.Surface implementations backed by 2D
// vector graphics libraries. Both backends fill the polygon interior and
// then stroke an anti-aliased outline in the same color.
package canvas

import (
	"image"

	"github.com/pkg/errors"

	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/render"
	"github.com/chazu/painter3d/pkg/shape"
)

// Backend names accepted by New.
const (
	BackendGoGPU    = "gogpu"
	BackendFogleman = "fogleman"
)

// ErrTooFewVertices is returned by FillPolygon for fewer than 3 vertices.
var ErrTooFewVertices = errors.New("fill needs at least 3 vertices")

// ErrUnknownBackend is returned by New for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown canvas backend")

// Canvas is a Surface that owns its pixels.
type Canvas interface {
	render.Surface
	// Clear paints the whole canvas with the background color.
	Clear()
	Size() (w, h int)
	Image() image.Image
	SavePNG(path string) error
	Close() error
}

// Option configures a canvas.
type Option func(*settings)

type settings struct {
	outline   bool
	lineWidth float64
}

func defaults(opts []Option) settings {
	s := settings{outline: true, lineWidth: 1}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// WithOutline toggles the stroke drawn over each fill.
func WithOutline(on bool) Option {
	return func(s *settings) { s.outline = on }
}

// WithLineWidth sets the outline width in pixels. Non-positive widths are ignored.
func WithLineWidth(w float64) Option {
	return func(s *settings) {
		if w > 0 {
			s.lineWidth = w
		}
	}
}

// New returns a canvas of the given backend, cleared to background.
func New(backend string, w, h int, background shape.Color, opts ...Option) (Canvas, error) {
	switch backend {
	case BackendGoGPU, "":
		return NewGoGPU(w, h, background, opts...), nil
	case BackendFogleman:
		return NewFogleman(w, h, background, opts...), nil
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
	}
}

// pathBuilder is the subset of the path API both backends share.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func tracePolygon(pb pathBuilder, vertices []geom.Point2D) error {
	if len(vertices) < 3 {
		return errors.Wrapf(ErrTooFewVertices, "got %d", len(vertices))
	}
	pb.MoveTo(vertices[0].X(), vertices[0].Y())
	for _, v := range vertices[1:] {
		pb.LineTo(v.X(), v.Y())
	}
	pb.ClosePath()
	return nil
}
