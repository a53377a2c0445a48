// Package project maps 3D points onto a 2D viewport. There is no camera
// matrix: a point is pulled toward the viewport's vanishing point by an
// amount that grows with its depth, which approximates foreshortening.
package project

import (
	"math"

	"github.com/pkg/errors"

	"github.com/chazu/painter3d/pkg/geom"
)

// Viewport is the pixel size of the drawing surface.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Center returns the middle of the viewport, which is the vanishing point.
func (v Viewport) Center() geom.Point2D {
	return geom.NewPoint2D(float64(v.Width)/2, float64(v.Height)/2)
}

// Validate checks that both sides are positive.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return errors.Errorf("viewport %dx%d: sides must be positive", v.Width, v.Height)
	}
	return nil
}

// Projector implements geom.Projector for one viewport.
type Projector struct {
	viewport    Viewport
	vp          geom.Point2D
	attenuation DepthAttenuation
}

var _ geom.Projector = (*Projector)(nil)

// Option configures a Projector.
type Option func(*Projector)

// WithAttenuation replaces the default depth curve.
func WithAttenuation(f DepthAttenuation) Option {
	return func(p *Projector) {
		if f != nil {
			p.attenuation = f
		}
	}
}

// New returns a projector whose vanishing point is the viewport center.
func New(viewport Viewport, opts ...Option) *Projector {
	p := &Projector{
		viewport:    viewport,
		vp:          viewport.Center(),
		attenuation: ExpComplement(DefaultDepthConstant),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Projector) Viewport() Viewport           { return p.viewport }
func (p *Projector) VanishingPoint() geom.Point2D { return p.vp }

// Project flattens pt to (x, y) and displaces it by attenuation(z) times
// its distance from the vanishing point, along slope scaled by sign. A
// point that already sits on the vanishing point is returned as is.
func (p *Projector) Project(pt geom.Point3D) geom.Point2D {
	flat := pt.Flatten()
	s := sign(flat, p.vp)
	if s == 0 {
		return flat
	}
	shift := p.attenuation(pt.Z()) * flat.DistTo(p.vp) * s
	return flat.Add(slope(flat, p.vp).Scale(shift))
}

// ProjectAll projects every point.
func (p *Projector) ProjectAll(pts []geom.Point3D) []geom.Point2D {
	out := make([]geom.Point2D, len(pts))
	for i, pt := range pts {
		out[i] = p.Project(pt)
	}
	return out
}

// DistFromVP returns the distance from q to the vanishing point.
func (p *Projector) DistFromVP(q geom.Point2D) float64 {
	return q.DistTo(p.vp)
}

// sign picks the way a flattened point travels along slope: the sign of
// dx when it is non-zero, otherwise the negated sign of dy, and 0 when the
// point coincides with the vanishing point.
func sign(flat, vp geom.Point2D) float64 {
	dx := vp.X() - flat.X()
	dy := vp.Y() - flat.Y()
	switch {
	case dx != 0:
		return math.Copysign(1, dx)
	case dy != 0:
		return -math.Copysign(1, dy)
	default:
		return 0
	}
}

// verticalNudge replaces a zero dx in slope.
const verticalNudge = 1e-7

// slope returns the unit vector at angle atan(dy/dx) from flat to vp. Its
// x component is never negative. On the line x == vp.x the nudged angle
// combined with sign always points toward -y, so a point above the
// vanishing point is pushed further up.
func slope(flat, vp geom.Point2D) geom.Point2D {
	dx := vp.X() - flat.X()
	dy := vp.Y() - flat.Y()
	if dx == 0 {
		dx = verticalNudge
	}
	theta := math.Atan(dy / dx)
	return geom.NewPoint2D(math.Cos(theta), math.Sin(theta))
}
