package canvas

import (
	"image"

	gogpu "github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/shape"
)

// GoGPU draws with the github.com/gogpu/gg software rasterizer.
type GoGPU struct {
	dc         *gogpu.Context
	background shape.Color
	settings
}

var _ Canvas = (*GoGPU)(nil)

// NewGoGPU returns a w×h canvas cleared to background.
func NewGoGPU(w, h int, background shape.Color, opts ...Option) *GoGPU {
	c := &GoGPU{
		dc:         gogpu.NewContext(w, h),
		background: background,
		settings:   defaults(opts),
	}
	c.Clear()
	return c
}

// FillPolygon fills the interior, then strokes the outline if enabled.
func (c *GoGPU) FillPolygon(vertices []geom.Point2D, col shape.Color) error {
	if err := tracePolygon(c.dc, vertices); err != nil {
		return err
	}
	c.dc.SetColor(col)
	if !c.outline {
		return errors.Wrap(c.dc.Fill(), "gogpu fill")
	}
	if err := c.dc.FillPreserve(); err != nil {
		c.dc.ClearPath()
		return errors.Wrap(err, "gogpu fill")
	}
	c.dc.SetLineWidth(c.lineWidth)
	return errors.Wrap(c.dc.Stroke(), "gogpu outline")
}

func (c *GoGPU) Clear() {
	r, g, b := c.background.Floats()
	c.dc.ClearWithColor(gogpu.RGB(r, g, b))
}

func (c *GoGPU) Size() (int, int)          { return c.dc.Width(), c.dc.Height() }
func (c *GoGPU) Image() image.Image        { return c.dc.Image() }
func (c *GoGPU) SavePNG(path string) error { return c.dc.SavePNG(path) }
func (c *GoGPU) Close() error              { return c.dc.Close() }
