package canvas

import (
	"image"

	fogleman "github.com/fogleman/gg"

	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/shape"
)

// Fogleman draws with github.com/fogleman/gg.
type Fogleman struct {
	dc         *fogleman.Context
	background shape.Color
	settings
}

var _ Canvas = (*Fogleman)(nil)

// NewFogleman returns a w×h canvas cleared to background.
func NewFogleman(w, h int, background shape.Color, opts ...Option) *Fogleman {
	c := &Fogleman{
		dc:         fogleman.NewContext(w, h),
		background: background,
		settings:   defaults(opts),
	}
	c.Clear()
	return c
}

// FillPolygon fills the interior, then strokes the outline if enabled.
func (c *Fogleman) FillPolygon(vertices []geom.Point2D, col shape.Color) error {
	if err := tracePolygon(c.dc, vertices); err != nil {
		return err
	}
	c.dc.SetColor(col)
	if !c.outline {
		c.dc.Fill()
		return nil
	}
	c.dc.FillPreserve()
	c.dc.SetLineWidth(c.lineWidth)
	c.dc.Stroke()
	return nil
}

func (c *Fogleman) Clear() {
	c.dc.SetColor(c.background)
	c.dc.Clear()
}

func (c *Fogleman) Size() (int, int)          { return c.dc.Width(), c.dc.Height() }
func (c *Fogleman) Image() image.Image        { return c.dc.Image() }
func (c *Fogleman) SavePNG(path string) error { return c.dc.SavePNG(path) }
func (c *Fogleman) Close() error              { return nil }
