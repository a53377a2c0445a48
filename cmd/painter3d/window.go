package main

import (
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chazu/painter3d/pkg/canvas"
	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/render"
	"github.com/chazu/painter3d/pkg/shape"
)

// cursorCube builds a cube with its front top-left corner at (x, y, 0),
// turned by angle about its own center in the XZ and then the YZ plane.
func cursorCube(x, y, edge, angle float64, colors []shape.Color) (*shape.Prism, error) {
	cube, err := shape.NewCube(geom.NewPoint3D(x, y, 0), edge, colors...)
	if err != nil {
		return nil, err
	}
	if angle == 0 {
		return cube, nil
	}
	center, err := cube.Center()
	if err != nil {
		return nil, err
	}
	for _, pl := range []geom.Plane{geom.PlaneXZ, geom.PlaneYZ} {
		if err := cube.Rotate(center, angle, pl); err != nil {
			return nil, err
		}
	}
	return cube, nil
}

// rgbaPixels returns img as tightly packed RGBA bytes.
func rgbaPixels(img image.Image, dst *image.RGBA) *image.RGBA {
	b := img.Bounds()
	if src, ok := img.(*image.RGBA); ok && src.Stride == 4*b.Dx() && b.Min == (image.Point{}) {
		return src
	}
	if dst == nil || dst.Bounds() != b.Sub(b.Min) {
		dst = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// cubeGame rebuilds a cube under the cursor every tick, optionally
// spinning it, and paints it through the configured canvas.
type cubeGame struct {
	app      *App
	canvas   canvas.Canvas
	renderer *render.Renderer
	colors   []shape.Color
	edge     float64
	spin     float64

	angle  float64
	cube   *shape.Prism
	frame  *ebiten.Image
	pixels *image.RGBA
	err    error
}

func newCubeGame(app *App, cv canvas.Canvas) *cubeGame {
	return &cubeGame{
		app:      app,
		canvas:   cv,
		renderer: app.Renderer(cv),
		colors:   palette(6),
		edge:     app.cfg.Window.CubeEdge,
		spin:     app.cfg.Window.Spin,
	}
}

func (g *cubeGame) Update() error {
	if g.err != nil {
		return g.err
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.angle = 0
	} else {
		g.angle += g.spin
	}
	x, y := ebiten.CursorPosition()
	cube, err := cursorCube(float64(x), float64(y), g.edge, g.angle, g.colors)
	if err != nil {
		return errors.Wrap(err, "cursor cube")
	}
	g.cube = cube
	return nil
}

func (g *cubeGame) Draw(screen *ebiten.Image) {
	if g.cube == nil || g.err != nil {
		return
	}
	g.canvas.Clear()
	if err := g.renderer.Draw(g.cube); err != nil {
		g.err = errors.Wrap(err, "draw cube")
		return
	}
	g.pixels = rgbaPixels(g.canvas.Image(), g.pixels)
	w, h := g.canvas.Size()
	if g.frame == nil {
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(g.pixels.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *cubeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Size()
}

// runWindow opens the interactive window and blocks until it closes.
func runWindow(app *App) error {
	cv, err := app.cfg.Canvas()
	if err != nil {
		return err
	}
	defer cv.Close()

	w, h := cv.Size()
	ebiten.SetWindowTitle(app.cfg.Window.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(app.cfg.Window.TPS)
	app.logger.Info("opening window", zap.Int("width", w), zap.Int("height", h))

	err = ebiten.RunGame(newCubeGame(app, cv))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
