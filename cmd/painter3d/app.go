package main

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chazu/painter3d/pkg/canvas"
	"github.com/chazu/painter3d/pkg/config"
	"github.com/chazu/painter3d/pkg/project"
	"github.com/chazu/painter3d/pkg/render"
	"github.com/chazu/painter3d/pkg/scene"
	"github.com/chazu/painter3d/pkg/shape"
	"github.com/chazu/painter3d/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to parts.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// paletteColor returns the i-th palette entry, cycling.
func paletteColor(i int) shape.Color {
	c, err := shape.ParseColor(colorPalette[i%len(colorPalette)])
	if err != nil {
		return shape.DefaultColor
	}
	return c
}

// palette returns the first n palette colors.
func palette(n int) []shape.Color {
	out := make([]shape.Color, n)
	for i := range out {
		out[i] = paletteColor(i)
	}
	return out
}

// App ties configuration to the tessellate and render pipeline shared by
// the render and window commands.
type App struct {
	cfg       *config.Config
	logger    *zap.Logger
	tess      *tessellate.Tessellator
	projector *project.Projector
}

// FrameStats summarises one rendered frame.
type FrameStats struct {
	Solids int
	Faces  int
}

// NewApp creates an App with the sdfx kernel at the configured resolution.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:       cfg,
		logger:    logger,
		tess:      tessellate.New(cfg.Kernel(), tessellate.WithLogger(logger.Named("tessellate"))),
		projector: cfg.Projector(),
	}
}

// Renderer returns a renderer drawing onto surface with the app's projector.
func (a *App) Renderer(surface render.Surface) *render.Renderer {
	return render.New(render.Camera{}, surface, a.projector, render.WithLogger(a.logger.Named("render")))
}

// Render tessellates sc and paints it onto cv, clearing it first.
func (a *App) Render(sc *scene.Scene, cv canvas.Canvas) (FrameStats, error) {
	composite, err := a.tess.Tessellate(sc)
	if err != nil {
		return FrameStats{}, errors.Wrap(err, "tessellation failed")
	}
	cv.Clear()
	if err := a.Renderer(cv).Frame(composite); err != nil {
		return FrameStats{}, errors.Wrap(err, "render failed")
	}
	stats := FrameStats{Solids: len(composite.Components()), Faces: len(composite.AllFaces())}
	a.logger.Info("rendered frame", zap.Int("solids", stats.Solids), zap.Int("faces", stats.Faces))
	return stats, nil
}
