// Package config loads renderer settings from YAML and builds the
// projector, canvas, kernel and logger they describe.
package config

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/chazu/painter3d/pkg/canvas"
	"github.com/chazu/painter3d/pkg/kernel/sdfx"
	"github.com/chazu/painter3d/pkg/logging"
	"github.com/chazu/painter3d/pkg/project"
	"github.com/chazu/painter3d/pkg/shape"
)

// Depth curve names.
const (
	CurveExp    = "exp"
	CurveLinear = "linear"
	CurveNone   = "none"
)

// ErrInvalid is wrapped by every validation finding.
var ErrInvalid = errors.New("invalid config")

// Config is the complete settings file.
type Config struct {
	Viewport project.Viewport `yaml:"viewport"`
	Depth    DepthConfig      `yaml:"depth"`
	Render   RenderConfig     `yaml:"render"`
	Mesh     MeshConfig       `yaml:"mesh"`
	Log      LogConfig        `yaml:"log"`
	Window   WindowConfig     `yaml:"window"`
}

// DepthConfig selects the depth attenuation curve.
type DepthConfig struct {
	Curve    string  `yaml:"curve"`
	Constant float64 `yaml:"constant"`
}

// RenderConfig selects the fill backend and its look.
type RenderConfig struct {
	Backend    string  `yaml:"backend"`
	Background string  `yaml:"background"`
	Outline    bool    `yaml:"outline"`
	LineWidth  float64 `yaml:"line_width"`
}

// MeshConfig controls kernel tessellation.
type MeshConfig struct {
	Cells int `yaml:"cells"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// WindowConfig drives the interactive demo.
type WindowConfig struct {
	Title    string  `yaml:"title"`
	TPS      int     `yaml:"tps"`
	CubeEdge float64 `yaml:"cube_edge"`
	Spin     float64 `yaml:"spin"` // radians per tick, 0 disables
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Viewport: project.Viewport{Width: 800, Height: 600},
		Depth:    DepthConfig{Curve: CurveExp, Constant: project.DefaultDepthConstant},
		Render: RenderConfig{
			Backend:    canvas.BackendGoGPU,
			Background: "#ffffff",
			Outline:    true,
			LineWidth:  1,
		},
		Mesh:   MeshConfig{Cells: sdfx.DefaultMeshCells},
		Log:    LogConfig{Level: "info", Encoding: logging.EncodingConsole},
		Window: WindowConfig{Title: "painter3d", TPS: 60, CubeEdge: 100, Spin: 0.02},
	}
}

// Load reads YAML from r over the defaults and validates the result.
// Keys missing from the document keep their default values.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var err error
	add := func(e error) {
		if e != nil {
			err = multierr.Append(err, errors.Wrap(ErrInvalid, e.Error()))
		}
	}

	add(c.Viewport.Validate())
	switch c.Depth.Curve {
	case CurveExp, CurveLinear, CurveNone:
	default:
		add(errors.Errorf("depth curve %q: want exp, linear or none", c.Depth.Curve))
	}
	if c.Depth.Constant < 0 || math.IsNaN(c.Depth.Constant) || math.IsInf(c.Depth.Constant, 0) {
		add(errors.Errorf("depth constant %v must be finite and non-negative", c.Depth.Constant))
	}
	switch c.Render.Backend {
	case canvas.BackendGoGPU, canvas.BackendFogleman:
	default:
		add(errors.Errorf("render backend %q: want %s or %s", c.Render.Backend, canvas.BackendGoGPU, canvas.BackendFogleman))
	}
	if _, e := shape.ParseColor(c.Render.Background); e != nil {
		add(errors.Wrap(e, "render background"))
	}
	if c.Render.LineWidth < 0 {
		add(errors.Errorf("render line width %v is negative", c.Render.LineWidth))
	}
	if c.Mesh.Cells <= 0 {
		add(errors.Errorf("mesh cells %d must be positive", c.Mesh.Cells))
	}
	if _, e := logging.ParseLevel(c.Log.Level); e != nil {
		add(e)
	}
	add(logging.CheckEncoding(c.Log.Encoding))
	if c.Window.TPS <= 0 {
		add(errors.Errorf("window tps %d must be positive", c.Window.TPS))
	}
	if !(c.Window.CubeEdge > 0) {
		add(errors.Errorf("window cube edge %v must be positive", c.Window.CubeEdge))
	}
	return err
}

// Attenuation returns the configured depth curve.
func (c *Config) Attenuation() project.DepthAttenuation {
	switch c.Depth.Curve {
	case CurveLinear:
		return project.Linear(c.Depth.Constant)
	case CurveNone:
		return project.None
	default:
		return project.ExpComplement(c.Depth.Constant)
	}
}

// Projector builds the projector for the configured viewport and curve.
func (c *Config) Projector() *project.Projector {
	return project.New(c.Viewport, project.WithAttenuation(c.Attenuation()))
}

// Background parses the configured background color.
func (c *Config) Background() (shape.Color, error) {
	return shape.ParseColor(c.Render.Background)
}

// Canvas builds a canvas of the viewport's size.
func (c *Config) Canvas() (canvas.Canvas, error) {
	bg, err := c.Background()
	if err != nil {
		return nil, err
	}
	return canvas.New(c.Render.Backend, c.Viewport.Width, c.Viewport.Height, bg,
		canvas.WithOutline(c.Render.Outline),
		canvas.WithLineWidth(c.Render.LineWidth))
}

// Kernel builds the sdfx kernel at the configured resolution.
func (c *Config) Kernel() *sdfx.SdfxKernel {
	return sdfx.New(sdfx.WithCells(c.Mesh.Cells))
}

// Logger builds the configured logger.
func (c *Config) Logger() (*zap.Logger, error) {
	return logging.New(c.Log.Level, c.Log.Encoding)
}
