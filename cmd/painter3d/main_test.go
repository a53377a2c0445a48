package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chazu/painter3d/pkg/canvas"
	"github.com/chazu/painter3d/pkg/config"
	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/scene"
	"github.com/chazu/painter3d/pkg/shape"
)

func testApp(t *testing.T) (*App, canvas.Canvas) {
	t.Helper()
	cfg := config.Default()
	cfg.Render.Backend = canvas.BackendFogleman
	cv, err := cfg.Canvas()
	require.NoError(t, err)
	t.Cleanup(func() { _ = cv.Close() })
	return NewApp(cfg, zap.NewNop()), cv
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestSceneNames(t *testing.T) {
	assert.Equal(t, []string{"csg", "cube", "shapes", "table"}, sceneNames())
}

func TestBuiltInScenesAreValid(t *testing.T) {
	for _, name := range sceneNames() {
		t.Run(name, func(t *testing.T) {
			sc, err := buildScene(name)
			require.NoError(t, err)
			assert.Empty(t, scene.Validate(sc))
		})
	}
}

func TestBuildSceneUnknown(t *testing.T) {
	_, err := buildScene("teapot")
	assert.True(t, errors.Is(err, ErrUnknownScene))
}

func TestPalette(t *testing.T) {
	assert.Len(t, palette(10), 10)
	assert.Equal(t, paletteColor(0), paletteColor(len(colorPalette)))
	assert.Equal(t, shape.RGB(0x4A, 0x90, 0xD9), paletteColor(0))
}

func TestRenderCube(t *testing.T) {
	app, cv := testApp(t)
	stats, err := app.Render(cubeScene(), cv)
	require.NoError(t, err)
	assert.Equal(t, FrameStats{Solids: 1, Faces: 6}, stats)

	img := cv.Image()
	assert.False(t, isWhite(img.At(400, 300)), "cube covers the vanishing point")
	assert.True(t, isWhite(img.At(10, 10)), "corner stays background")
}

func TestRenderTable(t *testing.T) {
	app, cv := testApp(t)
	stats, err := app.Render(tableScene(), cv)
	require.NoError(t, err)
	assert.Equal(t, FrameStats{Solids: 5, Faces: 30}, stats)
}

func TestRenderShapes(t *testing.T) {
	if testing.Short() {
		t.Skip("marching cubes in short mode")
	}
	app, cv := testApp(t)
	app.cfg.Mesh.Cells = 16
	app = NewApp(app.cfg, zap.NewNop())
	stats, err := app.Render(shapesScene(), cv)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Solids)
	assert.Greater(t, stats.Faces, 6)
}

func TestRenderCSG(t *testing.T) {
	if testing.Short() {
		t.Skip("marching cubes in short mode")
	}
	app, cv := testApp(t)
	app.cfg.Mesh.Cells = 16
	app = NewApp(app.cfg, zap.NewNop())
	stats, err := app.Render(csgScene(), cv)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Solids)
	assert.Greater(t, stats.Faces, 12)
}

func TestRenderInvalidScene(t *testing.T) {
	app, cv := testApp(t)
	sc := scene.New()
	sc.AddRoot(sc.Insert("flat", scene.PrismData{Size: [3]float64{1, 0, 1}}))
	_, err := app.Render(sc, cv)
	assert.Error(t, err)
}

func TestCursorCube(t *testing.T) {
	cube, err := cursorCube(10, 20, 100, 0, nil)
	require.NoError(t, err)
	assert.True(t, cube.Origin().Equal(geom.NewPoint3D(10, 20, 0)))

	turned, err := cursorCube(10, 20, 100, 0.7, palette(6))
	require.NoError(t, err)
	before, err := cube.Center()
	require.NoError(t, err)
	after, err := turned.Solid.Center()
	require.NoError(t, err)
	d, err := geom.Dist(before, after)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9)
	assert.Len(t, turned.Faces(), 6)

	_, err = cursorCube(0, 0, -1, 0, nil)
	assert.Error(t, err)
}

func TestRGBAPixels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.NRGBA{R: 255, A: 255})
	got := rgbaPixels(src, nil)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
	assert.Len(t, got.Pix, 3*2*4)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, got.RGBAAt(1, 1))

	same := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, same, rgbaPixels(same, nil))
}

func TestCLIRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cube.png")
	err := newCLI().Run([]string{"painter3d",
		"--backend", "fogleman", "--width", "200", "--height", "150", "--log-level", "error",
		"render", "--scene", "cube", "--out", out})
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestCLIScenes(t *testing.T) {
	app := newCLI()
	var buf bytes.Buffer
	app.Writer = &buf
	require.NoError(t, app.Run([]string{"painter3d", "scenes"}))
	for _, name := range sceneNames() {
		assert.Contains(t, buf.String(), name)
	}
	assert.Contains(t, buf.String(), "ok")
}

func TestCLIBadConfig(t *testing.T) {
	err := newCLI().Run([]string{"painter3d", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "render"})
	assert.Error(t, err)

	err = newCLI().Run([]string{"painter3d", "--backend", "vulkan", "render"})
	assert.Error(t, err)
}
