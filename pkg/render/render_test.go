package render

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/project"
	"github.com/chazu/painter3d/pkg/shape"
)

// recorder is a Surface that remembers every fill call.
type recorder struct {
	fills  [][]geom.Point2D
	colors []shape.Color
	err    error
}

func (r *recorder) FillPolygon(vertices []geom.Point2D, c shape.Color) error {
	if r.err != nil {
		return r.err
	}
	r.fills = append(r.fills, vertices)
	r.colors = append(r.colors, c)
	return nil
}

var viewport = project.Viewport{Width: 800, Height: 600}

// squareAt returns a flat face (z=0) whose centroid sits dist pixels to
// the right of the vanishing point.
func squareAt(t *testing.T, dist float64, c shape.Color) *shape.Face {
	t.Helper()
	cx, cy := 400+dist, 300.0
	f, err := shape.NewFace([]geom.Point3D{
		geom.NewPoint3D(cx-1, cy-1, 0),
		geom.NewPoint3D(cx+1, cy-1, 0),
		geom.NewPoint3D(cx+1, cy+1, 0),
		geom.NewPoint3D(cx-1, cy+1, 0),
	}, c)
	require.NoError(t, err)
	return f
}

func TestSortFacesFarthestFirst(t *testing.T) {
	p := project.New(viewport)
	f5 := squareAt(t, 5, shape.RGB(5, 0, 0))
	f50 := squareAt(t, 50, shape.RGB(50, 0, 0))
	f10 := squareAt(t, 10, shape.RGB(10, 0, 0))

	sorted, err := SortFaces([]*shape.Face{f5, f50, f10}, p)
	require.NoError(t, err)
	assert.Equal(t, []*shape.Face{f50, f10, f5}, sorted)

	var depths []float64
	for _, f := range sorted {
		d, err := FaceDepth(f, p)
		require.NoError(t, err)
		depths = append(depths, d)
	}
	assert.InDeltaSlice(t, []float64{50, 10, 5}, depths, 1e-9)
}

func TestSortFacesStable(t *testing.T) {
	p := project.New(viewport)
	a := squareAt(t, 20, shape.RGB(1, 0, 0))
	b := squareAt(t, 20, shape.RGB(2, 0, 0))
	sorted, err := SortFaces([]*shape.Face{a, b}, p)
	require.NoError(t, err)
	assert.Same(t, a, sorted[0])
	assert.Same(t, b, sorted[1])
}

func TestDrawPolygon2DUnprojected(t *testing.T) {
	rec := &recorder{}
	r := New(Camera{}, rec, project.New(viewport))
	verts := []geom.Point2D{geom.NewPoint2D(0, 0), geom.NewPoint2D(10, 0), geom.NewPoint2D(0, 10)}
	poly, err := shape.NewPolygon2D(verts, shape.DefaultColor)
	require.NoError(t, err)

	require.NoError(t, r.Draw(poly))
	require.Len(t, rec.fills, 1)
	assert.Equal(t, verts, rec.fills[0])
	assert.Equal(t, shape.DefaultColor, rec.colors[0])
}

func TestDrawFaceProjects(t *testing.T) {
	rec := &recorder{}
	p := project.New(viewport)
	r := New(Camera{}, rec, p)
	pts := []geom.Point3D{geom.NewPoint3D(0, 0, 100), geom.NewPoint3D(10, 0, 100), geom.NewPoint3D(0, 10, 100)}
	f, err := shape.NewFace(pts, shape.DefaultColor)
	require.NoError(t, err)

	require.NoError(t, r.Draw(f))
	require.Len(t, rec.fills, 1)
	assert.Equal(t, p.ProjectAll(pts), rec.fills[0])
}

func TestDrawCubeBackToFront(t *testing.T) {
	rec := &recorder{}
	p := project.New(viewport)
	r := New(Camera{Position: geom.NewPoint3D(1, 2, 3)}, rec, p)
	cube, err := shape.NewCube(geom.NewPoint3D(100, 100, 0), 50)
	require.NoError(t, err)

	require.NoError(t, r.Draw(cube))
	require.Len(t, rec.fills, 6)

	want, err := SortFaces(cube.Faces(), p)
	require.NoError(t, err)
	prev := -1.0
	for i, f := range want {
		assert.Equal(t, p.ProjectAll(f.Vertices()), rec.fills[i])
		d, err := FaceDepth(f, p)
		require.NoError(t, err)
		if prev >= 0 {
			assert.LessOrEqual(t, d, prev)
		}
		prev = d
	}
	assert.Equal(t, geom.NewPoint3D(1, 2, 3), r.Camera().Position)
}

func TestDrawCompositeSortsGlobally(t *testing.T) {
	rec := &recorder{}
	p := project.New(viewport)
	r := New(Camera{}, rec, p)

	red, blue := shape.RGB(255, 0, 0), shape.RGB(0, 0, 255)
	near, err := shape.NewCube(geom.NewPoint3D(390, 290, 0), 20, red)
	require.NoError(t, err)
	far, err := shape.NewCube(geom.NewPoint3D(0, 0, 0), 20, blue)
	require.NoError(t, err)

	comp := shape.NewComposite(near.Solid, far.Solid)
	require.NoError(t, r.Draw(comp))
	require.Len(t, rec.fills, 12)

	// Every face of the cube far from the vanishing point comes first.
	for i := 0; i < 6; i++ {
		assert.Equal(t, blue, rec.colors[i])
	}
	for i := 6; i < 12; i++ {
		assert.Equal(t, red, rec.colors[i])
	}
}

func TestDrawSurfaceErrorAborts(t *testing.T) {
	boom := errors.New("surface gone")
	rec := &recorder{err: boom}
	r := New(Camera{}, rec, project.New(viewport))
	cube, err := shape.NewCube(geom.NewPoint3D(0, 0, 0), 10)
	require.NoError(t, err)

	err = r.Frame(cube)
	assert.True(t, errors.Is(err, boom))
}

func TestDrawUnsupported(t *testing.T) {
	r := New(Camera{}, &recorder{}, project.New(viewport))
	poly, err := shape.NewPolygon([]geom.Point{geom.NewPoint(0, 0, 0, 0), geom.NewPoint(1, 0, 0, 0), geom.NewPoint(0, 1, 0, 0)}, shape.DefaultColor)
	require.NoError(t, err)
	assert.True(t, errors.Is(r.Draw(poly), ErrUnsupportedDrawable))
}

func TestFrame(t *testing.T) {
	rec := &recorder{}
	r := New(Camera{}, rec, project.New(viewport), WithLogger(nil))
	a, err := shape.NewCube(geom.NewPoint3D(0, 0, 0), 10)
	require.NoError(t, err)
	b, err := shape.NewCube(geom.NewPoint3D(50, 50, 50), 10)
	require.NoError(t, err)
	require.NoError(t, r.Frame(a, b))
	assert.Len(t, rec.fills, 12)
}
