package tessellate_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/kernel"
	"github.com/chazu/painter3d/pkg/kernel/sdfx"
	"github.com/chazu/painter3d/pkg/scene"
	"github.com/chazu/painter3d/pkg/shape"
	"github.com/chazu/painter3d/pkg/tessellate"
)

// tetKernel meshes every kernel solid as a unit tetrahedron placed at the
// solid's offset, so tests do not depend on marching cubes. Booleans keep
// their first operand. Every call is recorded in ops.
type tetKernel struct {
	calls int
	ops   []string
}

type tetSolid struct{ offset geom.Point3D }

func (s tetSolid) BoundingBox() (geom.Point3D, geom.Point3D) {
	return s.offset, s.offset.Add(geom.NewPoint3D(1, 1, 1))
}

func (k *tetKernel) record(op string) { k.ops = append(k.ops, op) }

func (k *tetKernel) Box(x, y, z float64) (kernel.Solid, error) {
	k.record("box")
	return tetSolid{}, nil
}

func (k *tetKernel) Sphere(r float64) (kernel.Solid, error) {
	k.record("sphere")
	return tetSolid{}, nil
}

func (k *tetKernel) Cylinder(h, r float64) (kernel.Solid, error) {
	k.record("cylinder")
	return tetSolid{}, nil
}

func (k *tetKernel) Union(a, _ kernel.Solid) kernel.Solid {
	k.record("union")
	return a
}

func (k *tetKernel) Difference(a, _ kernel.Solid) kernel.Solid {
	k.record("difference")
	return a
}

func (k *tetKernel) Intersection(a, _ kernel.Solid) kernel.Solid {
	k.record("intersection")
	return a
}

func (k *tetKernel) Translate(s kernel.Solid, offset geom.Point3D) kernel.Solid {
	return tetSolid{offset: s.(tetSolid).offset.Add(offset)}
}

func (k *tetKernel) Rotate(s kernel.Solid, plane geom.Plane, angle float64) (kernel.Solid, error) {
	k.record("rotate")
	o := s.(tetSolid).offset
	if _, err := o.Rotate(geom.NewPoint3D(0, 0, 0), angle, plane); err != nil {
		return nil, err
	}
	return tetSolid{offset: o}, nil
}

func (k *tetKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	k.calls++
	o := s.(tetSolid).offset
	corners := [4][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	m := &kernel.Mesh{}
	for _, c := range corners {
		m.Vertices = append(m.Vertices, float32(o.X()+c[0]), float32(o.Y()+c[1]), float32(o.Z()+c[2]))
	}
	m.Indices = []uint32{0, 2, 1, 0, 1, 3, 0, 3, 2, 1, 2, 3}
	return m, nil
}

var _ kernel.Kernel = (*tetKernel)(nil)

func minCorner(t *testing.T, s *shape.Solid) geom.Point3D {
	t.Helper()
	min := []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	for _, v := range s.Vertices() {
		for i := range min {
			min[i] = math.Min(min[i], v.Coord(i))
		}
	}
	return geom.NewPoint3D(min[0], min[1], min[2])
}

func assertPoint(t *testing.T, want, got geom.Point3D) {
	t.Helper()
	d, err := geom.Dist(want, got)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9, "want %v, got %v", want, got)
}

func TestNilScene(t *testing.T) {
	c, err := tessellate.Tessellate(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, c.Components())
}

func TestSinglePrism(t *testing.T) {
	s := scene.New()
	s.AddRoot(s.Insert("box", scene.PrismData{
		Origin: geom.NewPoint3D(1, 2, 3),
		Size:   [3]float64{10, 20, 30},
		Colors: []shape.Color{shape.RGB(255, 0, 0)},
	}))

	c, err := tessellate.Tessellate(s, nil)
	require.NoError(t, err)
	require.Len(t, c.Components(), 1)
	assert.Len(t, c.AllFaces(), 6)
	assertPoint(t, geom.NewPoint3D(1, 2, 3), minCorner(t, c.Components()[0]))
	assert.Equal(t, shape.RGB(255, 0, 0), c.AllFaces()[0].Color())
}

func TestTranslationStack(t *testing.T) {
	s := scene.New()
	box := s.Insert("box", scene.PrismData{Size: [3]float64{1, 1, 1}})
	inner := geom.NewPoint3D(10, 0, 0)
	outer := geom.NewPoint3D(0, 5, 0)
	in := s.Insert("inner", scene.TransformData{Translation: &inner}, box)
	out := s.Insert("outer", scene.TransformData{Translation: &outer}, in)
	s.AddRoot(s.Insert("root", scene.GroupData{}, out))

	c, err := tessellate.Tessellate(s, nil)
	require.NoError(t, err)
	require.Len(t, c.Components(), 1)
	assertPoint(t, geom.NewPoint3D(10, 5, 0), minCorner(t, c.Components()[0]))
}

func TestRotationBeforeTranslation(t *testing.T) {
	s := scene.New()
	box := s.Insert("box", scene.PrismData{Origin: geom.NewPoint3D(1, 0, 0), Size: [3]float64{1, 1, 1}})
	shift := geom.NewPoint3D(100, 0, 0)
	turn := s.Insert("turn", scene.TransformData{
		Translation: &shift,
		Rotations:   []scene.Rotation{{Plane: geom.PlaneXY, Angle: math.Pi / 2}},
	}, box)
	s.AddRoot(turn)

	c, err := tessellate.Tessellate(s, nil)
	require.NoError(t, err)
	// The box spans x in [1, 2], y in [0, 1]; a quarter turn about the
	// origin maps it to x in [-1, 0], y in [1, 2], then it moves +100 in x.
	assertPoint(t, geom.NewPoint3D(99, 1, 0), minCorner(t, c.Components()[0]))
}

func TestInnerTransformAppliesFirst(t *testing.T) {
	s := scene.New()
	box := s.Insert("box", scene.PrismData{Size: [3]float64{1, 1, 1}})
	shift := geom.NewPoint3D(10, 0, 0)
	inner := s.Insert("inner", scene.TransformData{Translation: &shift}, box)
	outer := s.Insert("outer", scene.TransformData{
		Rotations: []scene.Rotation{{Plane: geom.PlaneXY, Angle: math.Pi / 2}},
	}, inner)
	s.AddRoot(outer)

	c, err := tessellate.Tessellate(s, nil)
	require.NoError(t, err)
	// Shifted to x in [10, 11] first, then turned to y in [10, 11].
	assertPoint(t, geom.NewPoint3D(-1, 10, 0), minCorner(t, c.Components()[0]))
}

func TestSharedChildIsInstanced(t *testing.T) {
	s := scene.New()
	leg := s.Insert("leg", scene.PrismData{Size: [3]float64{1, 1, 5}})
	a, b := geom.NewPoint3D(0, 0, 0), geom.NewPoint3D(20, 0, 0)
	left := s.Insert("left", scene.TransformData{Translation: &a}, leg)
	right := s.Insert("right", scene.TransformData{Translation: &b}, leg)
	s.AddRoot(s.Insert("legs", scene.GroupData{}, left, right))

	c, err := tessellate.Tessellate(s, nil)
	require.NoError(t, err)
	require.Len(t, c.Components(), 2)
	assertPoint(t, geom.NewPoint3D(0, 0, 0), minCorner(t, c.Components()[0]))
	assertPoint(t, geom.NewPoint3D(20, 0, 0), minCorner(t, c.Components()[1]))
}

func TestCurvedPrimitivesUseKernel(t *testing.T) {
	s := scene.New()
	ball := s.Insert("ball", scene.SphereData{Center: geom.NewPoint3D(5, 5, 5), Radius: 1, Color: shape.RGB(0, 255, 0)})
	can := s.Insert("can", scene.CylinderData{Center: geom.NewPoint3D(-5, 0, 0), Height: 2, Radius: 1})
	s.AddRoot(s.Insert("root", scene.GroupData{}, ball, can))

	k := &tetKernel{}
	c, err := tessellate.Tessellate(s, k)
	require.NoError(t, err)
	assert.Equal(t, 2, k.calls)
	require.Len(t, c.Components(), 2)
	assert.Len(t, c.AllFaces(), 8)
	assertPoint(t, geom.NewPoint3D(5, 5, 5), minCorner(t, c.Components()[0]))
	assertPoint(t, geom.NewPoint3D(-5, 0, 0), minCorner(t, c.Components()[1]))
	assert.Equal(t, shape.RGB(0, 255, 0), c.Components()[0].Faces()[0].Color())
}

func TestCurvedPrimitiveRotatedByKernel(t *testing.T) {
	s := scene.New()
	ball := s.Insert("ball", scene.SphereData{Center: geom.NewPoint3D(11, 0, 0), Radius: 1})
	shift := geom.NewPoint3D(100, 0, 0)
	turn := s.Insert("turn", scene.TransformData{
		Translation: &shift,
		Rotations: []scene.Rotation{{
			Plane: geom.PlaneXY,
			Angle: math.Pi / 2,
			About: geom.NewPoint3D(10, 0, 0),
		}},
	}, ball)
	s.AddRoot(turn)

	k := &tetKernel{}
	c, err := tessellate.Tessellate(s, k)
	require.NoError(t, err)
	assert.Equal(t, []string{"sphere", "rotate"}, k.ops)
	require.Len(t, c.Components(), 1)
	// (11, 0) turns a quarter about (10, 0) to (10, 1), then moves +100 in x.
	// Mesh coordinates are float32.
	d, err := geom.Dist(geom.NewPoint3D(110, 1, 0), minCorner(t, c.Components()[0]))
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-4)
}

func TestBooleanUsesKernel(t *testing.T) {
	tests := []struct {
		op   scene.BooleanOp
		want string
	}{
		{scene.OpUnion, "union"},
		{scene.OpDifference, "difference"},
		{scene.OpIntersection, "intersection"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s := scene.New()
			block := s.Insert("block", scene.PrismData{Origin: geom.NewPoint3D(5, 0, 0), Size: [3]float64{2, 2, 2}})
			hole := s.Insert("hole", scene.SphereData{Center: geom.NewPoint3D(6, 1, 1), Radius: 1})
			s.AddRoot(s.Insert("part", scene.BooleanData{Op: tt.op, Color: shape.RGB(9, 9, 9)}, block, hole))

			k := &tetKernel{}
			c, err := tessellate.Tessellate(s, k)
			require.NoError(t, err)
			assert.Equal(t, []string{"box", "sphere", tt.want}, k.ops)
			assert.Equal(t, 1, k.calls, "operands are not meshed on their own")
			require.Len(t, c.Components(), 1)
			assertPoint(t, geom.NewPoint3D(5, 0, 0), minCorner(t, c.Components()[0]))
			assert.Equal(t, shape.RGB(9, 9, 9), c.AllFaces()[0].Color())
		})
	}
}

func TestBooleanOperandTransform(t *testing.T) {
	s := scene.New()
	block := s.Insert("block", scene.PrismData{Size: [3]float64{2, 2, 2}})
	up := geom.NewPoint3D(0, 0, 30)
	lifted := s.Insert("lifted", scene.TransformData{Translation: &up}, block)
	pin := s.Insert("pin", scene.CylinderData{Height: 4, Radius: 0.5})
	part := s.Insert("part", scene.BooleanData{Op: scene.OpUnion}, lifted, pin)
	over := geom.NewPoint3D(7, 0, 0)
	s.AddRoot(s.Insert("place", scene.TransformData{Translation: &over}, part))

	k := &tetKernel{}
	c, err := tessellate.Tessellate(s, k)
	require.NoError(t, err)
	assert.Equal(t, []string{"box", "cylinder", "union"}, k.ops)
	require.Len(t, c.Components(), 1)
	assertPoint(t, geom.NewPoint3D(7, 0, 30), minCorner(t, c.Components()[0]))
}

func TestBooleanWithoutKernel(t *testing.T) {
	s := scene.New()
	a := s.Insert("a", scene.PrismData{Size: [3]float64{1, 1, 1}})
	b := s.Insert("b", scene.PrismData{Size: [3]float64{1, 1, 1}})
	s.AddRoot(s.Insert("ab", scene.BooleanData{}, a, b))
	_, err := tessellate.Tessellate(s, nil)
	assert.True(t, errors.Is(err, tessellate.ErrNoKernel))
}

func TestRepeatedNameRejected(t *testing.T) {
	s := scene.New()
	first := s.Insert("leg", scene.PrismData{Size: [3]float64{1, 1, 1}})
	second := s.Insert("leg", scene.PrismData{Origin: geom.NewPoint3D(9, 0, 0), Size: [3]float64{1, 1, 1}})
	s.AddRoot(s.Insert("legs", scene.GroupData{}, first, second))

	_, err := tessellate.Tessellate(s, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tessellate.ErrInvalidScene))
	assert.Contains(t, err.Error(), `duplicate node "leg"`)
}

func TestCurvedPrimitiveWithoutKernel(t *testing.T) {
	s := scene.New()
	s.AddRoot(s.Insert("ball", scene.SphereData{Radius: 1}))
	_, err := tessellate.Tessellate(s, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tessellate.ErrNoKernel))
}

func TestInvalidSceneRejected(t *testing.T) {
	s := scene.New()
	s.AddRoot(s.Insert("bad", scene.PrismData{Size: [3]float64{0, 1, 1}}))
	_, err := tessellate.Tessellate(s, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tessellate.ErrInvalidScene))
	assert.Contains(t, err.Error(), "prism size")
}

func TestOrphanWarningIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := scene.New()
	s.AddRoot(s.Insert("box", scene.PrismData{Size: [3]float64{1, 1, 1}}))
	s.Insert("spare", scene.PrismData{Size: [3]float64{1, 1, 1}})

	c, err := tessellate.New(nil, tessellate.WithLogger(zap.New(core))).Tessellate(s)
	require.NoError(t, err)
	assert.Len(t, c.Components(), 1)
	assert.Equal(t, 1, logs.FilterMessage("scene validation").Len())
}

func TestSdfxSphere(t *testing.T) {
	if testing.Short() {
		t.Skip("marching cubes in short mode")
	}
	s := scene.New()
	s.AddRoot(s.Insert("ball", scene.SphereData{Center: geom.NewPoint3D(0, 0, 100), Radius: 10}))

	c, err := tessellate.Tessellate(s, sdfx.New(sdfx.WithCells(12)))
	require.NoError(t, err)
	require.Len(t, c.Components(), 1)
	center, err := c.Components()[0].Center()
	require.NoError(t, err)
	assert.InDelta(t, 100, center.Z(), 1)
	assert.Greater(t, len(c.AllFaces()), 20)
}

func TestSdfxDifference(t *testing.T) {
	if testing.Short() {
		t.Skip("marching cubes in short mode")
	}
	s := scene.New()
	block := s.Insert("block", scene.PrismData{Size: [3]float64{20, 20, 20}})
	bite := s.Insert("bite", scene.SphereData{Center: geom.NewPoint3D(20, 20, 20), Radius: 8})
	s.AddRoot(s.Insert("bitten", scene.BooleanData{Op: scene.OpDifference}, block, bite))

	c, err := tessellate.Tessellate(s, sdfx.New(sdfx.WithCells(16)))
	require.NoError(t, err)
	require.Len(t, c.Components(), 1)
	for _, v := range c.Components()[0].Vertices() {
		d, err := geom.Dist(v, geom.NewPoint3D(20, 20, 20))
		require.NoError(t, err)
		assert.Greater(t, d, 7.0, "no vertex inside the removed sphere: %v", v)
	}
}
