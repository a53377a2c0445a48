package main

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/scene"
	"github.com/chazu/painter3d/pkg/shape"
)

// ErrUnknownScene is returned for a scene name not in sceneBuilders.
var ErrUnknownScene = errors.New("unknown scene")

// sceneBuilders holds the built-in demo scenes, sized for an 800x600
// viewport.
var sceneBuilders = map[string]func() *scene.Scene{
	"cube":   cubeScene,
	"table":  tableScene,
	"shapes": shapesScene,
	"csg":    csgScene,
}

// sceneNames returns the built-in scene names in order.
func sceneNames() []string {
	names := make([]string, 0, len(sceneBuilders))
	for n := range sceneBuilders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// buildScene returns a fresh copy of the named scene.
func buildScene(name string) (*scene.Scene, error) {
	b, ok := sceneBuilders[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q (have %v)", name, sceneNames())
	}
	return b(), nil
}

func cubeScene() *scene.Scene {
	s := scene.New()
	s.AddRoot(s.Insert("cube", scene.PrismData{
		Origin: geom.NewPoint3D(350, 250, 0),
		Size:   [3]float64{100, 100, 100},
		Colors: palette(6),
	}))
	return s
}

// tableScene is a top on four instances of one leg, turned a little so
// the legs at the back show.
func tableScene() *scene.Scene {
	s := scene.New()
	top := s.Insert("top", scene.PrismData{
		Origin: geom.NewPoint3D(250, 150, 50),
		Size:   [3]float64{300, 20, 200},
		Colors: []shape.Color{paletteColor(1)},
	})
	leg := s.Insert("leg", scene.PrismData{
		Size:   [3]float64{20, 200, 20},
		Colors: []shape.Color{paletteColor(0)},
	})

	legs := []scene.NodeID{top}
	for i, at := range []geom.Point3D{
		geom.NewPoint3D(250, 170, 50),
		geom.NewPoint3D(530, 170, 50),
		geom.NewPoint3D(250, 170, 230),
		geom.NewPoint3D(530, 170, 230),
	} {
		legs = append(legs, s.Insert(legName(i), scene.TransformData{Translation: &at}, leg))
	}

	turn := s.Insert("turn", scene.TransformData{
		Rotations: []scene.Rotation{{
			Plane: geom.PlaneXZ,
			Angle: math.Pi / 9,
			About: geom.NewPoint3D(400, 270, 150),
		}},
	}, legs...)
	s.AddRoot(s.Insert("table", scene.GroupData{Description: "four-legged table"}, turn))
	return s
}

func legName(i int) string {
	return [...]string{"leg-front-left", "leg-front-right", "leg-back-left", "leg-back-right"}[i]
}

// shapesScene places a sphere and a cylinder from the kernel either side
// of a prism.
func shapesScene() *scene.Scene {
	s := scene.New()
	box := s.Insert("box", scene.PrismData{
		Origin: geom.NewPoint3D(360, 260, 60),
		Size:   [3]float64{80, 80, 80},
		Colors: palette(6),
	})
	ball := s.Insert("ball", scene.SphereData{
		Center: geom.NewPoint3D(220, 300, 100),
		Radius: 60,
		Color:  paletteColor(2),
	})
	can := s.Insert("can", scene.CylinderData{
		Center: geom.NewPoint3D(580, 300, 100),
		Height: 120,
		Radius: 40,
		Color:  paletteColor(4),
	})
	tilt := s.Insert("tilt", scene.TransformData{
		Rotations: []scene.Rotation{{
			Plane: geom.PlaneYZ,
			Angle: math.Pi / 2,
			About: geom.NewPoint3D(580, 300, 100),
		}},
	}, can)
	s.AddRoot(s.Insert("shapes", scene.GroupData{}, box, ball, tilt))
	return s
}

// csgScene drills a cylinder through a block, bites a sphere out of one
// corner and turns the result so the hole faces the viewer at an angle.
func csgScene() *scene.Scene {
	s := scene.New()
	block := s.Insert("block", scene.PrismData{
		Origin: geom.NewPoint3D(320, 220, 60),
		Size:   [3]float64{160, 160, 160},
	})
	drill := s.Insert("drill", scene.CylinderData{
		Center: geom.NewPoint3D(400, 300, 140),
		Height: 200,
		Radius: 40,
	})
	drilled := s.Insert("drilled", scene.BooleanData{Op: scene.OpDifference}, block, drill)
	bite := s.Insert("bite", scene.SphereData{
		Center: geom.NewPoint3D(480, 220, 60),
		Radius: 60,
	})
	part := s.Insert("part", scene.BooleanData{Op: scene.OpDifference, Color: paletteColor(1)}, drilled, bite)
	turn := s.Insert("turn", scene.TransformData{
		Rotations: []scene.Rotation{{
			Plane: geom.PlaneXZ,
			Angle: math.Pi / 8,
			About: geom.NewPoint3D(400, 300, 140),
		}},
	}, part)
	s.AddRoot(turn)
	return s
}
