// Package kernel defines the solid modeling kernel used to mesh curved
// primitives into closed face sets. The sdfx backend lives in
// pkg/kernel/sdfx; callers depend only on this interface.
package kernel

import (
	"github.com/pkg/errors"

	"github.com/chazu/painter3d/pkg/geom"
)

// ErrInvalidSize is returned by primitive constructors for
// non-positive or non-finite dimensions.
var ErrInvalidSize = errors.New("primitive size must be positive")

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max geom.Point3D)
}

// Kernel builds, combines and meshes solids.
// Primitives are placed with their minimum corner (Box) or center
// (Sphere, Cylinder) at the origin.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) (Solid, error)
	Sphere(radius float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, offset geom.Point3D) Solid
	// Rotate turns s by angle radians within plane, about the origin.
	Rotate(s Solid, plane geom.Plane, angle float64) (Solid, error)

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
