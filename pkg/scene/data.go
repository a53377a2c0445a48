package scene

import (
	"github.com/chazu/painter3d/pkg/geom"
	"github.com/chazu/painter3d/pkg/shape"
)

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// PrismData is an axis-aligned rectangular prism with its minimum corner
// at Origin. Colors cycle across the six faces.
type PrismData struct {
	Origin geom.Point3D
	Size   [3]float64 // x, y, z edge lengths
	Colors []shape.Color
}

func (PrismData) kind() NodeKind { return NodePrimitive }

// SphereData is a sphere meshed by the kernel.
type SphereData struct {
	Center geom.Point3D
	Radius float64
	Color  shape.Color
}

func (SphereData) kind() NodeKind { return NodePrimitive }

// CylinderData is a Z-aligned cylinder meshed by the kernel.
type CylinderData struct {
	Center geom.Point3D
	Height float64
	Radius float64
	Color  shape.Color
}

func (CylinderData) kind() NodeKind { return NodePrimitive }

// ---------------------------------------------------------------------------
// Transform
// ---------------------------------------------------------------------------

// Rotation turns geometry by Angle radians within Plane, about a point.
type Rotation struct {
	Plane geom.Plane
	Angle float64
	About geom.Point3D
}

// TransformData applies its rotations in order, then the translation, to
// every primitive below it.
type TransformData struct {
	Translation *geom.Point3D
	Rotations   []Rotation
}

func (TransformData) kind() NodeKind { return NodeTransform }

// ---------------------------------------------------------------------------
// Group
// ---------------------------------------------------------------------------

// GroupData represents a logical grouping (assembly, subassembly).
type GroupData struct {
	Description string
}

func (GroupData) kind() NodeKind { return NodeGroup }

// ---------------------------------------------------------------------------
// Boolean
// ---------------------------------------------------------------------------

// BooleanOp selects how the two operands of a boolean node combine.
type BooleanOp int

const (
	OpUnion BooleanOp = iota
	OpDifference
	OpIntersection
)

func (o BooleanOp) String() string {
	switch o {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// BooleanData combines exactly two children, A then B, with Op. Operands
// are primitives, other boolean nodes, or transforms with a single child.
// The result is meshed by the kernel and filled with Color.
type BooleanData struct {
	Op    BooleanOp
	Color shape.Color
}

func (BooleanData) kind() NodeKind { return NodeBoolean }
