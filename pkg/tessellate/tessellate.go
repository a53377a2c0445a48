// Package tessellate walks a scene graph and produces the solids to render.
// Prisms are built directly as shape.Prism faces. Spheres, cylinders and
// boolean nodes are built, transformed and meshed by a geometry kernel.
// Every primitive or boolean instance becomes one component of the
// returned composite.
package tessellate

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chazu/painter3d/pkg/kernel"
	"github.com/chazu/painter3d/pkg/scene"
	"github.com/chazu/painter3d/pkg/shape"
)

// ErrNoKernel is returned when a curved primitive is met without a kernel.
var ErrNoKernel = errors.New("curved primitive needs a geometry kernel")

// ErrInvalidScene wraps the validation findings that block tessellation.
var ErrInvalidScene = errors.New("invalid scene")

// transformStack accumulates spatial transforms during graph traversal.
type transformStack struct {
	frames []scene.TransformData
}

func (ts *transformStack) push(td scene.TransformData) {
	ts.frames = append(ts.frames, td)
}

func (ts *transformStack) pop() {
	if len(ts.frames) > 0 {
		ts.frames = ts.frames[:len(ts.frames)-1]
	}
}

// apply transforms s by every frame from the innermost outwards. Within a
// frame the rotations run in order, then the translation.
func (ts *transformStack) apply(s *shape.Solid) error {
	for i := len(ts.frames) - 1; i >= 0; i-- {
		td := ts.frames[i]
		for j, r := range td.Rotations {
			if err := s.Rotate(r.About, r.Angle, r.Plane); err != nil {
				return errors.Wrapf(err, "rotation %d", j)
			}
		}
		if td.Translation != nil {
			s.Translate(*td.Translation)
		}
	}
	return nil
}

// applyKernel is apply for a kernel solid.
func (ts *transformStack) applyKernel(k kernel.Kernel, ks kernel.Solid) (kernel.Solid, error) {
	for i := len(ts.frames) - 1; i >= 0; i-- {
		var err error
		if ks, err = frame(k, ks, ts.frames[i]); err != nil {
			return nil, err
		}
	}
	return ks, nil
}

// frame applies one transform in kernel space. The kernel rotates about
// the origin, so each rotation is wrapped in a move to and from its pivot.
func frame(k kernel.Kernel, ks kernel.Solid, td scene.TransformData) (kernel.Solid, error) {
	for i, r := range td.Rotations {
		ks = k.Translate(ks, r.About.Neg())
		turned, err := k.Rotate(ks, r.Plane, r.Angle)
		if err != nil {
			return nil, errors.Wrapf(err, "rotation %d", i)
		}
		ks = k.Translate(turned, r.About)
	}
	if td.Translation != nil {
		ks = k.Translate(ks, *td.Translation)
	}
	return ks, nil
}

// Option configures a Tessellator.
type Option func(*Tessellator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tessellator) {
		if l != nil {
			t.logger = l
		}
	}
}

// Tessellator turns scenes into composites.
type Tessellator struct {
	kernel kernel.Kernel
	logger *zap.Logger
}

// New returns a Tessellator. k may be nil for prism-only scenes.
func New(k kernel.Kernel, opts ...Option) *Tessellator {
	t := &Tessellator{kernel: k, logger: zap.NewNop()}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Tessellate is shorthand for New(k).Tessellate(s).
func Tessellate(s *scene.Scene, k kernel.Kernel) (*shape.Composite, error) {
	return New(k).Tessellate(s)
}

// Tessellate validates s, walks it from its roots and returns one solid per
// primitive instance. The scene is never mutated.
func (t *Tessellator) Tessellate(s *scene.Scene) (*shape.Composite, error) {
	if s == nil {
		return shape.NewComposite(), nil
	}
	findings := scene.Validate(s)
	for _, f := range findings {
		if f.Severity == scene.SeverityWarning {
			t.logger.Warn("scene validation", zap.String("finding", f.Message))
		}
	}
	if err := scene.Err(findings); err != nil {
		return nil, errors.Wrap(ErrInvalidScene, err.Error())
	}

	out := shape.NewComposite()
	ts := &transformStack{}
	for _, rootID := range s.Roots {
		root := s.Get(rootID)
		if err := t.walkNode(s, root, ts, out); err != nil {
			return nil, errors.Wrapf(err, "tessellate: root %s", rootID.Short())
		}
	}
	t.logger.Debug("tessellated scene",
		zap.Int("nodes", s.NodeCount()),
		zap.Int("solids", len(out.Components())),
		zap.Int("faces", len(out.AllFaces())))
	return out, nil
}

// walkNode recursively traverses a node and its children, collecting solids.
func (t *Tessellator) walkNode(s *scene.Scene, n *scene.Node, ts *transformStack, out *shape.Composite) error {
	switch n.Kind {
	case scene.NodePrimitive:
		if d, ok := n.Data.(scene.PrismData); ok {
			solid, err := prism(n, d)
			if err != nil {
				return err
			}
			if err := ts.apply(solid); err != nil {
				return errors.Wrapf(err, "node %s", label(n))
			}
			out.Add(solid)
			return nil
		}
		return t.meshNode(s, n, ts, out)

	case scene.NodeBoolean:
		return t.meshNode(s, n, ts, out)

	case scene.NodeTransform:
		ts.push(n.Data.(scene.TransformData))
		defer ts.pop()
		return t.walkChildren(s, n, ts, out)

	case scene.NodeGroup:
		return t.walkChildren(s, n, ts, out)

	default:
		return errors.Errorf("unknown node kind: %v", n.Kind)
	}
}

func (t *Tessellator) walkChildren(s *scene.Scene, n *scene.Node, ts *transformStack, out *shape.Composite) error {
	for _, child := range s.Children(n) {
		if err := t.walkNode(s, child, ts, out); err != nil {
			return err
		}
	}
	return nil
}

// prism creates a fresh solid for a prism node, in scene space before any
// transform.
func prism(n *scene.Node, d scene.PrismData) (*shape.Solid, error) {
	p, err := shape.NewPrism(d.Origin, d.Size[0], d.Size[1], d.Size[2], d.Colors...)
	if err != nil {
		return nil, errors.Wrapf(err, "prism %s", label(n))
	}
	return p.Solid, nil
}

// meshNode builds n in the kernel, applies the enclosing transforms there
// and converts the meshed triangles into a closed shape.Solid.
func (t *Tessellator) meshNode(s *scene.Scene, n *scene.Node, ts *transformStack, out *shape.Composite) error {
	if t.kernel == nil {
		return errors.Wrapf(ErrNoKernel, "node %s", label(n))
	}
	ks, err := t.build(s, n)
	if err != nil {
		return err
	}
	if ks, err = ts.applyKernel(t.kernel, ks); err != nil {
		return errors.Wrapf(err, "node %s", label(n))
	}
	m, err := t.kernel.ToMesh(ks)
	if err != nil {
		return errors.Wrapf(err, "tessellate: ToMesh failed for node %s", label(n))
	}
	m.Name = label(n)
	solid, err := m.Solid(fill(n))
	if err != nil {
		return errors.Wrapf(err, "node %s", label(n))
	}
	t.logger.Debug("meshed node",
		zap.String("node", m.Name),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("faces", len(solid.Faces())))
	out.Add(solid)
	return nil
}

// build returns the kernel solid for n in scene space. Transforms met
// below a boolean node are applied here; the ones above it are left to
// the caller.
func (t *Tessellator) build(s *scene.Scene, n *scene.Node) (kernel.Solid, error) {
	k := t.kernel
	switch d := n.Data.(type) {
	case scene.PrismData:
		ks, err := k.Box(d.Size[0], d.Size[1], d.Size[2])
		if err != nil {
			return nil, errors.Wrapf(err, "node %s", label(n))
		}
		return k.Translate(ks, d.Origin), nil

	case scene.SphereData:
		ks, err := k.Sphere(d.Radius)
		if err != nil {
			return nil, errors.Wrapf(err, "node %s", label(n))
		}
		return k.Translate(ks, d.Center), nil

	case scene.CylinderData:
		ks, err := k.Cylinder(d.Height, d.Radius)
		if err != nil {
			return nil, errors.Wrapf(err, "node %s", label(n))
		}
		return k.Translate(ks, d.Center), nil

	case scene.TransformData:
		children := s.Children(n)
		if len(children) != 1 {
			return nil, errors.Errorf("transform %s under a boolean has %d children", label(n), len(children))
		}
		ks, err := t.build(s, children[0])
		if err != nil {
			return nil, err
		}
		ks, err = frame(k, ks, d)
		if err != nil {
			return nil, errors.Wrapf(err, "node %s", label(n))
		}
		return ks, nil

	case scene.BooleanData:
		ops := s.Children(n)
		if len(ops) != 2 {
			return nil, errors.Errorf("boolean %s has %d operands", label(n), len(ops))
		}
		a, err := t.build(s, ops[0])
		if err != nil {
			return nil, err
		}
		b, err := t.build(s, ops[1])
		if err != nil {
			return nil, err
		}
		switch d.Op {
		case scene.OpUnion:
			return k.Union(a, b), nil
		case scene.OpDifference:
			return k.Difference(a, b), nil
		case scene.OpIntersection:
			return k.Intersection(a, b), nil
		default:
			return nil, errors.Errorf("boolean %s has unknown op %v", label(n), d.Op)
		}

	default:
		return nil, errors.Errorf("node %s has unsupported data type %T", label(n), n.Data)
	}
}

// fill returns the color a meshed node is painted with.
func fill(n *scene.Node) shape.Color {
	switch d := n.Data.(type) {
	case scene.SphereData:
		return d.Color
	case scene.CylinderData:
		return d.Color
	case scene.BooleanData:
		return d.Color
	default:
		return shape.DefaultColor
	}
}

// label prefers the node's Name, falling back to its short ID.
func label(n *scene.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID.Short()
}
