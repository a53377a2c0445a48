package scene

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// ValidationSeverity indicates whether a validation finding blocks
// tessellation or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks tessellation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	NodeID   NodeID             // which node has the problem (zero if scene-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.NodeID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] node %s: %s", e.Severity, e.NodeID.Short(), e.Message)
}

// Validate runs all structural checks on the scene and returns every
// finding. An empty slice means the scene is valid. Validate never mutates
// the scene.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateDAG(s)...)
	errs = append(errs, validateReferences(s)...)
	errs = append(errs, validateNames(s)...)
	errs = append(errs, validateRoots(s)...)
	errs = append(errs, validateData(s)...)
	return errs
}

// Err combines the error-severity findings into one error, or nil.
func Err(findings []ValidationError) error {
	var err error
	for _, f := range findings {
		if f.Severity == SeverityError {
			err = multierr.Append(err, f)
		}
	}
	return err
}

// validateDAG checks for cycles using DFS with 3-color marking.
// White (0) = unvisited, gray (1) = in current DFS path, black (2) = fully explored.
func validateDAG(s *Scene) []ValidationError {
	const (
		white = iota
		gray
		black
	)

	color := make(map[NodeID]int)
	var errs []ValidationError

	var visit func(id NodeID) bool // returns true if cycle found
	visit = func(id NodeID) bool {
		switch color[id] {
		case black:
			return false
		case gray:
			errs = append(errs, ValidationError{
				NodeID:   id,
				Message:  fmt.Sprintf("cycle detected: node %s is part of a cycle", id.Short()),
				Severity: SeverityError,
			})
			return true
		}

		color[id] = gray

		node, ok := s.Nodes[id]
		if !ok {
			// Dangling reference; handled by validateReferences.
			color[id] = black
			return false
		}

		for _, childID := range node.Children {
			if visit(childID) {
				return true
			}
		}

		color[id] = black
		return false
	}

	for id := range s.Nodes {
		if color[id] == white {
			if visit(id) {
				// One cycle error is sufficient; stop early.
				break
			}
		}
	}

	return errs
}

// validateReferences checks that every child ID points to an existing node.
func validateReferences(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, node := range s.Nodes {
		for _, childID := range node.Children {
			if _, ok := s.Nodes[childID]; !ok {
				errs = append(errs, ValidationError{
					NodeID:   node.ID,
					Message:  fmt.Sprintf("child reference %s does not exist", childID.Short()),
					Severity: SeverityError,
				})
			}
		}
	}
	return errs
}

// validateNames checks that no two nodes share a name and that every
// NameIndex entry points to an existing node.
func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError

	for name, id := range s.NameIndex {
		if _, ok := s.Nodes[id]; !ok {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("name index entry %q references non-existent node %s", name, id.Short()),
				Severity: SeverityError,
			})
		}
	}

	for _, n := range s.clashes {
		errs = append(errs, ValidationError{
			NodeID:   n.ID,
			Message:  fmt.Sprintf("duplicate node %q: a node with the same ID already exists", n.Name),
			Severity: SeverityError,
		})
	}

	nameToNodes := make(map[string][]NodeID)
	for id, node := range s.Nodes {
		if node.Name != "" {
			nameToNodes[node.Name] = append(nameToNodes[node.Name], id)
		}
	}
	for name, ids := range nameToNodes {
		if len(ids) > 1 {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("duplicate name %q assigned to %d nodes", name, len(ids)),
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// validateRoots checks that the scene has roots, that each exists, and
// warns about nodes unreachable from any root.
func validateRoots(s *Scene) []ValidationError {
	var errs []ValidationError

	if len(s.Nodes) == 0 {
		return errs
	}
	if len(s.Roots) == 0 {
		errs = append(errs, ValidationError{
			Message:  "scene has nodes but no roots",
			Severity: SeverityError,
		})
	}

	reachable := make(map[NodeID]bool)
	queue := make([]NodeID, 0, len(s.Roots))
	for _, rid := range s.Roots {
		if _, ok := s.Nodes[rid]; !ok {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("root reference %s does not exist", rid.Short()),
				Severity: SeverityError,
			})
			continue
		}
		if !reachable[rid] {
			reachable[rid] = true
			queue = append(queue, rid)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		node := s.Nodes[current]
		if node == nil {
			continue
		}
		for _, childID := range node.Children {
			if !reachable[childID] {
				reachable[childID] = true
				queue = append(queue, childID)
			}
		}
	}

	for id, node := range s.Nodes {
		if !reachable[id] {
			name := node.Name
			if name == "" {
				name = id.Short()
			}
			errs = append(errs, ValidationError{
				NodeID:   id,
				Message:  fmt.Sprintf("node %q is not reachable from any root (orphan)", name),
				Severity: SeverityWarning,
			})
		}
	}

	return errs
}

// validateData checks kind/data agreement, primitive sizes and rotation
// planes.
func validateData(s *Scene) []ValidationError {
	var errs []ValidationError
	report := func(n *Node, format string, args ...any) {
		errs = append(errs, ValidationError{
			NodeID:   n.ID,
			Message:  fmt.Sprintf(format, args...),
			Severity: SeverityError,
		})
	}

	for _, node := range s.Nodes {
		if node.Data == nil {
			report(node, "%s node has no data", node.Kind)
			continue
		}
		if k := node.Data.kind(); k != node.Kind {
			report(node, "%s node carries %s data", node.Kind, k)
			continue
		}
		if node.Kind == NodePrimitive && len(node.Children) > 0 {
			report(node, "primitive has %d children", len(node.Children))
		}

		switch d := node.Data.(type) {
		case PrismData:
			if !positive(d.Size[:]...) {
				report(node, "prism size %v must be positive", d.Size)
			}
		case SphereData:
			if !positive(d.Radius) {
				report(node, "sphere radius %v must be positive", d.Radius)
			}
		case CylinderData:
			if !positive(d.Height, d.Radius) {
				report(node, "cylinder height %v and radius %v must be positive", d.Height, d.Radius)
			}
		case BooleanData:
			errs = append(errs, validateBoolean(s, node, d)...)
		case TransformData:
			for i, r := range d.Rotations {
				a, b := r.Plane.Basis()
				if !r.Plane.Valid() || a > 2 || b > 2 {
					report(node, "rotation %d has no 3D plane", i)
				}
				if math.IsNaN(r.Angle) || math.IsInf(r.Angle, 0) {
					report(node, "rotation %d angle %v is not finite", i, r.Angle)
				}
			}
		}
	}

	return errs
}

// validateBoolean checks that a boolean node has two operands the kernel
// can build.
func validateBoolean(s *Scene, n *Node, d BooleanData) []ValidationError {
	var errs []ValidationError
	report := func(format string, args ...any) {
		errs = append(errs, ValidationError{
			NodeID:   n.ID,
			Message:  fmt.Sprintf(format, args...),
			Severity: SeverityError,
		})
	}

	if d.Op < OpUnion || d.Op > OpIntersection {
		report("unknown boolean op %d", int(d.Op))
	}
	if len(n.Children) != 2 {
		report("boolean needs 2 operands, has %d", len(n.Children))
	}
	for _, cid := range n.Children {
		c := s.Nodes[cid]
		if c == nil {
			continue
		}
		switch c.Kind {
		case NodeGroup:
			report("boolean operand %s is a group", c.ID.Short())
		case NodeTransform:
			if len(c.Children) != 1 {
				report("boolean operand %s is a transform with %d children, want 1", c.ID.Short(), len(c.Children))
			}
		}
	}
	return errs
}

func positive(vals ...float64) bool {
	for _, v := range vals {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
