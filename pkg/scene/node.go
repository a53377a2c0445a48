package scene

// NodeKind enumerates the types of nodes in the scene graph.
type NodeKind int

const (
	NodePrimitive NodeKind = iota // prism, sphere, cylinder
	NodeTransform                 // rotation and translation of children
	NodeGroup                     // logical grouping
	NodeBoolean                   // CSG combination of two children
)

func (k NodeKind) String() string {
	switch k {
	case NodePrimitive:
		return "primitive"
	case NodeTransform:
		return "transform"
	case NodeGroup:
		return "group"
	case NodeBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Node is the fundamental element of the scene graph.
type Node struct {
	ID       NodeID
	Kind     NodeKind
	Name     string
	Children []NodeID
	Data     NodeData
}

// NodeData is the interface for kind-specific node payloads.
type NodeData interface {
	kind() NodeKind
}
