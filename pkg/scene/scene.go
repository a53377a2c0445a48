package scene

import "fmt"

// Scene is a DAG of nodes reachable from Roots. Shared children are
// instanced: every path to a primitive produces its own solid.
type Scene struct {
	Nodes     map[NodeID]*Node
	Roots     []NodeID
	NameIndex map[string]NodeID

	// clashes holds nodes turned away by AddNode because their ID was
	// already taken.
	clashes []*Node
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
	}
}

// AddNode adds a node to the scene. A node whose ID is already taken is
// not added: the first node stays and Validate reports the clash.
func (s *Scene) AddNode(n *Node) {
	if _, ok := s.Nodes[n.ID]; ok {
		s.clashes = append(s.clashes, n)
		return
	}
	s.Nodes[n.ID] = n
	if n.Name != "" {
		s.NameIndex[n.Name] = n.ID
	}
}

// Insert builds a node named name from data, adds it and returns its ID.
// The kind follows from the data type and the ID from the name, so a
// second node with the same name resolves to the first one's ID and is
// reported by Validate.
func (s *Scene) Insert(name string, data NodeData, children ...NodeID) NodeID {
	id := NewNodeID(name)
	if name == "" {
		id = RandomNodeID()
	}
	s.AddNode(&Node{
		ID:       id,
		Kind:     data.kind(),
		Name:     name,
		Children: children,
		Data:     data,
	})
	return id
}

// AddRoot registers a node ID as a root of the scene.
func (s *Scene) AddRoot(id NodeID) {
	s.Roots = append(s.Roots, id)
}

// Lookup returns the node with the given user-assigned name, or nil.
func (s *Scene) Lookup(name string) *Node {
	id, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Nodes[id]
}

// MustLookup returns the node with the given name, or panics.
func (s *Scene) MustLookup(name string) *Node {
	n := s.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("scene: no node named %q", name))
	}
	return n
}

// Get returns the node with the given ID, or nil.
func (s *Scene) Get(id NodeID) *Node {
	return s.Nodes[id]
}

// Primitives returns all primitive nodes in the scene.
func (s *Scene) Primitives() []*Node {
	var prims []*Node
	for _, n := range s.Nodes {
		if n.Kind == NodePrimitive {
			prims = append(prims, n)
		}
	}
	return prims
}

// Children returns the child nodes of the given node.
func (s *Scene) Children(n *Node) []*Node {
	children := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		if c := s.Nodes[cid]; c != nil {
			children = append(children, c)
		}
	}
	return children
}

// NodeCount returns the total number of nodes.
func (s *Scene) NodeCount() int {
	return len(s.Nodes)
}
