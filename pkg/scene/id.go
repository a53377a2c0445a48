package scene

import "github.com/google/uuid"

// namespace seeds name-derived node IDs.
var namespace = uuid.MustParse("6f1c3a52-8d0e-4b7f-9a61-3c2d5e4f7a10")

// NodeID identifies a node in the scene.
type NodeID uuid.UUID

// NewNodeID derives a stable ID from a path-like name such as
// "table/leg-1". The same name always yields the same ID.
func NewNodeID(name string) NodeID {
	return NodeID(uuid.NewSHA1(namespace, []byte(name)))
}

// RandomNodeID returns a fresh random ID.
func RandomNodeID() NodeID {
	return NodeID(uuid.New())
}

func (id NodeID) String() string { return uuid.UUID(id).String() }

// Short returns the first eight hex digits, for messages.
func (id NodeID) Short() string { return id.String()[:8] }

// IsZero reports whether id is the zero value.
func (id NodeID) IsZero() bool { return id == NodeID{} }
