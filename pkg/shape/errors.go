package shape

import "github.com/pkg/errors"

var (
	// ErrVertexCount is returned for polygons with fewer than 3 vertices.
	ErrVertexCount = errors.New("polygon needs at least 3 vertices")

	// ErrVertexType is returned when the vertices of a polygon do not all
	// have the same dimension.
	ErrVertexType = errors.New("polygon vertices differ in type")

	// ErrFaceCount is returned for solids with fewer than 4 faces.
	ErrFaceCount = errors.New("solid needs at least 4 faces")

	// ErrOpenSolid is returned when a vertex of a solid belongs to a
	// single face, leaving a free-hanging edge.
	ErrOpenSolid = errors.New("unclosed solid")

	// ErrInvalidDimensions is returned for prisms with a non-positive or
	// non-finite edge length.
	ErrInvalidDimensions = errors.New("invalid prism dimensions")
)
