// Package shape holds the polygon model: 2D polygons, 3D faces, closed
// solids built from faces, box-shaped prisms and composites of solids.
//
// Polygons are generic over a single point variant, so a face can never
// mix vertex types. Solids check at construction time that every vertex
// is shared by at least two faces; geometry that fails that check is
// never handed out.
package shape
