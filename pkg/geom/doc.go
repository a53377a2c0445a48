// Package geom implements the point algebra used by painter3d.
//
// Points come in three variants: Point (any dimension), Point2D and
// Point3D. All of them satisfy Vector, and each can rebuild itself from a
// raw coordinate slice of its own arity (see Kind). The generic
// operations in this package (Add, Sub, Neg, Mul, Div) use that contract
// so that the result always has the same concrete type as the left
// operand.
//
// Rotation happens inside a Plane: the two axes named by the plane's
// basis are rotated about a pivot and every other axis is left alone.
package geom
