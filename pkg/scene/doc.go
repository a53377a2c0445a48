// Package scene defines the scene graph: a DAG of primitive, transform and
// group nodes that tessellate into a shape.Composite for rendering.
package scene
