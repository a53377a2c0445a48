package project

import "math"

// DefaultDepthConstant is the rate k of the default curve 1 - e^(-kz).
const DefaultDepthConstant = 0.005

// DepthAttenuation maps a depth to the fraction of the distance to the
// vanishing point that a point is pulled in by.
type DepthAttenuation func(z float64) float64

// ExpComplement returns 1 - e^(-kz). It is 0 at z=0 and saturates at 1
// as z grows, so far points converge on the vanishing point.
func ExpComplement(k float64) DepthAttenuation {
	return func(z float64) float64 {
		return 1 - math.Exp(-k*z)
	}
}

// Linear returns scale*z clamped to at most 1.
func Linear(scale float64) DepthAttenuation {
	return func(z float64) float64 {
		return math.Min(1, scale*z)
	}
}

// None disables depth: every point projects to its (x, y).
func None(float64) float64 {
	return 0
}
