// SPDX-License-Identifier: MIT

package interval

import "github.com/chewxy/math32"

// Scalar forms of the operators whose conventions the interval forms mirror.
// Buffer kernels call these so both evaluators agree on edge cases.

// DivValue returns a / b, or 0 when b is 0.
func DivValue(a, b float32) float32 {
	if b == 0 {
		return 0
	}

	return a / b
}

// SqrtValue returns sqrt(max(v, 0)).
func SqrtValue(v float32) float32 {
	if v < 0 {
		return 0
	}

	return math32.Sqrt(v)
}

// ClampValue returns min(max(v, lo), hi).
func ClampValue(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}

// LerpValue returns a + t*(b-a).
func LerpValue(a, b, t float32) float32 {
	return a + t*(b-a)
}

// SmoothstepValue is the cubic Hermite step between edge0 and edge1.
// Equal edges degrade to a hard step at the edge.
func SmoothstepValue(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}

		return 1
	}
	t := ClampValue((x-edge0)/(edge1-edge0), 0, 1)

	return t * t * (3 - 2*t)
}

// StepifyValue snaps v to the nearest multiple of step. A zero step is a no-op.
func StepifyValue(v, step float32) float32 {
	if step == 0 {
		return v
	}

	return math32.Floor(v/step+0.5) * step
}

// WrapfValue wraps v into [0, length) (or (length, 0] for negative lengths).
// A zero length yields 0.
func WrapfValue(v, length float32) float32 {
	if length == 0 {
		return 0
	}

	return v - length*math32.Floor(v/length)
}

// FractValue returns v - floor(v).
func FractValue(v float32) float32 {
	return v - math32.Floor(v)
}

// SelectValue returns a when t < threshold, b otherwise.
func SelectValue(a, b, threshold, t float32) float32 {
	if t < threshold {
		return a
	}

	return b
}

// Skew3Value returns (v³ + v) / 2, a cheap odd-symmetric stand-in for
// asin(v)/(π/2) on [-1, 1].
func Skew3Value(v float32) float32 {
	return (v*v*v + v) * 0.5
}
