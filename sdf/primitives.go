// SPDX-License-Identifier: MIT

package sdf

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/voxgraph/interval"
)

// Plane returns the signed distance to the horizontal plane at height.
func Plane(y, height float32) float32 { return y - height }

// PlaneRange bounds Plane.
func PlaneRange(y, height interval.Interval) interval.Interval { return y.Sub(height) }

// Sphere returns the signed distance to the sphere of radius r at the origin.
func Sphere(x, y, z, r float32) float32 {
	return math32.Sqrt(x*x+y*y+z*z) - r
}

// SphereRange bounds Sphere.
func SphereRange(x, y, z, r interval.Interval) interval.Interval {
	return interval.Length3(x, y, z).Sub(r)
}

// Box returns the signed distance to the box with half extents (sx, sy, sz).
func Box(x, y, z, sx, sy, sz float32) float32 {
	dx := math32.Abs(x) - sx
	dy := math32.Abs(y) - sy
	dz := math32.Abs(z) - sz
	inside := math32.Min(math32.Max(dx, math32.Max(dy, dz)), 0)
	ox, oy, oz := math32.Max(dx, 0), math32.Max(dy, 0), math32.Max(dz, 0)

	return inside + math32.Sqrt(ox*ox+oy*oy+oz*oz)
}

// BoxRange bounds Box.
func BoxRange(x, y, z, sx, sy, sz interval.Interval) interval.Interval {
	zero := interval.Point(0)
	dx := interval.Abs(x).Sub(sx)
	dy := interval.Abs(y).Sub(sy)
	dz := interval.Abs(z).Sub(sz)
	inside := interval.Min(interval.Max(dx, interval.Max(dy, dz)), zero)
	outside := interval.Length3(interval.Max(dx, zero), interval.Max(dy, zero), interval.Max(dz, zero))

	return inside.Add(outside)
}

// Torus returns the signed distance to a torus around the Y axis with major
// radius r0 and minor radius r1.
func Torus(x, y, z, r0, r1 float32) float32 {
	qx := math32.Sqrt(x*x+z*z) - r0

	return math32.Sqrt(qx*qx+y*y) - r1
}

// TorusRange bounds Torus.
func TorusRange(x, y, z, r0, r1 interval.Interval) interval.Interval {
	qx := interval.Length2(x, z).Sub(r0)

	return interval.Length2(qx, y).Sub(r1)
}

// SmoothUnion blends min(a, b) over a band of width s. A zero s is a hard
// union.
func SmoothUnion(a, b, s float32) float32 {
	if s == 0 {
		return math32.Min(a, b)
	}
	h := interval.ClampValue(0.5+0.5*(b-a)/s, 0, 1)

	return interval.LerpValue(b, a, h) - s*h*(1-h)
}

// SmoothUnionRange bounds SmoothUnion.
func SmoothUnionRange(a, b, s interval.Interval) interval.Interval {
	if s.IsPoint() && s.Min == 0 {
		return interval.Min(a, b)
	}
	half := interval.Point(0.5)
	h := interval.Clamp(half.Add(half.Mul(b.Sub(a)).Div(s)), interval.Point(0), interval.Point(1))
	band := s.Mul(h).Mul(interval.Point(1).Sub(h))

	return widenZero(interval.Lerp(b, a, h).Sub(band), s, interval.Min(a, b))
}

// SmoothSubtract carves b out of a, blending over a band of width s. A zero
// s is a hard subtraction max(a, -b).
func SmoothSubtract(a, b, s float32) float32 {
	if s == 0 {
		return math32.Max(a, -b)
	}
	h := interval.ClampValue(0.5-0.5*(a+b)/s, 0, 1)

	return interval.LerpValue(a, -b, h) + s*h*(1-h)
}

// SmoothSubtractRange bounds SmoothSubtract.
func SmoothSubtractRange(a, b, s interval.Interval) interval.Interval {
	if s.IsPoint() && s.Min == 0 {
		return interval.Max(a, b.Neg())
	}
	half := interval.Point(0.5)
	h := interval.Clamp(half.Sub(half.Mul(a.Add(b)).Div(s)), interval.Point(0), interval.Point(1))
	band := s.Mul(h).Mul(interval.Point(1).Sub(h))

	return widenZero(interval.Lerp(a, b.Neg(), h).Add(band), s, interval.Max(a, b.Neg()))
}

// widenZero adds the hard-edged result to r when s may be zero, since the
// scalar forms switch formula at s == 0.
func widenZero(r, s, hard interval.Interval) interval.Interval {
	if s.Contains(0) {
		return r.Union(hard)
	}

	return r
}
