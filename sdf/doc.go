// SPDX-License-Identifier: MIT

// Package sdf implements signed distance primitives in two forms: a scalar
// form evaluated per sample point and an interval form that bounds the
// scalar form over a box of inputs.
//
// Every interval function applies the same sequence of float32 operations
// to interval endpoints that its scalar twin applies to values, so the
// interval result contains every scalar result for inputs drawn from the
// argument intervals.
//
// Primitives:
//
//	Plane           - y - height.
//	Sphere          - distance to a sphere centered at the origin.
//	Box             - distance to an axis-aligned box of half extents (sx, sy, sz).
//	Torus           - distance to a torus in the XZ plane.
//	SmoothUnion     - blended minimum of two distances.
//	SmoothSubtract  - blended carve of one distance from another.
//	SphereHeightmap - sphere displaced by a wrapped equirectangular-ish image.
package sdf
