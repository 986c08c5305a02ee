// SPDX-License-Identifier: MIT

// Package raster samples scalar images with repeat-wrap addressing and bounds
// the samples of whole regions without touching every pixel.
//
// Sampling:
//
//	SampleNearest  - pixel at (floor(x) mod w, floor(y) mod h).
//	SampleBilinear - 4-tap bilinear filter over the wrapped neighborhood.
//
// Both are total: any coordinate, including negative, huge or NaN ones,
// addresses a valid pixel.
//
// RangeGrid precomputes per-chunk min/max values so that the set of values
// either sampler can return over a coordinate box is bounded by reading a
// handful of chunks instead of scanning pixels. A RangeGrid is immutable once
// built and may be shared by any number of goroutines.
package raster
