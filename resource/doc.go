// SPDX-License-Identifier: MIT

// Package resource defines the externally owned objects that node parameters
// refer to, together with reference implementations of each.
//
// Handles:
//
//	Curve         - a 1D transfer function baked into an immutable BakedCurve.
//	Image         - a grid of scalar pixels; Heightmap is the in-memory form.
//	Noise         - coherent noise with a conservative range estimator.
//	GradientNoise - coordinate warping with a conservative range estimator.
//
// Reference implementations: PointCurve, Heightmap (optionally converted from
// any image.Image through golang.org/x/image/draw), ValueNoise and ValueWarp.
//
// Everything handed to a compiled program must be safe for concurrent reads.
// The reference implementations are immutable after construction.
package resource

import "errors"

// Sentinel errors for resource construction.
var (
	// ErrImageSize indicates an image with a non-positive dimension or a
	// pixel slice whose length does not match.
	ErrImageSize = errors.New("resource: invalid image size")

	// ErrCurvePoints indicates a curve with no points or points outside [0, 1].
	ErrCurvePoints = errors.New("resource: invalid curve points")
)
