// SPDX-License-Identifier: MIT

package resource

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/voxgraph/interval"
)

// DefaultCurveResolution is the number of samples a PointCurve bakes when
// its Resolution is not set.
const DefaultCurveResolution = 128

// Curve is a transfer function over [0, 1]. Bake is called once at compile
// time; the returned table is what evaluation reads.
type Curve interface {
	Bake() *BakedCurve
}

// BakedCurve is a uniformly sampled curve over [0, 1] with its value range
// and monotonicity precomputed. It is immutable.
type BakedCurve struct {
	samples   []float32
	rng       interval.Interval
	monotonic bool
}

// NewBakedCurve wraps samples taken at n evenly spaced positions across
// [0, 1]. At least one sample is required.
func NewBakedCurve(samples []float32) (*BakedCurve, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrCurvePoints)
	}
	b := &BakedCurve{samples: slices.Clone(samples), monotonic: true}
	b.rng = interval.Hull(b.samples...)
	for i := 1; i < len(b.samples); i++ {
		if b.samples[i] < b.samples[i-1] {
			b.monotonic = false
			break
		}
	}

	return b, nil
}

// Sample interpolates the table at x. Inputs are clamped to [0, 1]; NaN
// reads the first sample.
func (b *BakedCurve) Sample(x float32) float32 {
	n := len(b.samples)
	if n == 1 || !(x > 0) {
		return b.samples[0]
	}
	if x >= 1 {
		return b.samples[n-1]
	}
	pos := x * float32(n-1)
	i := int(pos)
	if i >= n-1 {
		return b.samples[n-1]
	}
	t := pos - float32(i)
	a, c := b.samples[i], b.samples[i+1]

	return a + t*(c-a)
}

// Range returns the min and max of the table.
func (b *BakedCurve) Range() interval.Interval { return b.rng }

// MonotonicIncreasing reports whether the table never decreases.
func (b *BakedCurve) MonotonicIncreasing() bool { return b.monotonic }

// CurvePoint is one control point of a PointCurve.
type CurvePoint struct {
	X float32 `toml:"x" cbor:"1,keyasint"`
	Y float32 `toml:"y" cbor:"2,keyasint"`
}

// PointCurve is a piecewise linear curve through its control points. Values
// left of the first point and right of the last one are held flat.
type PointCurve struct {
	Points     []CurvePoint
	Resolution int
}

// NewPointCurve sorts and validates pts.
func NewPointCurve(pts ...CurvePoint) (*PointCurve, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrCurvePoints)
	}
	pts = slices.Clone(pts)
	slices.SortStableFunc(pts, func(a, b CurvePoint) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	for _, p := range pts {
		if !(p.X >= 0 && p.X <= 1) || math32.IsNaN(p.Y) || math32.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("%w: point (%g, %g)", ErrCurvePoints, p.X, p.Y)
		}
	}

	return &PointCurve{Points: pts}, nil
}

// Eval returns the unbaked curve value at x.
func (c *PointCurve) Eval(x float32) float32 {
	pts := c.Points
	if len(pts) == 0 {
		return 0
	}
	if x <= pts[0].X {
		return pts[0].Y
	}
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		if x <= p1.X {
			if p1.X == p0.X {
				return p1.Y
			}
			t := (x - p0.X) / (p1.X - p0.X)
			return p0.Y + t*(p1.Y-p0.Y)
		}
	}

	return pts[len(pts)-1].Y
}

// Bake samples the curve at Resolution evenly spaced positions.
func (c *PointCurve) Bake() *BakedCurve {
	n := c.Resolution
	if n < 2 {
		n = DefaultCurveResolution
	}
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = c.Eval(float32(i) / float32(n-1))
	}
	b, _ := NewBakedCurve(samples)

	return b
}
