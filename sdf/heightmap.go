// SPDX-License-Identifier: MIT

package sdf

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/voxgraph/interval"
	"github.com/katalvlaran/voxgraph/raster"
)

const (
	// centerOffset keeps the projection away from a division by zero at the
	// sphere center.
	centerOffset = 0.0001

	// farMarginScale widens the height band outside which the image is not
	// sampled.
	farMarginScale = 1.2

	invTau = 1 / (2 * math32.Pi)
)

// SphereHeightmap is a sphere of a given radius whose surface is displaced
// by an image wrapped around it. Longitude comes from atan2 of the projected
// point and latitude from the skew3 approximation of asin, so the scalar and
// interval forms stay consistent with each other.
//
// Points whose undisplaced distance lies beyond the displaced band (plus a
// margin) skip the image and return the undisplaced distance. This leaves a
// small discontinuity at the band edge.
//
// A SphereHeightmap owns a RangeGrid built from its image; Close releases it.
type SphereHeightmap struct {
	image        raster.Image
	grid         *raster.RangeGrid
	radius       float32
	factor       float32
	normX, normY float32
	above, below float32
}

// NewSphereHeightmap builds the heightmap projection of im with the given
// sphere radius and displacement factor.
func NewSphereHeightmap(im raster.Image, radius, factor float32) *SphereHeightmap {
	grid := raster.NewRangeGrid(im, 0)
	heights := grid.Total().MulScalar(factor)
	margin := farMarginScale * (heights.Max - heights.Min)

	return &SphereHeightmap{
		image:  im,
		grid:   grid,
		radius: radius,
		factor: factor,
		normX:  float32(im.Width()),
		normY:  float32(im.Height()),
		above:  heights.Max + margin,
		below:  heights.Min - margin,
	}
}

// Eval returns the displaced signed distance at (x, y, z).
func (s *SphereHeightmap) Eval(x, y, z float32) float32 {
	d := math32.Sqrt(x*x+y*y+z*z) + centerOffset
	sd := d - s.radius
	if sd > s.above || sd < s.below {
		return sd
	}
	nx, ny, nz := x/d, y/d, z/d
	u := -math32.Atan2(nz, nx)*invTau + 0.5
	v := -0.5*interval.Skew3Value(ny) + 0.5
	h := raster.SampleBilinear(s.image, u*s.normX, v*s.normY)

	return sd - h*s.factor
}

// Range bounds Eval over a box. When the box straddles the longitude seam
// the two angular pieces are looked up separately and merged.
func (s *SphereHeightmap) Range(x, y, z interval.Interval) interval.Interval {
	d := interval.Length3(x, y, z).AddScalar(centerOffset)
	sd := d.SubScalar(s.radius)
	if sd.Min > s.above || sd.Max < s.below {
		return sd
	}
	nx, ny, nz := x.Div(d), y.Div(d), z.Div(d)
	v := interval.Skew3(ny).MulScalar(-0.5).AddScalar(0.5).MulScalar(s.normY)

	primary, secondary, wrapped := interval.Atan2(nz, nx)
	h := s.grid.Range(s.longitude(primary), v)
	if wrapped {
		h = h.Union(s.grid.Range(s.longitude(secondary), v))
	}
	r := sd.Sub(h.MulScalar(s.factor))
	if sd.Max > s.above || sd.Min < s.below {
		r = r.Union(sd)
	}

	return r
}

// longitude maps an angle interval to image columns.
func (s *SphereHeightmap) longitude(angle interval.Interval) interval.Interval {
	return angle.Neg().MulScalar(invTau).AddScalar(0.5).MulScalar(s.normX)
}

// Close releases the range grid.
func (s *SphereHeightmap) Close() error { return s.grid.Close() }
