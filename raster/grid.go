// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/voxgraph/interval"
)

// DefaultChunkSize is the chunk edge length used when NewRangeGrid receives
// a non-positive size.
const DefaultChunkSize = 16

// exactLimit bounds coordinates whose floor is still an exact integer in
// float32; beyond it a box is treated as covering the whole image.
const exactLimit = 1 << 24

// RangeGrid stores the min and max pixel value of every chunk×chunk tile of
// an image. Range bounds both SampleNearest and SampleBilinear over a box.
type RangeGrid struct {
	width, height int
	chunk         int
	cols, rows    int
	mins, maxs    []float32
	total         interval.Interval
}

// NewRangeGrid scans im once and builds its chunk table.
func NewRangeGrid(im Image, chunk int) *RangeGrid {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	w, h := im.Width(), im.Height()
	g := &RangeGrid{
		width:  w,
		height: h,
		chunk:  chunk,
		cols:   (w + chunk - 1) / chunk,
		rows:   (h + chunk - 1) / chunk,
	}
	g.mins = make([]float32, g.cols*g.rows)
	g.maxs = make([]float32, g.cols*g.rows)
	for i := range g.mins {
		g.mins[i] = math32.Inf(1)
		g.maxs[i] = math32.Inf(-1)
	}

	total := interval.Interval{Min: math32.Inf(1), Max: math32.Inf(-1)}
	for y := 0; y < h; y++ {
		row := (y / chunk) * g.cols
		for x := 0; x < w; x++ {
			v := im.Pixel(x, y)
			c := row + x/chunk
			g.mins[c] = math32.Min(g.mins[c], v)
			g.maxs[c] = math32.Max(g.maxs[c], v)
			total.Min = math32.Min(total.Min, v)
			total.Max = math32.Max(total.Max, v)
		}
	}
	if w == 0 || h == 0 {
		total = interval.Point(0)
	}
	g.total = total

	return g
}

// Total returns the min and max over every pixel.
func (g *RangeGrid) Total() interval.Interval { return g.total }

// Range bounds every value SampleNearest or SampleBilinear can return for
// coordinates inside the box x × y. Boxes that cross an image edge are split
// into their wrapped pieces.
func (g *RangeGrid) Range(x, y interval.Interval) interval.Interval {
	if g.mins == nil {
		return interval.Unbounded()
	}
	xs := spans(x, g.width)
	ys := spans(y, g.height)

	r := interval.Interval{Min: math32.Inf(1), Max: math32.Inf(-1)}
	for _, sx := range xs {
		for _, sy := range ys {
			g.accumulate(&r, sx, sy)
		}
	}

	return r
}

// Close drops the chunk tables. Range on a closed grid is Unbounded.
func (g *RangeGrid) Close() error {
	g.mins, g.maxs = nil, nil

	return nil
}

// span is a half-open pixel range [lo, hi) inside one image period.
type span struct{ lo, hi int }

// spans returns the wrapped pixel ranges touched by samples in v. The last
// column of the range is one past floor(v.Max) so the bilinear neighbor is
// included.
func spans(v interval.Interval, n int) []span {
	full := []span{{0, n}}
	if !(math32.Abs(v.Min) < exactLimit && math32.Abs(v.Max) < exactLimit) {
		return full
	}
	lo := int(math32.Floor(v.Min))
	hi := int(math32.Floor(v.Max)) + 2
	if hi-lo >= n {
		return full
	}
	start := lo % n
	if start < 0 {
		start += n
	}
	end := start + (hi - lo)
	if end <= n {
		return []span{{start, end}}
	}

	return []span{{start, n}, {0, end - n}}
}

// accumulate folds the chunks overlapping the pixel rectangle sx × sy into r.
func (g *RangeGrid) accumulate(r *interval.Interval, sx, sy span) {
	cx0, cx1 := sx.lo/g.chunk, (sx.hi-1)/g.chunk
	cy0, cy1 := sy.lo/g.chunk, (sy.hi-1)/g.chunk
	for cy := cy0; cy <= cy1; cy++ {
		row := cy * g.cols
		for cx := cx0; cx <= cx1; cx++ {
			r.Min = math32.Min(r.Min, g.mins[row+cx])
			r.Max = math32.Max(r.Max, g.maxs[row+cx])
		}
	}
}
