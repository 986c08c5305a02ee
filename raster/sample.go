// SPDX-License-Identifier: MIT

package raster

import "github.com/chewxy/math32"

// Image is a read-only grid of scalar pixels.
type Image interface {
	Width() int
	Height() int
	// Pixel returns the value at (x, y), with 0 <= x < Width and 0 <= y < Height.
	Pixel(x, y int) float32
}

// Wrap maps the coordinate v onto a pixel index in [0, n) by flooring and
// wrapping. n must be positive.
func Wrap(v float32, n int) int {
	i := int(math32.Floor(v)) % n
	if i < 0 {
		i += n
	}

	return i
}

// SampleNearest returns the pixel containing (x, y) with repeat-wrap addressing.
func SampleNearest(im Image, x, y float32) float32 {
	return im.Pixel(Wrap(x, im.Width()), Wrap(y, im.Height()))
}

// SampleBilinear interpolates the four pixels around (x, y). Pixel centers are
// at integer coordinates and neighbors wrap around both edges.
func SampleBilinear(im Image, x, y float32) float32 {
	w, h := im.Width(), im.Height()
	fx, fy := math32.Floor(x), math32.Floor(y)
	tx, ty := x-fx, y-fy
	if !(tx >= 0 && tx < 1) {
		tx = 0
	}
	if !(ty >= 0 && ty < 1) {
		ty = 0
	}

	x0 := Wrap(fx, w)
	y0 := Wrap(fy, h)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h

	p00 := im.Pixel(x0, y0)
	p10 := im.Pixel(x1, y0)
	p01 := im.Pixel(x0, y1)
	p11 := im.Pixel(x1, y1)

	top := p00 + tx*(p10-p00)
	bottom := p01 + tx*(p11-p01)

	return top + ty*(bottom-top)
}
