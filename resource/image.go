// SPDX-License-Identifier: MIT

package resource

import (
	"fmt"
	"image"
	"slices"

	"golang.org/x/image/draw"
)

// Image is a read-only grid of scalar pixels, addressed with
// 0 <= x < Width and 0 <= y < Height.
type Image interface {
	Width() int
	Height() int
	Pixel(x, y int) float32
}

// Heightmap is an in-memory Image with row-major pixels.
type Heightmap struct {
	width, height int
	pix           []float32
}

// NewHeightmap wraps pix, which must hold width*height row-major values.
func NewHeightmap(width, height int, pix []float32) (*Heightmap, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d pixels", ErrImageSize, width, height, len(pix))
	}

	return &Heightmap{width: width, height: height, pix: slices.Clone(pix)}, nil
}

// Width returns the number of columns.
func (h *Heightmap) Width() int { return h.width }

// Height returns the number of rows.
func (h *Heightmap) Height() int { return h.height }

// Pixel returns the value at (x, y).
func (h *Heightmap) Pixel(x, y int) float32 { return h.pix[y*h.width+x] }

// HeightmapFromImage converts img to luminance in [0, 1] at its own size.
func HeightmapFromImage(img image.Image) (*Heightmap, error) {
	b := img.Bounds()
	gray := image.NewGray16(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	return fromGray16(gray)
}

// HeightmapFromImageScaled resamples img to width×height with a Catmull-Rom
// filter, then converts it like HeightmapFromImage.
func HeightmapFromImageScaled(img image.Image, width, height int) (*Heightmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageSize, width, height)
	}
	gray := image.NewGray16(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(gray, gray.Bounds(), img, img.Bounds(), draw.Src, nil)

	return fromGray16(gray)
}

func fromGray16(gray *image.Gray16) (*Heightmap, error) {
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	pix := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = float32(gray.Gray16At(x, y).Y) / 0xffff
		}
	}

	return NewHeightmap(w, h, pix)
}
