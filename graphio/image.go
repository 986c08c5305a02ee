// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"image"
	_ "image/png" // register PNG
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF

	"github.com/katalvlaran/voxgraph/resource"
)

// loadImage turns spec into a heightmap. Inline pixels win over a path.
func loadImage(spec ImageSpec, baseDir string) (*resource.Heightmap, error) {
	if len(spec.Pixels) > 0 {
		return resource.NewHeightmap(spec.Width, spec.Height, spec.Pixels)
	}
	if spec.Path == "" {
		return nil, fmt.Errorf("%w: image needs a path or pixels", ErrBadValue)
	}

	path := spec.Path
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	img, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}
	if spec.Width > 0 || spec.Height > 0 {
		return resource.HeightmapFromImageScaled(img, spec.Width, spec.Height)
	}

	return resource.HeightmapFromImage(img)
}

// decodeImageFile decodes a PNG, TIFF or BMP file.
func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	return img, nil
}
