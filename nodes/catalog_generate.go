// SPDX-License-Identifier: MIT

package nodes

import (
	"github.com/katalvlaran/voxgraph/raster"
	"github.com/katalvlaran/voxgraph/resource"
)

type imageParams struct {
	image    resource.Image
	grid     *raster.RangeGrid
	bilinear bool
}

type noiseParams struct{ noise resource.Noise }

type warpParams struct{ warp resource.GradientNoise }

var (
	xyPorts  = []Port{{Name: "x"}, {Name: "y"}}
	xyzPorts = []Port{{Name: "x"}, {Name: "y"}, {Name: "z"}}
)

func generateTypes() []NodeType {
	noiseParam := []Param{{Name: "noise", Type: ParamResource, ResourceKind: KindNoise}}
	warpParam := []Param{{Name: "noise", Type: ParamResource, ResourceKind: KindNoiseGradient}}

	return []NodeType{
		{
			ID: TypeImage, Name: "Image", Category: CategoryGenerate, Inputs: xyPorts, Outputs: outPort,
			Params: []Param{
				{Name: "image", Type: ParamResource, ResourceKind: KindImage},
				{Name: "bilinear", Type: ParamReal, Default: 0},
			},
			Bake:    bakeImage,
			Process: processImage,
			Range: func(ctx *RangeContext) {
				p := ctx.Params.(imageParams)
				ctx.Out[0] = p.grid.Range(ctx.In[0], ctx.In[1])
			},
		},
		{
			ID: TypeNoise2D, Name: "Noise2D", Category: CategoryGenerate, Inputs: xyPorts, Outputs: outPort,
			Params: noiseParam,
			Bake:   bakeNoise,
			Process: func(ctx *BufferContext) {
				n := ctx.Params.(noiseParams).noise
				x, y, out := ctx.In[0].Data, ctx.In[1].Data, ctx.Out[0].Data
				for i := range out {
					out[i] = n.Noise2D(x[i], y[i])
				}
			},
			Range: func(ctx *RangeContext) {
				n := ctx.Params.(noiseParams).noise
				ctx.Out[0] = n.Range2D(ctx.In[0], ctx.In[1])
			},
		},
		{
			ID: TypeNoise3D, Name: "Noise3D", Category: CategoryGenerate, Inputs: xyzPorts, Outputs: outPort,
			Params: noiseParam,
			Bake:   bakeNoise,
			Process: func(ctx *BufferContext) {
				n := ctx.Params.(noiseParams).noise
				x, y, z, out := ctx.In[0].Data, ctx.In[1].Data, ctx.In[2].Data, ctx.Out[0].Data
				for i := range out {
					out[i] = n.Noise3D(x[i], y[i], z[i])
				}
			},
			Range: func(ctx *RangeContext) {
				n := ctx.Params.(noiseParams).noise
				ctx.Out[0] = n.Range3D(ctx.In[0], ctx.In[1], ctx.In[2])
			},
		},
		{
			ID: TypeNoiseGradient2D, Name: "NoiseGradient2D", Category: CategoryGenerate,
			Inputs:  xyPorts,
			Outputs: []Port{{Name: "out_x"}, {Name: "out_y"}},
			Params:  warpParam,
			Bake:    bakeWarp,
			Process: func(ctx *BufferContext) {
				w := ctx.Params.(warpParams).warp
				x, y := ctx.In[0].Data, ctx.In[1].Data
				ox, oy := ctx.Out[0].Data, ctx.Out[1].Data
				for i := range ox {
					ox[i], oy[i] = w.Warp2D(x[i], y[i])
				}
			},
			Range: func(ctx *RangeContext) {
				w := ctx.Params.(warpParams).warp
				ctx.Out[0], ctx.Out[1] = w.WarpRange2D(ctx.In[0], ctx.In[1])
			},
		},
		{
			ID: TypeNoiseGradient3D, Name: "NoiseGradient3D", Category: CategoryGenerate,
			Inputs:  xyzPorts,
			Outputs: []Port{{Name: "out_x"}, {Name: "out_y"}, {Name: "out_z"}},
			Params:  warpParam,
			Bake:    bakeWarp,
			Process: func(ctx *BufferContext) {
				w := ctx.Params.(warpParams).warp
				x, y, z := ctx.In[0].Data, ctx.In[1].Data, ctx.In[2].Data
				ox, oy, oz := ctx.Out[0].Data, ctx.Out[1].Data, ctx.Out[2].Data
				for i := range ox {
					ox[i], oy[i], oz[i] = w.Warp3D(x[i], y[i], z[i])
				}
			},
			Range: func(ctx *RangeContext) {
				w := ctx.Params.(warpParams).warp
				ctx.Out[0], ctx.Out[1], ctx.Out[2] = w.WarpRange3D(ctx.In[0], ctx.In[1], ctx.In[2])
			},
		},
	}
}

// bakeImage builds the image's range grid and hands it to the program.
func bakeImage(ctx *BakeContext) (any, error) {
	im, err := resourceAs[resource.Image](ctx, 0)
	if err != nil {
		return nil, err
	}
	if im.Width() <= 0 || im.Height() <= 0 {
		return nil, &ParamError{Param: ctx.Type().Params[0].Name, Err: resource.ErrImageSize}
	}
	bilinear, err := ctx.Float(1)
	if err != nil {
		return nil, err
	}
	grid := raster.NewRangeGrid(im, 0)
	ctx.Own(grid)

	return imageParams{image: im, grid: grid, bilinear: bilinear != 0}, nil
}

func processImage(ctx *BufferContext) {
	p := ctx.Params.(imageParams)
	x, y, out := ctx.In[0].Data, ctx.In[1].Data, ctx.Out[0].Data
	if p.bilinear {
		for i := range out {
			out[i] = raster.SampleBilinear(p.image, x[i], y[i])
		}
		return
	}
	for i := range out {
		out[i] = raster.SampleNearest(p.image, x[i], y[i])
	}
}

func bakeNoise(ctx *BakeContext) (any, error) {
	n, err := resourceAs[resource.Noise](ctx, 0)

	return noiseParams{noise: n}, err
}

func bakeWarp(ctx *BakeContext) (any, error) {
	w, err := resourceAs[resource.GradientNoise](ctx, 0)

	return warpParams{warp: w}, err
}
