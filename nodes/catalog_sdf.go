// SPDX-License-Identifier: MIT

package nodes

import (
	"github.com/katalvlaran/voxgraph/resource"
	"github.com/katalvlaran/voxgraph/sdf"
)

type heightmapParams struct{ shape *sdf.SphereHeightmap }

func sdfTypes() []NodeType {
	sdfOut := []Port{{Name: "sdf"}}
	blendPorts := []Port{{Name: "a"}, {Name: "b"}, {Name: "smoothness", Default: 1}}

	return []NodeType{
		{
			ID: TypeSdfPlane, Name: "SdfPlane", Category: CategorySdf,
			Inputs:  []Port{{Name: "y"}, {Name: "height"}},
			Outputs: sdfOut,
			Process: binop(sdf.Plane),
			Range:   binopRange(sdf.PlaneRange),
		},
		{
			ID: TypeSdfBox, Name: "SdfBox", Category: CategorySdf,
			Inputs: []Port{
				{Name: "x"}, {Name: "y"}, {Name: "z"},
				{Name: "size_x", Default: 10}, {Name: "size_y", Default: 10}, {Name: "size_z", Default: 10},
			},
			Outputs: sdfOut,
			Process: func(ctx *BufferContext) {
				x, y, z := ctx.In[0].Data, ctx.In[1].Data, ctx.In[2].Data
				sx, sy, sz := ctx.In[3].Data, ctx.In[4].Data, ctx.In[5].Data
				out := ctx.Out[0].Data
				for i := range out {
					out[i] = sdf.Box(x[i], y[i], z[i], sx[i], sy[i], sz[i])
				}
			},
			Range: func(ctx *RangeContext) {
				in := ctx.In
				ctx.Out[0] = sdf.BoxRange(in[0], in[1], in[2], in[3], in[4], in[5])
			},
		},
		{
			ID: TypeSdfSphere, Name: "SdfSphere", Category: CategorySdf,
			Inputs:  []Port{{Name: "x"}, {Name: "y"}, {Name: "z"}, {Name: "radius", Default: 1}},
			Outputs: sdfOut,
			Process: func(ctx *BufferContext) {
				x, y, z, r := ctx.In[0].Data, ctx.In[1].Data, ctx.In[2].Data, ctx.In[3]
				out := ctx.Out[0].Data
				if r.Constant {
					c := r.ConstantValue
					for i := range out {
						out[i] = sdf.Sphere(x[i], y[i], z[i], c)
					}
					return
				}
				for i := range out {
					out[i] = sdf.Sphere(x[i], y[i], z[i], r.Data[i])
				}
			},
			Range: func(ctx *RangeContext) {
				in := ctx.In
				ctx.Out[0] = sdf.SphereRange(in[0], in[1], in[2], in[3])
			},
		},
		{
			ID: TypeSdfTorus, Name: "SdfTorus", Category: CategorySdf,
			Inputs: []Port{
				{Name: "x"}, {Name: "y"}, {Name: "z"},
				{Name: "radius1", Default: 16}, {Name: "radius2", Default: 4},
			},
			Outputs: sdfOut,
			Process: func(ctx *BufferContext) {
				x, y, z := ctx.In[0].Data, ctx.In[1].Data, ctx.In[2].Data
				r0, r1 := ctx.In[3].Data, ctx.In[4].Data
				out := ctx.Out[0].Data
				for i := range out {
					out[i] = sdf.Torus(x[i], y[i], z[i], r0[i], r1[i])
				}
			},
			Range: func(ctx *RangeContext) {
				in := ctx.In
				ctx.Out[0] = sdf.TorusRange(in[0], in[1], in[2], in[3], in[4])
			},
		},
		{
			ID: TypeSdfSphereHeightmap, Name: "SdfSphereHeightmap", Category: CategorySdf,
			Inputs:  xyzPorts,
			Outputs: sdfOut,
			Params: []Param{
				{Name: "image", Type: ParamResource, ResourceKind: KindImage},
				{Name: "radius", Type: ParamReal, Default: 10},
				{Name: "factor", Type: ParamReal, Default: 1},
			},
			Bake: bakeSphereHeightmap,
			Process: func(ctx *BufferContext) {
				s := ctx.Params.(heightmapParams).shape
				x, y, z, out := ctx.In[0].Data, ctx.In[1].Data, ctx.In[2].Data, ctx.Out[0].Data
				for i := range out {
					out[i] = s.Eval(x[i], y[i], z[i])
				}
			},
			Range: func(ctx *RangeContext) {
				s := ctx.Params.(heightmapParams).shape
				ctx.Out[0] = s.Range(ctx.In[0], ctx.In[1], ctx.In[2])
			},
		},
		{
			ID: TypeSdfSmoothUnion, Name: "SdfSmoothUnion", Category: CategorySdf,
			Inputs:  blendPorts,
			Outputs: sdfOut,
			Process: ternary(sdf.SmoothUnion),
			Range: func(ctx *RangeContext) {
				ctx.Out[0] = sdf.SmoothUnionRange(ctx.In[0], ctx.In[1], ctx.In[2])
			},
		},
		{
			ID: TypeSdfSmoothSubtract, Name: "SdfSmoothSubtract", Category: CategorySdf,
			Inputs:  blendPorts,
			Outputs: sdfOut,
			Process: ternary(sdf.SmoothSubtract),
			Range: func(ctx *RangeContext) {
				ctx.Out[0] = sdf.SmoothSubtractRange(ctx.In[0], ctx.In[1], ctx.In[2])
			},
		},
	}
}

// ternary applies f elementwise to inputs 0, 1 and 2.
func ternary(f func(a, b, c float32) float32) ProcessFunc {
	return func(ctx *BufferContext) {
		a, b, c, out := ctx.In[0].Data, ctx.In[1].Data, ctx.In[2].Data, ctx.Out[0].Data
		for i := range out {
			out[i] = f(a[i], b[i], c[i])
		}
	}
}

func bakeSphereHeightmap(ctx *BakeContext) (any, error) {
	im, err := resourceAs[resource.Image](ctx, 0)
	if err != nil {
		return nil, err
	}
	if im.Width() <= 0 || im.Height() <= 0 {
		return nil, &ParamError{Param: ctx.Type().Params[0].Name, Err: resource.ErrImageSize}
	}
	radius, err := ctx.Float(1)
	if err != nil {
		return nil, err
	}
	factor, err := ctx.Float(2)
	if err != nil {
		return nil, err
	}
	shape := sdf.NewSphereHeightmap(im, radius, factor)
	ctx.Own(shape)

	return heightmapParams{shape: shape}, nil
}
