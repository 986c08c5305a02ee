// SPDX-License-Identifier: MIT

package nodes

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/voxgraph/interval"
	"github.com/katalvlaran/voxgraph/resource"
)

// remapFlatFactor is the slope used when a Remap source range is empty.
const remapFlatFactor = 99999

type clampParams struct{ min, max float32 }

type remapParams struct{ min0, factor, min1 float32 }

type smoothstepParams struct{ edge0, edge1 float32 }

type curveParams struct{ curve *resource.BakedCurve }

func convertTypes() []NodeType {
	return []NodeType{
		{
			ID: TypeStepify, Name: "Stepify", Category: CategoryConvert,
			Inputs:  []Port{{Name: "x"}, {Name: "step"}},
			Outputs: outPort,
			Process: binop(interval.StepifyValue),
			Range:   binopRange(interval.Stepify),
		},
		{
			ID: TypeClamp, Name: "Clamp", Category: CategoryConvert, Inputs: unaryPorts, Outputs: outPort,
			Params: []Param{
				{Name: "min", Type: ParamReal, Default: -1},
				{Name: "max", Type: ParamReal, Default: 1},
			},
			Bake: func(ctx *BakeContext) (any, error) {
				lo, hi, err := twoFloats(ctx)
				return clampParams{min: lo, max: hi}, err
			},
			Process: func(ctx *BufferContext) {
				p := ctx.Params.(clampParams)
				monop(func(v float32) float32 { return interval.ClampValue(v, p.min, p.max) })(ctx)
			},
			Range: func(ctx *RangeContext) {
				p := ctx.Params.(clampParams)
				ctx.Out[0] = interval.Clamp(ctx.In[0], interval.Point(p.min), interval.Point(p.max))
			},
		},
		{
			ID: TypeMix, Name: "Mix", Category: CategoryConvert,
			Inputs:  []Port{{Name: "a"}, {Name: "b"}, {Name: "ratio"}},
			Outputs: outPort,
			Process: processMix,
			Range: func(ctx *RangeContext) {
				ctx.Out[0] = interval.Lerp(ctx.In[0], ctx.In[1], ctx.In[2])
			},
		},
		{
			ID: TypeRemap, Name: "Remap", Category: CategoryConvert, Inputs: unaryPorts, Outputs: outPort,
			Params: []Param{
				{Name: "min0", Type: ParamReal, Default: -1},
				{Name: "max0", Type: ParamReal, Default: 1},
				{Name: "min1", Type: ParamReal, Default: -1},
				{Name: "max1", Type: ParamReal, Default: 1},
			},
			Bake:    bakeRemap,
			Process: processRemap,
			Range: func(ctx *RangeContext) {
				p := ctx.Params.(remapParams)
				ctx.Out[0] = ctx.In[0].SubScalar(p.min0).MulScalar(p.factor).AddScalar(p.min1)
			},
		},
		{
			ID: TypeSmoothstep, Name: "Smoothstep", Category: CategoryConvert, Inputs: unaryPorts, Outputs: outPort,
			Params: []Param{
				{Name: "edge0", Type: ParamReal, Default: 0},
				{Name: "edge1", Type: ParamReal, Default: 1},
			},
			Bake: func(ctx *BakeContext) (any, error) {
				e0, e1, err := twoFloats(ctx)
				return smoothstepParams{edge0: e0, edge1: e1}, err
			},
			Process: func(ctx *BufferContext) {
				p := ctx.Params.(smoothstepParams)
				monop(func(v float32) float32 { return interval.SmoothstepValue(p.edge0, p.edge1, v) })(ctx)
			},
			Range: func(ctx *RangeContext) {
				p := ctx.Params.(smoothstepParams)
				ctx.Out[0] = interval.Smoothstep(p.edge0, p.edge1, ctx.In[0])
			},
		},
		{
			ID: TypeCurve, Name: "Curve", Category: CategoryConvert, Inputs: unaryPorts, Outputs: outPort,
			Params:  []Param{{Name: "curve", Type: ParamResource, ResourceKind: KindCurve}},
			Bake:    bakeCurve,
			Process: processCurve,
			Range:   rangeCurve,
		},
		{
			ID: TypeSelect, Name: "Select", Category: CategoryConvert,
			Inputs:  []Port{{Name: "a"}, {Name: "b"}, {Name: "threshold"}, {Name: "t"}},
			Outputs: outPort,
			Process: processSelect,
			Range: func(ctx *RangeContext) {
				ctx.Out[0] = interval.Select(ctx.In[0], ctx.In[1], ctx.In[2], ctx.In[3])
			},
		},
	}
}

// twoFloats reads real params 0 and 1.
func twoFloats(ctx *BakeContext) (float32, float32, error) {
	a, err := ctx.Float(0)
	if err != nil {
		return 0, 0, err
	}
	b, err := ctx.Float(1)

	return a, b, err
}

func processMix(ctx *BufferContext) {
	a, b, r, out := ctx.In[0], ctx.In[1], ctx.In[2], ctx.Out[0].Data
	switch {
	case a.Constant && b.Constant:
		ca, cb := a.ConstantValue, b.ConstantValue
		for i, t := range r.Data {
			out[i] = interval.LerpValue(ca, cb, t)
		}
	case a.Constant:
		ca := a.ConstantValue
		for i, t := range r.Data {
			out[i] = interval.LerpValue(ca, b.Data[i], t)
		}
	case b.Constant:
		cb := b.ConstantValue
		for i, t := range r.Data {
			out[i] = interval.LerpValue(a.Data[i], cb, t)
		}
	default:
		for i, t := range r.Data {
			out[i] = interval.LerpValue(a.Data[i], b.Data[i], t)
		}
	}
}

func bakeRemap(ctx *BakeContext) (any, error) {
	var v [4]float32
	for i := range v {
		f, err := ctx.Float(i)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	min0, max0, min1, max1 := v[0], v[1], v[2], v[3]
	factor := float32(remapFlatFactor)
	if !approxEqual(min0, max0) {
		factor = 1 / (max0 - min0)
	}

	return remapParams{min0: min0, factor: (max1 - min1) * factor, min1: min1}, nil
}

func processRemap(ctx *BufferContext) {
	p := ctx.Params.(remapParams)
	monop(func(v float32) float32 { return (v-p.min0)*p.factor + p.min1 })(ctx)
}

// approxEqual compares with an absolute tolerance of 1e-5.
func approxEqual(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func bakeCurve(ctx *BakeContext) (any, error) {
	c, err := resourceAs[resource.Curve](ctx, 0)
	if err != nil {
		return nil, err
	}

	// Baking up front keeps evaluation free of lazy writes.
	return curveParams{curve: c.Bake()}, nil
}

func processCurve(ctx *BufferContext) {
	p := ctx.Params.(curveParams)
	monop(p.curve.Sample)(ctx)
}

// rangeCurve is exact for points and monotonic curves and falls back to the
// curve's global range otherwise.
func rangeCurve(ctx *RangeContext) {
	p := ctx.Params.(curveParams)
	a := ctx.In[0]
	switch {
	case a.IsPoint():
		ctx.Out[0] = interval.Point(p.curve.Sample(a.Min))
	case p.curve.MonotonicIncreasing():
		ctx.Out[0] = interval.Hull(p.curve.Sample(a.Min), p.curve.Sample(a.Max))
	default:
		ctx.Out[0] = p.curve.Range()
	}
}

// processSelect picks a where t < threshold and b elsewhere. Constant
// threshold and t decide the whole batch at once; equal constant branches
// skip the comparison.
func processSelect(ctx *BufferContext) {
	a, b, th, t, out := ctx.In[0], ctx.In[1], ctx.In[2], ctx.In[3], ctx.Out[0]
	switch {
	case th.Constant && t.Constant:
		if t.ConstantValue < th.ConstantValue {
			out.CopyFrom(a)
		} else {
			out.CopyFrom(b)
		}
	case a.Constant && b.Constant && a.ConstantValue == b.ConstantValue:
		out.Fill(a.ConstantValue)
	default:
		for i := range out.Data {
			out.Data[i] = interval.SelectValue(a.Data[i], b.Data[i], th.Data[i], t.Data[i])
		}
	}
}
