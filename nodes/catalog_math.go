// SPDX-License-Identifier: MIT

package nodes

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/voxgraph/interval"
)

var (
	binaryPorts = []Port{{Name: "a"}, {Name: "b"}}
	unaryPorts  = []Port{{Name: "x"}}
	outPort     = []Port{{Name: "out"}}
)

func mathTypes() []NodeType {
	return []NodeType{
		{
			ID: TypeAdd, Name: "Add", Category: CategoryMath, Inputs: binaryPorts, Outputs: outPort,
			Process: binop(func(a, b float32) float32 { return a + b }),
			Range:   binopRange(interval.Interval.Add),
		},
		{
			ID: TypeSubtract, Name: "Subtract", Category: CategoryMath, Inputs: binaryPorts, Outputs: outPort,
			Process: binop(func(a, b float32) float32 { return a - b }),
			Range:   binopRange(interval.Interval.Sub),
		},
		{
			ID: TypeMultiply, Name: "Multiply", Category: CategoryMath, Inputs: binaryPorts, Outputs: outPort,
			Process: binop(func(a, b float32) float32 { return a * b }),
			Range:   binopRange(interval.Interval.Mul),
		},
		{
			ID: TypeDivide, Name: "Divide", Category: CategoryMath, Inputs: binaryPorts, Outputs: outPort,
			Process: divide,
			Range:   binopRange(interval.Interval.Div),
		},
		{
			ID: TypeSin, Name: "Sin", Category: CategoryMath, Inputs: unaryPorts, Outputs: outPort,
			Process: monop(math32.Sin),
			Range:   monopRange(interval.Sin),
		},
		{
			ID: TypeFloor, Name: "Floor", Category: CategoryMath, Inputs: unaryPorts, Outputs: outPort,
			Process: monop(math32.Floor),
			Range:   monopRange(interval.Floor),
		},
		{
			ID: TypeAbs, Name: "Abs", Category: CategoryMath, Inputs: unaryPorts, Outputs: outPort,
			Process: monop(math32.Abs),
			Range:   monopRange(interval.Abs),
		},
		{
			ID: TypeSqrt, Name: "Sqrt", Category: CategoryMath, Inputs: unaryPorts, Outputs: outPort,
			Process: monop(interval.SqrtValue),
			Range:   monopRange(interval.Sqrt),
		},
		{
			ID: TypeFract, Name: "Fract", Category: CategoryMath, Inputs: unaryPorts, Outputs: outPort,
			Process: monop(interval.FractValue),
			Range:   monopRange(interval.Fract),
		},
		{
			ID: TypeWrap, Name: "Wrap", Category: CategoryMath,
			Inputs:  []Port{{Name: "x"}, {Name: "length", Default: 1}},
			Outputs: outPort,
			Process: binop(interval.WrapfValue),
			Range:   binopRange(interval.Wrapf),
		},
		{
			ID: TypeMin, Name: "Min", Category: CategoryMath, Inputs: binaryPorts, Outputs: outPort,
			Process: binop(math32.Min),
			Range:   binopRange(interval.Min),
		},
		{
			ID: TypeMax, Name: "Max", Category: CategoryMath, Inputs: binaryPorts, Outputs: outPort,
			Process: binop(math32.Max),
			Range:   binopRange(interval.Max),
		},
		{
			ID: TypeDistance2D, Name: "Distance2D", Category: CategoryMath,
			Inputs:  []Port{{Name: "x0"}, {Name: "y0"}, {Name: "x1"}, {Name: "y1"}},
			Outputs: outPort,
			Process: processDistance2D,
			Range: func(ctx *RangeContext) {
				dx := ctx.In[2].Sub(ctx.In[0])
				dy := ctx.In[3].Sub(ctx.In[1])
				ctx.Out[0] = interval.Length2(dx, dy)
			},
		},
		{
			ID: TypeDistance3D, Name: "Distance3D", Category: CategoryMath,
			Inputs: []Port{
				{Name: "x0"}, {Name: "y0"}, {Name: "z0"},
				{Name: "x1"}, {Name: "y1"}, {Name: "z1"},
			},
			Outputs: outPort,
			Process: processDistance3D,
			Range: func(ctx *RangeContext) {
				dx := ctx.In[3].Sub(ctx.In[0])
				dy := ctx.In[4].Sub(ctx.In[1])
				dz := ctx.In[5].Sub(ctx.In[2])
				ctx.Out[0] = interval.Length3(dx, dy, dz)
			},
		},
		{
			ID: TypeNormalize, Name: "Normalize", Category: CategoryMath,
			Inputs:  []Port{{Name: "x"}, {Name: "y"}, {Name: "z"}},
			Outputs: []Port{{Name: "nx"}, {Name: "ny"}, {Name: "nz"}, {Name: "len"}},
			Process: processNormalize,
			Range:   rangeNormalize,
		},
	}
}

func processDistance2D(ctx *BufferContext) {
	x0, y0 := ctx.In[0].Data, ctx.In[1].Data
	x1, y1 := ctx.In[2].Data, ctx.In[3].Data
	out := ctx.Out[0].Data
	for i := range out {
		dx := x1[i] - x0[i]
		dy := y1[i] - y0[i]
		out[i] = math32.Sqrt(dx*dx + dy*dy)
	}
}

func processDistance3D(ctx *BufferContext) {
	x0, y0, z0 := ctx.In[0].Data, ctx.In[1].Data, ctx.In[2].Data
	x1, y1, z1 := ctx.In[3].Data, ctx.In[4].Data, ctx.In[5].Data
	out := ctx.Out[0].Data
	for i := range out {
		dx := x1[i] - x0[i]
		dy := y1[i] - y0[i]
		dz := z1[i] - z0[i]
		out[i] = math32.Sqrt(dx*dx + dy*dy + dz*dz)
	}
}

// processNormalize writes the unit vector and the length. A zero vector
// normalizes to zero.
func processNormalize(ctx *BufferContext) {
	xs, ys, zs := ctx.In[0].Data, ctx.In[1].Data, ctx.In[2].Data
	nx, ny, nz, ln := ctx.Out[0].Data, ctx.Out[1].Data, ctx.Out[2].Data, ctx.Out[3].Data
	for i := range nx {
		x, y, z := xs[i], ys[i], zs[i]
		l := math32.Sqrt(x*x + y*y + z*z)
		nx[i] = interval.DivValue(x, l)
		ny[i] = interval.DivValue(y, l)
		nz[i] = interval.DivValue(z, l)
		ln[i] = l
	}
}

// unitSlack bounds |x / |v|| after float32 rounding.
var unitSlack = interval.New(-1.0001, 1.0001)

func rangeNormalize(ctx *RangeContext) {
	x, y, z := ctx.In[0], ctx.In[1], ctx.In[2]
	l := interval.Length3(x, y, z)
	lo, hi := interval.Point(unitSlack.Min), interval.Point(unitSlack.Max)
	ctx.Out[0] = interval.Clamp(x.Div(l), lo, hi)
	ctx.Out[1] = interval.Clamp(y.Div(l), lo, hi)
	ctx.Out[2] = interval.Clamp(z.Div(l), lo, hi)
	ctx.Out[3] = l
}
