// SPDX-License-Identifier: MIT

package nodes

import "github.com/katalvlaran/voxgraph/interval"

// monop applies f elementwise to input 0. A constant input yields a
// constant output.
func monop(f func(float32) float32) ProcessFunc {
	return func(ctx *BufferContext) {
		a, out := ctx.In[0], ctx.Out[0]
		if a.Constant {
			out.Fill(f(a.ConstantValue))
			return
		}
		for i, v := range a.Data {
			out.Data[i] = f(v)
		}
	}
}

// binop applies f elementwise to inputs 0 and 1, switching to a
// scalar-vs-array loop when either side is constant.
func binop(f func(a, b float32) float32) ProcessFunc {
	return func(ctx *BufferContext) {
		a, b, out := ctx.In[0], ctx.In[1], ctx.Out[0]
		switch {
		case a.Constant && b.Constant:
			out.Fill(f(a.ConstantValue, b.ConstantValue))
		case a.Constant:
			c := a.ConstantValue
			for i, v := range b.Data {
				out.Data[i] = f(c, v)
			}
		case b.Constant:
			c := b.ConstantValue
			for i, v := range a.Data {
				out.Data[i] = f(v, c)
			}
		default:
			for i := range out.Data {
				out.Data[i] = f(a.Data[i], b.Data[i])
			}
		}
	}
}

// divide is binop specialized for a / b with x / 0 = 0. A constant zero
// divisor clears the output without touching a; no path multiplies by a
// reciprocal, so every path rounds like interval.DivValue.
func divide(ctx *BufferContext) {
	a, b, out := ctx.In[0], ctx.In[1], ctx.Out[0]
	switch {
	case b.Constant && b.ConstantValue == 0:
		out.Fill(0)
	case a.Constant && b.Constant:
		out.Fill(a.ConstantValue / b.ConstantValue)
	case a.Constant:
		c := a.ConstantValue
		for i, v := range b.Data {
			if v == 0 {
				out.Data[i] = 0
			} else {
				out.Data[i] = c / v
			}
		}
	case b.Constant:
		c := b.ConstantValue
		for i, v := range a.Data {
			out.Data[i] = v / c
		}
	default:
		for i := range out.Data {
			out.Data[i] = interval.DivValue(a.Data[i], b.Data[i])
		}
	}
}

// monopRange lifts an interval function of input 0.
func monopRange(f func(interval.Interval) interval.Interval) RangeFunc {
	return func(ctx *RangeContext) {
		ctx.Out[0] = f(ctx.In[0])
	}
}

// binopRange lifts an interval function of inputs 0 and 1.
func binopRange(f func(a, b interval.Interval) interval.Interval) RangeFunc {
	return func(ctx *RangeContext) {
		ctx.Out[0] = f(ctx.In[0], ctx.In[1])
	}
}
