// SPDX-License-Identifier: MIT

package program

import (
	"fmt"

	"github.com/katalvlaran/voxgraph/interval"
	"github.com/katalvlaran/voxgraph/nodes"
)

// State holds the batch buffers of one evaluating goroutine. It is tied
// to the Program that created it and must not be shared.
type State struct {
	prog    *Program
	size    int
	buffers []*nodes.Buffer
	ctxs    []nodes.BufferContext
}

// NewState allocates evaluation buffers for p. Buffers grow on demand to
// the batch size passed to Evaluate.
func (p *Program) NewState() *State {
	st := &State{
		prog:    p,
		size:    -1,
		buffers: make([]*nodes.Buffer, len(p.slots)),
		ctxs:    make([]nodes.BufferContext, len(p.instrs)),
	}
	for i := range st.buffers {
		st.buffers[i] = &nodes.Buffer{}
	}
	for i, ins := range p.instrs {
		ctx := &st.ctxs[i]
		ctx.In = make([]*nodes.Buffer, len(ins.in))
		ctx.Out = make([]*nodes.Buffer, len(ins.out))
		ctx.Params = ins.params
		for j, s := range ins.in {
			ctx.In[j] = st.buffers[s]
		}
		for j, s := range ins.out {
			ctx.Out[j] = st.buffers[s]
		}
	}

	return st
}

// resize sizes every buffer to n samples and refills the constant slots.
func (st *State) resize(n int) {
	if st.size == n {
		return
	}
	for i, s := range st.prog.slots {
		b := st.buffers[i]
		if cap(b.Data) >= n {
			b.Data = b.Data[:n]
		} else {
			b.Data = make([]float32, n)
		}
		if s.kind == slotConstant {
			b.Fill(s.value)
		}
	}
	st.size = n
}

// Evaluate runs the program over the sample positions (x[i], y[i], z[i])
// using st's buffers. It returns one freshly allocated array per output,
// in Outputs order.
// Returns ErrInputLength when the coordinate arrays differ in length.
func (p *Program) Evaluate(st *State, x, y, z []float32) ([][]float32, error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return nil, fmt.Errorf("%w: %d, %d, %d", ErrInputLength, len(x), len(y), len(z))
	}
	if st.prog != p {
		st = p.NewState()
	}
	st.resize(n)

	axes := [3][]float32{x, y, z}
	for i, s := range p.slots {
		if s.kind == slotAxis {
			b := st.buffers[i]
			copy(b.Data, axes[s.axis])
			b.Constant = false
		}
	}

	for i, ins := range p.instrs {
		ctx := &st.ctxs[i]
		for _, b := range ctx.Out {
			b.Constant = false
		}
		ins.typ.Process(ctx)
	}

	out := make([][]float32, len(p.outputs))
	for i, s := range p.outputs {
		out[i] = make([]float32, n)
		copy(out[i], st.buffers[s].Data)
	}

	return out, nil
}

// EvaluateBuffers is Evaluate with a fresh State.
func (p *Program) EvaluateBuffers(x, y, z []float32) ([][]float32, error) {
	return p.Evaluate(p.NewState(), x, y, z)
}

// EvaluateRanges bounds every output over the box x × y × z. Each result
// contains every value Evaluate can produce for coordinates in the box.
func (p *Program) EvaluateRanges(x, y, z interval.Interval) []interval.Interval {
	ranges := make([]interval.Interval, len(p.slots))
	axes := [3]interval.Interval{x, y, z}
	for i, s := range p.slots {
		switch s.kind {
		case slotConstant:
			ranges[i] = interval.Point(s.value)
		case slotAxis:
			ranges[i] = axes[s.axis]
		}
	}

	var ctx nodes.RangeContext
	for _, ins := range p.instrs {
		if ins.typ.Range == nil {
			for _, s := range ins.out {
				ranges[s] = interval.Unbounded()
			}
			continue
		}
		ctx.In = ctx.In[:0]
		for _, s := range ins.in {
			ctx.In = append(ctx.In, ranges[s])
		}
		ctx.Out = append(ctx.Out[:0], make([]interval.Interval, len(ins.out))...)
		ctx.Params = ins.params
		ins.typ.Range(&ctx)
		for j, s := range ins.out {
			ranges[s] = ctx.Out[j]
		}
	}

	out := make([]interval.Interval, len(p.outputs))
	for i, s := range p.outputs {
		out[i] = ranges[s]
	}

	return out
}
