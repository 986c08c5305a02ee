// SPDX-License-Identifier: MIT

package program

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/voxgraph"
	"github.com/katalvlaran/voxgraph/core"
	"github.com/katalvlaran/voxgraph/dfs"
	"github.com/katalvlaran/voxgraph/graph"
	"github.com/katalvlaran/voxgraph/nodes"
)

// Option configures Compile.
type Option func(*options)

type options struct {
	fold bool
	log  *slog.Logger
}

// WithoutConstantFolding keeps nodes whose inputs are all constant as
// instructions instead of evaluating them at compile time.
func WithoutConstantFolding() Option {
	return func(o *options) { o.fold = false }
}

// WithLogger sets the logger for compile summaries. By default the
// package-wide voxgraph.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// compiler carries the state of one Compile call.
type compiler struct {
	reg  *nodes.Registry
	g    *graph.Graph
	opts options

	prog    *Program
	nodeOut map[graph.NodeID][]int // output slots per compiled node
	folded  int
}

// Compile validates g against reg and produces a Program. On failure no
// Program is returned and every byproduct baked so far is released.
func Compile(reg *nodes.Registry, g *graph.Graph, opts ...Option) (*Program, error) {
	o := options{fold: true, log: voxgraph.Logger()}
	for _, fn := range opts {
		fn(&o)
	}
	c := &compiler{
		reg:     reg,
		g:       g,
		opts:    o,
		prog:    &Program{log: o.log},
		nodeOut: make(map[graph.NodeID][]int, g.Len()),
	}

	// 1. Validate node types, connections and outputs
	if err := c.validate(); err != nil {
		return nil, err
	}
	sinks, err := c.designatedOutputs()
	if err != nil {
		return nil, err
	}

	// 2. Dependency order
	deps := c.dependencies()
	order, err := dfs.TopologicalSort(deps)
	if errors.Is(err, dfs.ErrCycleDetected) {
		ce := &CompileError{Err: ErrCycle}
		if _, cycles, derr := dfs.DetectCycles(deps); derr == nil && len(cycles) > 0 {
			ce.Cycle = cycles[0]
		}
		return nil, ce
	}
	if err != nil {
		return nil, fmt.Errorf("program: compile: %w", err)
	}

	// 3. Reachability from the outputs
	reach, err := dfs.DFS(deps, sinks, dfs.WithReverse[graph.NodeID]())
	if err != nil {
		return nil, fmt.Errorf("program: compile: %w", err)
	}
	live := deps.Subgraph(func(id graph.NodeID) bool { return reach.Visited[id] })

	// 4. Slot binding, baking, folding
	for _, id := range order {
		if !live.HasVertex(id) {
			continue
		}
		if err = c.emit(id); err != nil {
			c.releaseOwned()
			return nil, err
		}
	}
	for _, id := range sinks {
		n, _ := g.Node(id)
		c.prog.outputs = append(c.prog.outputs, c.inputSlot(n, c.reg.Get(n.Type), 0))
	}
	c.prog.sinks = sinks

	o.log.Debug("compiled program",
		slog.Int("nodes", g.Len()),
		slog.Int("reachable", live.VertexCount()),
		slog.Int("dependencies", live.EdgeCount()),
		slog.Int("instructions", len(c.prog.instrs)),
		slog.Int("folded", c.folded),
		slog.Int("slots", len(c.prog.slots)),
		slog.Int("outputs", len(sinks)),
	)

	return c.prog, nil
}

// validate checks every node in the graph, reachable or not.
func (c *compiler) validate() error {
	all := c.g.Nodes()
	for _, n := range all {
		if int(n.Type) < 0 || int(n.Type) >= c.reg.Len() {
			return nodeError(n, "", fmt.Errorf("%w: %d", ErrUnknownType, n.Type))
		}
	}
	for _, n := range all {
		t := c.reg.Get(n.Type)
		for i, in := range n.Inputs {
			if i >= len(t.Inputs) {
				if in.Connected || in.HasValue {
					return nodeError(n, t.Name, fmt.Errorf("%w: input %d of %d", ErrBadPort, i, len(t.Inputs)))
				}
				continue
			}
			if !in.Connected {
				continue
			}
			src, ok := c.g.Node(in.From)
			if !ok {
				return nodeError(n, t.Name, fmt.Errorf("%w: #%d feeds input %q", ErrUnknownNode, in.From, t.Inputs[i].Name))
			}
			st := c.reg.Get(src.Type)
			if in.Port < 0 || in.Port >= len(st.Outputs) {
				return nodeError(n, t.Name, fmt.Errorf("%w: output %d of %s %s", ErrBadPort, in.Port, st.Name, src.Label()))
			}
		}
		for i, v := range n.Params {
			if i >= len(t.Params) && v != nil {
				return nodeError(n, t.Name, fmt.Errorf("%w: param %d of %d", ErrParam, i, len(t.Params)))
			}
		}
	}

	return nil
}

// designatedOutputs returns the explicit outputs, or every output node in
// id order when none are designated.
func (c *compiler) designatedOutputs() ([]graph.NodeID, error) {
	ids := c.g.Outputs()
	if len(ids) == 0 {
		for _, n := range c.g.Nodes() {
			if c.reg.Get(n.Type).Category == nodes.CategoryOutput {
				ids = append(ids, n.ID)
			}
		}
		if len(ids) == 0 {
			return nil, &CompileError{Err: ErrNoOutputs}
		}
	}
	for _, id := range ids {
		n, ok := c.g.Node(id)
		if !ok {
			return nil, &CompileError{Node: id, Err: fmt.Errorf("%w: output #%d", ErrUnknownNode, id)}
		}
		t := c.reg.Get(n.Type)
		if t.Category != nodes.CategoryOutput {
			return nil, nodeError(n, t.Name, ErrNotOutput)
		}
	}

	return ids, nil
}

// dependencies builds the producer → consumer graph.
func (c *compiler) dependencies() *core.Graph[graph.NodeID] {
	deps := core.NewGraph[graph.NodeID](core.WithLoops())
	for _, n := range c.g.Nodes() {
		deps.AddVertex(n.ID)
		for _, in := range n.Inputs {
			if in.Connected {
				// loops are allowed and multi-edges counted, so AddEdge cannot fail
				_ = deps.AddEdge(in.From, n.ID)
			}
		}
	}

	return deps
}

// emit binds node id to slots, baking and folding as needed.
func (c *compiler) emit(id graph.NodeID) error {
	n, _ := c.g.Node(id)
	t := c.reg.Get(n.Type)

	switch {
	case t.DebugOnly, t.Category == nodes.CategoryOutput:
		return nil
	case t.ID == nodes.TypeInputX:
		c.nodeOut[id] = []int{c.addSlot(slot{kind: slotAxis, axis: 0})}
		return nil
	case t.ID == nodes.TypeInputY:
		c.nodeOut[id] = []int{c.addSlot(slot{kind: slotAxis, axis: 1})}
		return nil
	case t.ID == nodes.TypeInputZ:
		c.nodeOut[id] = []int{c.addSlot(slot{kind: slotAxis, axis: 2})}
		return nil
	}

	var params any
	if t.Bake != nil {
		ctx := nodes.NewBakeContext(t, n.Params)
		v, err := t.Bake(ctx)
		c.prog.owned = append(c.prog.owned, ctx.Owned()...)
		if err != nil {
			return c.paramError(n, t, err)
		}
		params = v
	}

	if t.ID == nodes.TypeConstant {
		v, _ := params.(float32)
		c.nodeOut[id] = []int{c.constant(v)}
		return nil
	}

	in := make([]int, len(t.Inputs))
	allConstant := true
	for i := range t.Inputs {
		in[i] = c.inputSlot(n, t, i)
		if c.prog.slots[in[i]].kind != slotConstant {
			allConstant = false
		}
	}

	if allConstant && c.opts.fold && t.Process != nil {
		c.nodeOut[id] = c.fold(t, in, params)
		c.folded++
		return nil
	}

	out := make([]int, len(t.Outputs))
	for i := range out {
		out[i] = c.addSlot(slot{kind: slotComputed})
	}
	c.nodeOut[id] = out
	c.prog.instrs = append(c.prog.instrs, instruction{node: id, typ: t, in: in, out: out, params: params})

	return nil
}

// fold runs t once over one-element constant buffers and returns constant
// slots holding the results.
func (c *compiler) fold(t *nodes.NodeType, in []int, params any) []int {
	ctx := &nodes.BufferContext{
		In:     make([]*nodes.Buffer, len(in)),
		Out:    make([]*nodes.Buffer, len(t.Outputs)),
		Params: params,
	}
	for i, s := range in {
		ctx.In[i] = nodes.NewConstantBuffer(1, c.prog.slots[s].value)
	}
	for i := range ctx.Out {
		ctx.Out[i] = nodes.NewBuffer(1)
	}
	t.Process(ctx)

	out := make([]int, len(ctx.Out))
	for i, b := range ctx.Out {
		out[i] = c.constant(b.Data[0])
	}

	return out
}

// inputSlot resolves input i of n: the producer's output slot, or a
// constant slot holding the literal or port default.
func (c *compiler) inputSlot(n *graph.Node, t *nodes.NodeType, i int) int {
	in := n.Input(i)
	if in.Connected {
		return c.nodeOut[in.From][in.Port]
	}
	if in.HasValue {
		return c.constant(in.Value)
	}

	return c.constant(t.Inputs[i].Default)
}

func (c *compiler) constant(v float32) int {
	return c.addSlot(slot{kind: slotConstant, value: v})
}

func (c *compiler) addSlot(s slot) int {
	c.prog.slots = append(c.prog.slots, s)

	return len(c.prog.slots) - 1
}

// paramError wraps a bake failure, naming the param when the kernel did.
func (c *compiler) paramError(n *graph.Node, t *nodes.NodeType, err error) error {
	ce := nodeError(n, t.Name, fmt.Errorf("%w: %w", ErrParam, err))
	var pe *nodes.ParamError
	if errors.As(err, &pe) {
		ce.Param = pe.Param
	}

	return ce
}

// releaseOwned closes byproducts of a failed compile.
func (c *compiler) releaseOwned() {
	for _, cl := range c.prog.owned {
		if err := cl.Close(); err != nil {
			c.opts.log.Warn("release baked resource", slog.Any("error", err))
		}
	}
	c.prog.owned = nil
}
