// SPDX-License-Identifier: MIT

package program

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/voxgraph/graph"
	"github.com/katalvlaran/voxgraph/nodes"
)

// slotKind tells the evaluators where a slot's values come from.
type slotKind uint8

const (
	slotComputed slotKind = iota
	slotConstant
	slotAxis
)

// slot is one value channel of the program.
type slot struct {
	kind  slotKind
	value float32 // slotConstant
	axis  int     // slotAxis: 0=x, 1=y, 2=z
}

// instruction runs one node type over its input slots into its output slots.
type instruction struct {
	node   graph.NodeID
	typ    *nodes.NodeType
	in     []int
	out    []int
	params any
}

// Program is a compiled graph. It is immutable and safe for concurrent
// evaluation; each goroutine needs its own State for buffer evaluation.
type Program struct {
	slots   []slot
	instrs  []instruction
	outputs []int // slot per designated output
	sinks   []graph.NodeID

	owned     []io.Closer
	closeOnce sync.Once
	closeErr  error

	log *slog.Logger
}

// Outputs returns the designated output nodes in evaluation order.
func (p *Program) Outputs() []graph.NodeID { return slices.Clone(p.sinks) }

// InstructionCount returns the number of instructions left after folding.
func (p *Program) InstructionCount() int { return len(p.instrs) }

// SlotCount returns the number of value slots.
func (p *Program) SlotCount() int { return len(p.slots) }

// ConstantOutput reports whether output i folded to a constant and, if so,
// its value.
func (p *Program) ConstantOutput(i int) (float32, bool) {
	s := p.slots[p.outputs[i]]

	return s.value, s.kind == slotConstant
}

// Close releases baked byproducts. Only the first call does any work;
// later calls return the same result.
func (p *Program) Close() error {
	p.closeOnce.Do(func() {
		errs := make([]error, 0, len(p.owned))
		for _, c := range p.owned {
			errs = append(errs, c.Close())
		}
		p.owned = nil
		p.closeErr = errors.Join(errs...)
		p.log.Debug("program closed")
	})

	return p.closeErr
}
