// SPDX-License-Identifier: MIT

package program

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/voxgraph/graph"
)

// Sentinel errors, wrapped by *CompileError or returned directly by the
// evaluators.
var (
	// ErrUnknownType indicates a node whose TypeID is not in the registry.
	ErrUnknownType = errors.New("program: unknown node type")

	// ErrUnknownNode indicates a connection or output naming a missing node.
	ErrUnknownNode = errors.New("program: unknown node")

	// ErrBadPort indicates a port index outside the node type's ports.
	ErrBadPort = errors.New("program: port index out of range")

	// ErrNotOutput indicates a designated output that is not an output node.
	ErrNotOutput = errors.New("program: node is not an output")

	// ErrNoOutputs indicates a graph without any output node.
	ErrNoOutputs = errors.New("program: graph has no outputs")

	// ErrCycle indicates a dependency cycle.
	ErrCycle = errors.New("program: dependency cycle")

	// ErrParam indicates a param that failed to bake.
	ErrParam = errors.New("program: invalid param")

	// ErrInputLength indicates coordinate arrays of different lengths.
	ErrInputLength = errors.New("program: coordinate arrays differ in length")
)

// CompileError locates a compile failure. Node and Type are set when the
// failure belongs to one node, Param when a param rejected its value,
// Cycle when Err is ErrCycle.
type CompileError struct {
	Node  graph.NodeID
	Label string
	Type  string
	Param string
	Cycle []graph.NodeID
	Err   error
}

// Error implements error.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString("program: compile")
	if e.Label != "" {
		fmt.Fprintf(&b, ": node %s", e.Label)
		if e.Type != "" {
			fmt.Fprintf(&b, " (%s)", e.Type)
		}
	}
	if e.Param != "" {
		fmt.Fprintf(&b, ": param %q", e.Param)
	}
	if len(e.Cycle) > 0 {
		parts := make([]string, len(e.Cycle))
		for i, id := range e.Cycle {
			parts[i] = fmt.Sprintf("#%d", id)
		}
		fmt.Fprintf(&b, ": cycle %s", strings.Join(parts, " -> "))
	}
	fmt.Fprintf(&b, ": %v", e.Err)

	return b.String()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error { return e.Err }

// nodeError builds a CompileError for node n.
func nodeError(n *graph.Node, typeName string, err error) *CompileError {
	return &CompileError{Node: n.ID, Label: n.Label(), Type: typeName, Err: err}
}
