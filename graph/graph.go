// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/katalvlaran/voxgraph/nodes"
)

var (
	// ErrNodeNotFound indicates an operation referenced a node not in the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrDuplicateNode indicates AddNodeWithID reused an existing id.
	ErrDuplicateNode = errors.New("graph: duplicate node id")

	// ErrBadIndex indicates a negative port or param index.
	ErrBadIndex = errors.New("graph: negative index")

	// ErrReservedID indicates AddNodeWithID was given MaxNodeID.
	ErrReservedID = errors.New("graph: reserved node id")
)

// MaxNodeID is never assigned, so the id counter cannot wrap around.
const MaxNodeID NodeID = math.MaxUint32

// NodeID identifies a node instance within one Graph.
type NodeID uint32

// Input is the state of one input port: connected to another node's
// output, or unconnected with an optional literal overriding the port
// default.
type Input struct {
	Connected bool
	From      NodeID
	Port      int

	HasValue bool
	Value    float32
}

// Node is one instance of a node type.
type Node struct {
	ID   NodeID
	Type nodes.TypeID
	// Name is an optional label carried into error messages.
	Name string
	// Params holds raw param values by index; nil entries take the default.
	Params []any
	// Inputs holds input states by index; missing entries are unconnected.
	Inputs []Input
}

// Label returns Name, or "#<id>" when the node is unnamed.
func (n *Node) Label() string {
	if n.Name != "" {
		return n.Name
	}

	return fmt.Sprintf("#%d", n.ID)
}

// Input returns the state of input i, unconnected when never set.
func (n *Node) Input(i int) Input {
	if i < 0 || i >= len(n.Inputs) {
		return Input{}
	}

	return n.Inputs[i]
}

func (n *Node) input(i int) *Input {
	if i >= len(n.Inputs) {
		n.Inputs = append(n.Inputs, make([]Input, i+1-len(n.Inputs))...)
	}

	return &n.Inputs[i]
}

// Graph is a set of nodes keyed by NodeID plus the designated outputs.
type Graph struct {
	nodes   map[NodeID]*Node
	next    NodeID
	outputs []NodeID
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[NodeID]*Node)}
}

// AddNode appends a node of type t and returns its id. Ids are assigned
// in increasing order, skipping any taken by AddNodeWithID. Past
// MaxNodeID the search restarts at the lowest free id.
func (g *Graph) AddNode(t nodes.TypeID) NodeID {
	for {
		if g.next == MaxNodeID {
			g.next = 0
		}
		if _, taken := g.nodes[g.next]; !taken {
			break
		}
		g.next++
	}
	id := g.next
	g.nodes[id] = &Node{ID: id, Type: t}
	g.next++

	return id
}

// AddNodeWithID inserts a node of type t under a caller-chosen id below
// MaxNodeID.
func (g *Graph) AddNodeWithID(id NodeID, t nodes.TypeID) error {
	if id == MaxNodeID {
		return fmt.Errorf("%w: %d", ErrReservedID, id)
	}
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = &Node{ID: id, Type: t}
	if id >= g.next {
		g.next = id + 1
	}

	return nil
}

// RemoveNode deletes id, disconnects every input fed by it and drops it
// from the designated outputs.
func (g *Graph) RemoveNode(id NodeID) error {
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	delete(g.nodes, id)
	for _, n := range g.nodes {
		for i := range n.Inputs {
			if n.Inputs[i].Connected && n.Inputs[i].From == id {
				n.Inputs[i].Connected = false
			}
		}
	}
	g.outputs = slices.DeleteFunc(g.outputs, func(o NodeID) bool { return o == id })

	return nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// Nodes returns every node ordered by id.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, id := range g.NodeIDs() {
		out = append(out, g.nodes[id])
	}

	return out
}

// NodeIDs returns every node id, ascending.
func (g *Graph) NodeIDs() []NodeID {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) lookup(id NodeID) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// SetName labels a node for diagnostics.
func (g *Graph) SetName(id NodeID, name string) error {
	n, err := g.lookup(id)
	if err != nil {
		return err
	}
	n.Name = name

	return nil
}

// SetParam stores the raw value of param index on node id. A nil value
// restores the default.
func (g *Graph) SetParam(id NodeID, index int, value any) error {
	if index < 0 {
		return ErrBadIndex
	}
	n, err := g.lookup(id)
	if err != nil {
		return err
	}
	if index >= len(n.Params) {
		n.Params = append(n.Params, make([]any, index+1-len(n.Params))...)
	}
	n.Params[index] = value

	return nil
}

// Connect feeds output srcPort of src into input dstPort of dst,
// replacing any previous connection or literal. Port indices are checked
// against node types at compile time.
func (g *Graph) Connect(src NodeID, srcPort int, dst NodeID, dstPort int) error {
	if srcPort < 0 || dstPort < 0 {
		return ErrBadIndex
	}
	if _, err := g.lookup(src); err != nil {
		return err
	}
	n, err := g.lookup(dst)
	if err != nil {
		return err
	}
	*n.input(dstPort) = Input{Connected: true, From: src, Port: srcPort}

	return nil
}

// Disconnect clears input dstPort of dst, keeping any literal value.
func (g *Graph) Disconnect(dst NodeID, dstPort int) error {
	if dstPort < 0 {
		return ErrBadIndex
	}
	n, err := g.lookup(dst)
	if err != nil {
		return err
	}
	if dstPort < len(n.Inputs) {
		n.Inputs[dstPort].Connected = false
	}

	return nil
}

// SetDefault sets the literal used by input dstPort of dst while it is
// unconnected.
func (g *Graph) SetDefault(dst NodeID, dstPort int, v float32) error {
	if dstPort < 0 {
		return ErrBadIndex
	}
	n, err := g.lookup(dst)
	if err != nil {
		return err
	}
	in := n.input(dstPort)
	in.HasValue = true
	in.Value = v

	return nil
}

// SetOutputs designates the output sinks in order. With none designated,
// the compiler takes every output-category node in id order.
func (g *Graph) SetOutputs(ids ...NodeID) error {
	for _, id := range ids {
		if _, err := g.lookup(id); err != nil {
			return err
		}
	}
	g.outputs = slices.Clone(ids)

	return nil
}

// Outputs returns the designated output sinks.
func (g *Graph) Outputs() []NodeID { return slices.Clone(g.outputs) }
