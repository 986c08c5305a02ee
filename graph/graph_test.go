// SPDX-License-Identifier: MIT

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxgraph/graph"
	"github.com/katalvlaran/voxgraph/nodes"
)

func TestGraph_AddNode(t *testing.T) {
	g := graph.New()
	x := g.AddNode(nodes.TypeInputX)
	out := g.AddNode(nodes.TypeOutputSDF)
	assert.Equal(t, graph.NodeID(0), x)
	assert.Equal(t, graph.NodeID(1), out)
	assert.Equal(t, 2, g.Len())

	require.NoError(t, g.AddNodeWithID(10, nodes.TypeAdd))
	assert.ErrorIs(t, g.AddNodeWithID(10, nodes.TypeAdd), graph.ErrDuplicateNode)
	assert.Equal(t, graph.NodeID(11), g.AddNode(nodes.TypeSin))
	assert.Equal(t, []graph.NodeID{0, 1, 10, 11}, g.NodeIDs())

	n, ok := g.Node(10)
	require.True(t, ok)
	assert.Equal(t, nodes.TypeAdd, n.Type)
	assert.Equal(t, "#10", n.Label())
	require.NoError(t, g.SetName(10, "sum"))
	assert.Equal(t, "sum", n.Label())
}

func TestGraph_AddNodeWithIDLimits(t *testing.T) {
	g := graph.New()
	assert.ErrorIs(t, g.AddNodeWithID(graph.MaxNodeID, nodes.TypeAdd), graph.ErrReservedID)
	assert.Equal(t, 0, g.Len())

	require.NoError(t, g.AddNodeWithID(graph.MaxNodeID-1, nodes.TypeAdd))
	require.NoError(t, g.AddNodeWithID(0, nodes.TypeInputX))

	// the counter restarts below MaxNodeID without overwriting node 0
	assert.Equal(t, graph.NodeID(1), g.AddNode(nodes.TypeSin))
	x, ok := g.Node(0)
	require.True(t, ok)
	assert.Equal(t, nodes.TypeInputX, x.Type)
	assert.Equal(t, 3, g.Len())
}

func TestGraph_AddNodeSkipsTakenIDs(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNodeWithID(graph.MaxNodeID-1, nodes.TypeOutputSDF))
	require.NoError(t, g.AddNodeWithID(0, nodes.TypeInputX))
	require.NoError(t, g.AddNodeWithID(1, nodes.TypeAdd))
	require.NoError(t, g.AddNodeWithID(3, nodes.TypeMultiply))

	assert.Equal(t, graph.NodeID(2), g.AddNode(nodes.TypeSin))
	assert.Equal(t, graph.NodeID(4), g.AddNode(nodes.TypeSin))
	n, ok := g.Node(1)
	require.True(t, ok)
	assert.Equal(t, nodes.TypeAdd, n.Type)
	n, ok = g.Node(3)
	require.True(t, ok)
	assert.Equal(t, nodes.TypeMultiply, n.Type)
}

func TestGraph_ConnectAndDefaults(t *testing.T) {
	g := graph.New()
	x := g.AddNode(nodes.TypeInputX)
	add := g.AddNode(nodes.TypeAdd)

	require.NoError(t, g.Connect(x, 0, add, 1))
	require.NoError(t, g.SetDefault(add, 0, 2.5))

	n, _ := g.Node(add)
	assert.Equal(t, graph.Input{HasValue: true, Value: 2.5}, n.Input(0))
	assert.Equal(t, graph.Input{Connected: true, From: x, Port: 0}, n.Input(1))
	assert.Equal(t, graph.Input{}, n.Input(5))

	require.NoError(t, g.Disconnect(add, 1))
	assert.False(t, n.Input(1).Connected)

	assert.ErrorIs(t, g.Connect(x, 0, 99, 0), graph.ErrNodeNotFound)
	assert.ErrorIs(t, g.Connect(99, 0, add, 0), graph.ErrNodeNotFound)
	assert.ErrorIs(t, g.Connect(x, -1, add, 0), graph.ErrBadIndex)
	assert.ErrorIs(t, g.SetDefault(add, -1, 0), graph.ErrBadIndex)
}

func TestGraph_Params(t *testing.T) {
	g := graph.New()
	c := g.AddNode(nodes.TypeClamp)
	require.NoError(t, g.SetParam(c, 1, 4.0))

	n, _ := g.Node(c)
	assert.Equal(t, []any{nil, 4.0}, n.Params)
	assert.ErrorIs(t, g.SetParam(c, -1, 1), graph.ErrBadIndex)
	assert.ErrorIs(t, g.SetParam(42, 0, 1), graph.ErrNodeNotFound)
}

func TestGraph_RemoveNode(t *testing.T) {
	g := graph.New()
	x := g.AddNode(nodes.TypeInputX)
	out := g.AddNode(nodes.TypeOutputSDF)
	require.NoError(t, g.Connect(x, 0, out, 0))
	require.NoError(t, g.SetOutputs(out))
	assert.Equal(t, []graph.NodeID{out}, g.Outputs())

	require.NoError(t, g.RemoveNode(x))
	n, _ := g.Node(out)
	assert.False(t, n.Input(0).Connected)

	require.NoError(t, g.RemoveNode(out))
	assert.Empty(t, g.Outputs())
	assert.ErrorIs(t, g.RemoveNode(out), graph.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetOutputs(out), graph.ErrNodeNotFound)
}
