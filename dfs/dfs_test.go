// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxgraph/core"
	"github.com/katalvlaran/voxgraph/dfs"
)

// build returns a directed graph with loops allowed and the given edges.
func build(t *testing.T, edges ...[2]string) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string](core.WithLoops())
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestDFS_NilAndMissing(t *testing.T) {
	_, err := dfs.DFS[string](nil, nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, [2]string{"A", "B"})
	_, err = dfs.DFS(g, []string{"Z"})
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_ForwardAndReverse(t *testing.T) {
	g := build(t,
		[2]string{"A", "B"}, [2]string{"B", "C"},
		[2]string{"D", "C"}, [2]string{"E", "F"},
	)

	res, err := dfs.DFS(g, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
	assert.Equal(t, 2, res.Depth["C"])
	assert.Equal(t, "B", res.Parent["C"])
	assert.False(t, res.Visited["D"])

	res, err = dfs.DFS(g, []string{"C"}, dfs.WithReverse[string]())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.False(t, res.Visited["E"])

	res, err = dfs.DFS(g, []string{"C", "F"}, dfs.WithReverse[string]())
	require.NoError(t, err)
	assert.True(t, res.Visited["E"])
	assert.Len(t, res.Order, 6)
}

func TestDFS_Canceled(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, []string{"A"}, dfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := dfs.DFS(g, []string{"A"}, dfs.WithContext[string](context.Background()))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
}

func TestTopologicalSort(t *testing.T) {
	_, err := dfs.TopologicalSort[string](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	order, err := dfs.TopologicalSort(core.NewGraph[int]())
	require.NoError(t, err)
	assert.Empty(t, order)

	g := core.NewGraph[int]()
	g.AddVertex(9)
	edges := [][2]int{{5, 1}, {1, 3}, {2, 3}, {3, 4}, {5, 4}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	order, err = dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 6)
	pos := func(v int) int { return slices.Index(order, v) }
	for _, e := range edges {
		assert.Less(t, pos(e[0]), pos(e[1]), "%d -> %d", e[0], e[1])
	}

	again, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, order, again)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	loop := build(t, [2]string{"A", "A"})
	_, err = dfs.TopologicalSort(loop)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestDetectCycles(t *testing.T) {
	ok, cycles, err := dfs.DetectCycles(build(t, [2]string{"A", "B"}))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cycles)

	g := build(t,
		[2]string{"C", "A"}, [2]string{"A", "B"}, [2]string{"B", "C"},
		[2]string{"D", "D"}, [2]string{"B", "E"},
	)
	ok, cycles, err = dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}, {"D", "D"}}, cycles)
}

func TestUtils(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, dfs.Reverse([]int{2, 1, 3}))
	assert.Equal(t, "1,2,3", dfs.JoinSig([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 5, 2}, dfs.MinimalRotation([]int{5, 2, 1}))
	assert.Equal(t, []string{"a", "a", "b"}, dfs.MinimalRotation([]string{"a", "b", "a"}))
	assert.Nil(t, dfs.MinimalRotation([]int{}))
}
