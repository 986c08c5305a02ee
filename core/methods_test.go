// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxgraph/core"
)

func TestGraph_AddVertexIdempotent(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddVertex(3)
	g.AddVertex(3)
	g.AddVertex(1)

	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(2))
	assert.Equal(t, []int{1, 3}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
}

func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "b"))

	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
	assert.Equal(t, 3, g.EdgeCount())

	succ, err := g.Successors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, succ)

	pred, err := g.Predecessors("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, pred)
}

func TestGraph_Constraints(t *testing.T) {
	g := core.NewGraph[int]()
	assert.ErrorIs(t, g.AddEdge(1, 1), core.ErrLoopNotAllowed)
	assert.False(t, g.HasVertex(1))

	looped := core.NewGraph[int](core.WithLoops())
	require.NoError(t, looped.AddEdge(1, 1))
	assert.True(t, looped.HasEdge(1, 1))
	assert.Equal(t, 1, looped.EdgeCount())
}

func TestGraph_MissingVertex(t *testing.T) {
	g := core.NewGraph[int]()
	_, err := g.Successors(7)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Predecessors(7)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Subgraph(t *testing.T) {
	g := core.NewGraph[int](core.WithLoops())
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(3, 3))

	s := g.Subgraph(func(v int) bool { return v != 2 })
	assert.Equal(t, []int{1, 3}, s.Vertices())
	assert.Equal(t, 3, s.EdgeCount())
	assert.True(t, s.HasEdge(1, 3))
	assert.True(t, s.HasEdge(3, 3))
	pred, err := s.Predecessors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, pred)

	// loops stay allowed on the induced graph
	require.NoError(t, s.AddEdge(1, 1))

	// the source graph is untouched
	assert.Equal(t, 5, g.EdgeCount())
	assert.False(t, g.HasEdge(1, 1))
}

// TestGraph_ConcurrentAddEdge checks that concurrent writers and readers
// leave every edge recorded.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[string]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, g.AddEdge("X", fmt.Sprintf("V%03d", id)))
			_ = g.Vertices()
		}(i)
	}
	wg.Wait()

	succ, err := g.Successors("X")
	require.NoError(t, err)
	require.Len(t, succ, num)
	assert.Equal(t, "V000", succ[0])
}
