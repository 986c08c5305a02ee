// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"maps"
	"slices"
)

// AddVertex inserts id into the Graph. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertex(id)
}

func (g *Graph[K]) addVertex(id K) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[K]int)
	g.in[id] = make(map[K]int)
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge records a directed edge from → to, adding missing endpoints.
// Returns ErrLoopNotAllowed for a self-loop unless the graph allows loops.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K) error {
	if from == to && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertex(from)
	g.addVertex(to)
	g.out[from][to]++
	g.in[to][from]++
	g.edges++

	return nil
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.out[from][to] > 0
}

// Successors returns the distinct targets of edges leaving id, ascending.
// Returns ErrVertexNotFound for an absent vertex.
// Complexity: O(d log d).
func (g *Graph[K]) Successors(id K) ([]K, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.out[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(adj), nil
}

// Predecessors returns the distinct sources of edges entering id, ascending.
// Returns ErrVertexNotFound for an absent vertex.
// Complexity: O(d log d).
func (g *Graph[K]) Predecessors(id K) ([]K, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.in[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(adj), nil
}

// Vertices returns every vertex, ascending.
// Complexity: O(V log V)
func (g *Graph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.vertices)
}

// VertexCount returns |V|.
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E| counting multiplicity.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Subgraph returns the subgraph induced by the vertices for which keep
// reports true.
// Complexity: O(V + E)
func (g *Graph[K]) Subgraph(keep func(K) bool) *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := NewGraph[K]()
	s.cfg = g.cfg
	for v := range g.vertices {
		if keep(v) {
			s.addVertex(v)
		}
	}
	for from := range s.vertices {
		for to, c := range g.out[from] {
			if _, ok := s.vertices[to]; !ok {
				continue
			}
			s.out[from][to] = c
			s.in[to][from] = c
			s.edges += c
		}
	}

	return s
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}
