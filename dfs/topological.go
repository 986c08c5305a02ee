// SPDX-License-Identifier: MIT

package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/voxgraph/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[K cmp.Ordered] struct {
	graph *core.Graph[K]
	state map[K]int // White, Gray, Black
	order []K       // post-order
}

// TopologicalSort computes a topological ordering of all vertices in g:
// for every edge u→v, u appears before v. Ties resolve toward smaller keys
// being explored first, so the order is deterministic.
// Returns ErrGraphNil for a nil graph and ErrCycleDetected if any cycle
// (self-loops included) exists.
func TopologicalSort[K cmp.Ordered](g *core.Graph[K]) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	s := &topoSorter[K]{
		graph: g,
		state: make(map[K]int, len(verts)),
		order: make([]K, 0, len(verts)),
	}
	// Visiting in descending order and reversing the post-order puts the
	// smallest independent vertices first.
	for i := len(verts) - 1; i >= 0; i-- {
		if s.state[verts[i]] == White {
			if err := s.visit(verts[i]); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (t *topoSorter[K]) visit(id K) error {
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray

	succ, err := t.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("dfs: successors of %v: %w", id, err)
	}
	for i := len(succ) - 1; i >= 0; i-- {
		if err = t.visit(succ[i]); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
