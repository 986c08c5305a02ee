// SPDX-License-Identifier: MIT

package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/voxgraph/core"
)

// walker encapsulates state during DFS.
type walker[K cmp.Ordered] struct {
	graph *core.Graph[K]
	opts  Options[K]
	res   *Result[K]
}

// DFS performs depth‑first search on g from each root in turn, skipping
// roots already reached from an earlier one.
// Returns the Result or an error if aborted by context.
func DFS[K cmp.Ordered](g *core.Graph[K], roots []K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}
	for _, r := range roots {
		if !g.HasVertex(r) {
			return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, r)
		}
	}

	n := g.VertexCount()
	res := &Result[K]{
		Order:   make([]K, 0, n),
		Depth:   make(map[K]int, n),
		Parent:  make(map[K]K, n),
		Visited: make(map[K]bool, n),
	}
	w := &walker[K]{graph: g, opts: o, res: res}
	for _, r := range roots {
		if res.Visited[r] {
			continue
		}
		if err := w.traverse(r, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// neighbors returns the next hop of id in the walk direction.
func (w *walker[K]) neighbors(id K) ([]K, error) {
	if w.opts.Reverse {
		return w.graph.Predecessors(id)
	}

	return w.graph.Successors(id)
}

// traverse visits vertex id at the given depth, recursing to neighbors.
func (w *walker[K]) traverse(id K, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	nbs, err := w.neighbors(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: neighbors of %v: %w", id, err)
	}
	for _, nid := range nbs {
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
