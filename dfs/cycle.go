// SPDX-License-Identifier: MIT

package dfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/voxgraph/core"
)

// DetectCycles inspects g for simple cycles reachable as DFS back-edges.
// Each cycle is closed ([v0, v1, ..., v0]) and rotated so its smallest
// vertex leads; the list is sorted for deterministic output.
// Returns (true, cycles, nil) if any are found and (false, nil, nil)
// otherwise. A nil graph is cycle-free.
func DetectCycles[K cmp.Ordered](g *core.Graph[K]) (bool, [][]K, error) {
	if g == nil {
		return false, nil, nil
	}
	verts := g.Vertices()
	d := &cycleDetector[K]{
		graph: g,
		state: make(map[K]int, len(verts)),
		path:  make([]K, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if d.state[v] == White {
			if err := d.visit(v); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}
	if len(d.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(d.cycles, slices.Compare[[]K])

	return true, d.cycles, nil
}

type cycleDetector[K cmp.Ordered] struct {
	graph  *core.Graph[K]
	state  map[K]int
	path   []K
	seen   map[string]struct{}
	cycles [][]K
}

// visit marks id Gray, explores its successors and records every Gray→Gray
// back-edge as a cycle.
func (d *cycleDetector[K]) visit(id K) error {
	d.state[id] = Gray
	d.path = append(d.path, id)

	succ, err := d.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("successors of %v: %w", id, err)
	}
	for _, nbr := range succ {
		switch d.state[nbr] {
		case White:
			if err = d.visit(nbr); err != nil {
				return err
			}
		case Gray:
			d.record(nbr)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black

	return nil
}

// record extracts the cycle that closes at start and keeps it if its
// canonical form is new.
func (d *cycleDetector[K]) record(start K) {
	idx := slices.Index(d.path, start)
	closed := canonical(d.path[idx:])
	sig := JoinSig(closed)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}

// canonical returns the minimal rotation of the open cycle base, closed by
// repeating its first vertex. Direction is preserved: in a directed graph
// the reversed sequence is a different cycle.
func canonical[K cmp.Ordered](base []K) []K {
	rot := MinimalRotation(base)

	return append(rot, rot[0])
}
