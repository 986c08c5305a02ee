// SPDX-License-Identifier: MIT

package dfs

import (
	"cmp"
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that a start vertex does not exist
	// in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option[K cmp.Ordered] func(*Options[K])

// Options holds configurable parameters for DFS traversal.
type Options[K cmp.Ordered] struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Reverse walks predecessors instead of successors.
	Reverse bool
}

// DefaultOptions returns Options with a background context and forward
// traversal.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[K cmp.Ordered](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReverse returns an Option that follows edges backwards, visiting
// everything a root depends on.
func WithReverse[K cmp.Ordered]() Option[K] {
	return func(o *Options[K]) { o.Reverse = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[K cmp.Ordered] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []K

	// Depth maps each vertex to its distance (#edges) from its root.
	Depth map[K]int

	// Parent maps each vertex to the vertex from which it was first
	// discovered. Roots do not appear.
	Parent map[K]K

	// Visited flags which vertices were reached during the traversal.
	Visited map[K]bool
}
