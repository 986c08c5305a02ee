// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// config holds the construction flags shared by every Graph instantiation.
type config struct {
	allowLoops bool // allow self-loops
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *config)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// Graph is a directed graph over vertex keys of type K.
//
// mu guards every map; the zero value is not usable, call NewGraph.
type Graph[K cmp.Ordered] struct {
	mu  sync.RWMutex
	cfg config

	vertices map[K]struct{}
	out      map[K]map[K]int // out[from][to] = multiplicity
	in       map[K]map[K]int // in[to][from] = multiplicity
	edges    int             // total multiplicity
}

// NewGraph creates an empty directed Graph.
// By default loops are rejected and parallel edges are counted.
// Complexity: O(1)
func NewGraph[K cmp.Ordered](opts ...GraphOption) *Graph[K] {
	g := &Graph[K]{
		vertices: make(map[K]struct{}),
		out:      make(map[K]map[K]int),
		in:       make(map[K]map[K]int),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}
