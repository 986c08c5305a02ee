// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory directed graph keyed by any
// ordered vertex type.
//
// The Graph G = (V,E) records dependency edges from → to:
//
//   - Vertices are added explicitly (AddVertex) or implicitly by AddEdge.
//   - Self-loops are rejected unless the graph is built WithLoops.
//   - Parallel edges collapse into one edge with a multiplicity.
//   - Successors and Predecessors are both O(1) map lookups:
//     out[from][to] = count and in[to][from] = count.
//   - Iteration is deterministic: Vertices, Successors and Predecessors
//     return ascending slices.
//
// A single sync.RWMutex guards all state; readers never block each other.
//
// Errors:
//
//   - ErrVertexNotFound  query or edge referenced an absent vertex
//   - ErrLoopNotAllowed  self-loop on a graph without WithLoops
//
// Complexity:
//
//   - AddVertex, AddEdge, HasEdge: O(1) amortized
//   - Successors, Predecessors:    O(d log d)
//   - Vertices:                    O(V log V)
//   - Subgraph:                    O(V + E)
package core
