// SPDX-License-Identifier: MIT

// Package dfs implements depth‑first search traversal, cycle detection,
// and topological sort on a directed core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, following successors or, WithReverse, predecessors.
//     Supports cancellation via context.Context and multiple roots.
//   - DetectCycles: enumerates all simple cycles using vertex coloring
//     (White, Gray, Black) with back‑edge recording and canonical
//     signature deduplication.
//   - TopologicalSort: computes a linear ordering of vertices in a DAG,
//     returning ErrCycleDetected if cycles exist.
//
// Every routine visits vertices and neighbors in ascending key order, so
// results are deterministic for a given graph.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V+L_max)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        DFS canceled via context
package dfs
