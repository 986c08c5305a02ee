// SPDX-License-Identifier: MIT

// Package graph is the editable description of a voxel graph: node
// instances, their raw param values, the connections between their ports
// and the nodes designated as outputs.
//
// A Graph does not consult the node registry. Port and param indices are
// stored as given and validated later by program.Compile, which also
// reports unknown types, dangling connections and cycles.
//
// A Graph is not safe for concurrent mutation; the compiler only reads it.
package graph
