// SPDX-License-Identifier: MIT

// Package nodes is the closed catalog of node types a voxel graph is built
// from, together with the per-node kernels that evaluate them.
//
// What:
//
//   - Registry: an immutable table of NodeType records, one per TypeID,
//     with O(1) name→index lookups for types, inputs, outputs and params.
//   - NodeType: ports, params, category, debug flag, and up to three
//     behaviors (Bake, Process, Range) dispatched through plain func fields.
//   - Buffer: a dense []float32 batch that may also be flagged constant,
//     letting kernels take scalar-vs-array fast paths.
//   - BakeContext / BufferContext / RangeContext: what each behavior sees.
//
// Behaviors:
//
//   - Bake validates raw param values once, at compile time, and returns an
//     opaque value the other two behaviors read. Heap byproducts that must be
//     released with the program are registered through BakeContext.Own.
//   - Process evaluates a batch. It never fails: division by zero yields 0,
//     square roots clamp negative input, image lookups wrap.
//   - Range bounds Process over input intervals. A type without Range is
//     treated as Unbounded by the evaluator.
//
// Errors:
//
//   - ErrNilResource   a resource param is unset.
//   - ErrResourceKind  a resource param holds the wrong kind of object.
//   - ErrParamType     a real param holds a non-numeric value.
//
// Bake failures are reported as *ParamError naming the param.
//
// Concurrency:
//
// The Registry, every NodeType and every baked value are read-only after
// construction. Kernels keep no state outside their context arguments.
package nodes
