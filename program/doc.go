// SPDX-License-Identifier: MIT

// Package program compiles a graph description into an immutable Program
// and evaluates it two ways.
//
// Compile:
//
//  1. Validate types, connections, port indices and designated outputs.
//  2. Order nodes topologically over a core.Graph of dependencies; a cycle
//     is reported together with the nodes on it.
//  3. Keep only what the outputs depend on. Debug-only nodes never run.
//  4. Bind coordinate inputs, constants and unconnected ports to slots,
//     bake every remaining node's params, fold nodes whose inputs are all
//     constant and emit the rest as instructions.
//
// Evaluate:
//
//   - Evaluate / EvaluateBuffers run the instructions over batches of
//     sample positions. A State holds the batch buffers and belongs to one
//     goroutine; any number of goroutines may share one Program.
//   - EvaluateRanges runs the range kernels over coordinate intervals and
//     returns a sound bound per output. Types without a range kernel yield
//     the unbounded interval.
//
// Resources baked into the program (range grids, heightmap shapes) are
// released once by Close.
package program
