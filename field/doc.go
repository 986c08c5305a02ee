// SPDX-License-Identifier: MIT

// Package field generates voxel blocks from a compiled program.
//
// A Generator samples output 0 of a Program, the SDF channel, over cubic
// blocks of voxels. Before sampling anything it asks the range evaluator
// for a bound over the whole block: a block whose bound lies entirely
// outside [-clip, clip] is uniform and is returned without buffer
// evaluation. Otherwise the block is cut into slabs of whole z-layers,
// each pruned the same way, and the remaining slabs are evaluated in
// parallel with one program.State per worker.
//
// Sampled values are clamped to [-clip, clip], so a uniform block and a
// sampled one agree on what "far from the surface" reads as.
//
// Blocks encode to canonical CBOR (EncodeBlock / DecodeBlock).
package field
