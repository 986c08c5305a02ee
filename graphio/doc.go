// SPDX-License-Identifier: MIT

// Package graphio reads and writes node graphs as description files.
//
// A File names its nodes and wires them by name:
//
//	outputs = ["out"]
//
//	[[nodes]]
//	name = "px"
//	type = "InputX"
//
//	[[nodes]]
//	name = "ball"
//	type = "SdfSphere"
//	inputs = { x = "px", y = "py", z = "pz", radius = 20.0 }
//
//	[[nodes]]
//	name = "out"
//	type = "OutputSDF"
//	inputs = { sdf = "ball" }
//
// An input is either a reference ("node" for output port 0, "node.port"
// otherwise) or a number used as the unconnected default. Params are
// numbers for real params and resource names for resource params.
// Resources are declared in the curves, images, noises and warps tables or
// supplied by the caller with WithResource.
//
// Files are TOML for editing (Load, Decode, Encode) and canonical CBOR for
// interchange (EncodeCBOR, DecodeCBOR). Build turns a File into a
// graph.Graph ready for program.Compile.
package graphio
