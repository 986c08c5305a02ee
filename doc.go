// Package voxgraph compiles node graphs of math, noise and SDF operators into
// immutable programs that produce scalar fields for voxel terrain.
//
// What is voxgraph?
//
//	A pure-Go pipeline that takes a user-authored graph description and:
//		• compiles it into a linear, thread-shareable program
//		• evaluates it densely over batches of sample positions
//		• evaluates it conservatively over coordinate intervals, so callers
//		  can prune whole regions without sampling them
//
// Under the hood, everything is organized under these subpackages:
//
//	interval/ — sound [min,max] arithmetic used by range analysis
//	sdf/      — signed distance primitives in scalar and interval form
//	raster/   — repeat-wrap image sampling and min/max range grids
//	resource/ — curve, image and noise handles consumed by nodes
//	nodes/    — the closed node-type catalog and its kernels
//	graph/    — the read-only graph description handed to the compiler
//	core/     — directed dependency graph between node instances
//	dfs/      — topological order, reachability and cycle enumeration
//	program/  — compiler, buffer evaluator and range evaluator
//	field/    — range-pruned, parallel block generation on top of program
//	graphio/  — TOML and CBOR graph description files
//
// Quick example:
//
//	reg := nodes.NewRegistry()
//	g := graph.New()
//	x := g.AddNode(nodes.TypeInputX)
//	y := g.AddNode(nodes.TypeInputY)
//	z := g.AddNode(nodes.TypeInputZ)
//	s := g.AddNode(nodes.TypeSdfSphere)
//	_ = g.Connect(x, 0, s, 0)
//	_ = g.Connect(y, 0, s, 1)
//	_ = g.Connect(z, 0, s, 2)
//	_ = g.SetDefault(s, 3, 10)
//	out := g.AddNode(nodes.TypeOutputSDF)
//	_ = g.Connect(s, 0, out, 0)
//
//	prog, err := program.Compile(reg, g)
//	// prog.EvaluateBuffers(xs, ys, zs) / prog.EvaluateRanges(ix, iy, iz)
//
// Logging is silent by default; see SetLogger.
package voxgraph
