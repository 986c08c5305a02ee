// SPDX-License-Identifier: MIT

// Command voxgraph compiles a TOML graph file and generates one voxel block.
//
// Usage:
//
//	voxgraph -graph terrain.toml [-origin x,y,z] [-size 16] [-lod 0] [-clip 1.5] [-out block.cbor] [-v]
//	voxgraph -catalog
//
// The block is written as canonical CBOR to -out, or to stdout when -out is
// empty. -catalog prints the node catalog as TOML.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/voxgraph"
	"github.com/katalvlaran/voxgraph/field"
	"github.com/katalvlaran/voxgraph/graphio"
	"github.com/katalvlaran/voxgraph/nodes"
	"github.com/katalvlaran/voxgraph/program"
)

type config struct {
	graph   string
	origin  [3]int
	size    int
	lod     int
	clip    float64
	out     string
	verbose bool
	catalog bool
}

func main() {
	var (
		cfg    config
		origin string
	)
	flag.StringVar(&cfg.graph, "graph", "", "path to the TOML graph file")
	flag.StringVar(&origin, "origin", "0,0,0", "block origin as x,y,z")
	flag.IntVar(&cfg.size, "size", 16, "voxels per block edge")
	flag.IntVar(&cfg.lod, "lod", 0, "level of detail; voxel spacing is 1<<lod")
	flag.Float64Var(&cfg.clip, "clip", field.DefaultClip, "SDF magnitude beyond which blocks are uniform")
	flag.StringVar(&cfg.out, "out", "", "output file (default stdout)")
	flag.BoolVar(&cfg.verbose, "v", false, "log debug output to stderr")
	flag.BoolVar(&cfg.catalog, "catalog", false, "print the node catalog and exit")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	voxgraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	reg := nodes.NewRegistry()
	if cfg.catalog {
		if err := printCatalog(os.Stdout, reg); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	o, err := parseOrigin(origin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	cfg.origin = o
	if cfg.graph == "" {
		fmt.Fprintln(os.Stderr, "-graph is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, reg, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, reg *nodes.Registry, cfg config) (err error) {
	log := voxgraph.Logger()

	f, err := graphio.Load(cfg.graph)
	if err != nil {
		return err
	}
	g, err := f.Build(reg)
	if err != nil {
		return fmt.Errorf("build %s: %w", cfg.graph, err)
	}
	prog, err := program.Compile(reg, g)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, prog.Close()) }()

	gen, err := field.NewGenerator(prog, field.WithClip(float32(cfg.clip)))
	if err != nil {
		return err
	}
	b, err := gen.EmergeBlock(ctx, cfg.origin, cfg.size, cfg.lod)
	if err != nil {
		return err
	}
	log.Info("block generated",
		slog.Any("origin", b.Origin), slog.Int("size", b.Size), slog.Int("lod", b.LOD),
		slog.Bool("uniform", b.Uniform))

	var w io.Writer = os.Stdout
	if cfg.out != "" {
		file, cerr := os.Create(cfg.out)
		if cerr != nil {
			return cerr
		}
		defer func() { err = errors.Join(err, file.Close()) }()
		w = file
	}

	return field.EncodeBlock(w, b)
}

// parseOrigin reads "x,y,z".
func parseOrigin(s string) ([3]int, error) {
	var o [3]int
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return o, fmt.Errorf("origin %q: want x,y,z", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return o, fmt.Errorf("origin %q: %w", s, err)
		}
		o[i] = v
	}

	return o, nil
}

// printCatalog writes every node type as a [[types]] TOML table.
func printCatalog(w io.Writer, reg *nodes.Registry) error {
	var doc struct {
		Types []nodes.TypeInfo `toml:"types"`
	}
	for _, t := range reg.Types() {
		doc.Types = append(doc.Types, reg.TypeInfo(t.ID))
	}

	return toml.NewEncoder(w).Encode(doc)
}
