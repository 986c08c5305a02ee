// SPDX-License-Identifier: MIT

package field

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/chewxy/math32"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/voxgraph"
	"github.com/katalvlaran/voxgraph/interval"
	"github.com/katalvlaran/voxgraph/program"
)

const (
	// DefaultClip is the SDF magnitude beyond which a block counts as
	// empty or solid.
	DefaultClip = 1.5

	// DefaultBatchSize is the target number of voxels evaluated per slab.
	DefaultBatchSize = 4096

	maxLOD = 24
)

var (
	// ErrNoOutput indicates a program without an SDF output.
	ErrNoOutput = errors.New("field: program has no output")

	// ErrBlockSize indicates a non-positive block size or an LOD out of range.
	ErrBlockSize = errors.New("field: invalid block size or lod")

	// ErrCorruptBlock indicates a decoded block whose shape is inconsistent.
	ErrCorruptBlock = errors.New("field: corrupt block")
)

// Option configures a Generator.
type Option func(*options)

type options struct {
	clip    float32
	batch   int
	workers int
	log     *slog.Logger
}

// WithClip sets the SDF magnitude used for pruning and clamping. Values
// that are not positive are ignored.
func WithClip(clip float32) Option {
	return func(o *options) {
		if clip > 0 {
			o.clip = clip
		}
	}
}

// WithBatchSize sets the target number of voxels per slab.
func WithBatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batch = n
		}
	}
}

// WithWorkers bounds the number of slabs or blocks evaluated at once.
// The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the logger for pruning decisions. By default the
// package-wide voxgraph.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Generator samples one Program into blocks. It is safe for concurrent use.
type Generator struct {
	prog   *program.Program
	opts   options
	states sync.Pool
}

// Request names one block to generate.
type Request struct {
	Origin [3]int
	Size   int
	LOD    int
}

// NewGenerator wraps p, whose output 0 is the SDF channel.
func NewGenerator(p *program.Program, opts ...Option) (*Generator, error) {
	if p == nil || len(p.Outputs()) == 0 {
		return nil, ErrNoOutput
	}
	o := options{
		clip:    DefaultClip,
		batch:   DefaultBatchSize,
		workers: runtime.GOMAXPROCS(0),
		log:     voxgraph.Logger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	g := &Generator{prog: p, opts: o}
	g.states.New = func() any { return p.NewState() }

	return g, nil
}

// Clip returns the pruning threshold.
func (g *Generator) Clip() float32 { return g.opts.clip }

// EmergeBlock samples the size³ voxels starting at origin with spacing
// 1<<lod. The context is checked between slabs.
func (g *Generator) EmergeBlock(ctx context.Context, origin [3]int, size, lod int) (*Block, error) {
	if size <= 0 || lod < 0 || lod > maxLOD {
		return nil, fmt.Errorf("%w: size %d lod %d", ErrBlockSize, size, lod)
	}
	b := &Block{Origin: origin, Size: size, LOD: lod}

	// 1. Whole-block pruning
	if v, ok := g.uniform(b, 0, size); ok {
		b.Uniform, b.Value = true, v
		g.opts.log.Debug("block pruned",
			slog.Any("origin", origin), slog.Int("size", size), slog.Int("lod", lod), slog.Float64("value", float64(v)))
		return b, nil
	}

	// 2. Slabs of whole z-layers
	layer := size * size
	depth := max(1, g.opts.batch/layer)
	b.SDF = make([]float32, b.Len())

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.workers)
	var pruned, sampled int
	var mu sync.Mutex
	for k0 := 0; k0 < size; k0 += depth {
		k1 := min(size, k0+depth)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			wasPruned, err := g.fillSlab(b, k0, k1)
			if err != nil {
				return err
			}
			mu.Lock()
			if wasPruned {
				pruned++
			} else {
				sampled++
			}
			mu.Unlock()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	g.opts.log.Debug("block evaluated",
		slog.Any("origin", origin), slog.Int("size", size), slog.Int("lod", lod),
		slog.Int("slabs_sampled", sampled), slog.Int("slabs_pruned", pruned))

	return b, nil
}

// EmergeBlocks generates every request in parallel, returning blocks in
// request order. The first failure cancels the rest.
func (g *Generator) EmergeBlocks(ctx context.Context, reqs []Request) ([]*Block, error) {
	out := make([]*Block, len(reqs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.workers)
	for i, r := range reqs {
		eg.Go(func() error {
			b, err := g.EmergeBlock(ctx, r.Origin, r.Size, r.LOD)
			if err != nil {
				return fmt.Errorf("field: block %v: %w", r.Origin, err)
			}
			out[i] = b

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// bounds returns the coordinate box of z-layers [k0, k1) of b.
func bounds(b *Block, k0, k1 int) (x, y, z interval.Interval) {
	s := b.Step()
	ext := float32((b.Size - 1) * s)
	ox, oy, oz := float32(b.Origin[0]), float32(b.Origin[1]), float32(b.Origin[2])

	return interval.New(ox, ox+ext),
		interval.New(oy, oy+ext),
		interval.New(oz+float32(k0*s), oz+float32((k1-1)*s))
}

// uniform reports whether layers [k0, k1) of b lie entirely beyond the
// clip distance and, if so, the clamped value they read as.
func (g *Generator) uniform(b *Block, k0, k1 int) (float32, bool) {
	x, y, z := bounds(b, k0, k1)
	r := g.prog.EvaluateRanges(x, y, z)[0]
	switch {
	case r.Min > g.opts.clip:
		return g.opts.clip, true
	case r.Max < -g.opts.clip:
		return -g.opts.clip, true
	}

	return 0, false
}

// fillSlab writes layers [k0, k1) of b, pruning first. It reports whether
// the slab was pruned.
func (g *Generator) fillSlab(b *Block, k0, k1 int) (bool, error) {
	layer := b.Size * b.Size
	dst := b.SDF[k0*layer : k1*layer]
	if v, ok := g.uniform(b, k0, k1); ok {
		for i := range dst {
			dst[i] = v
		}
		return true, nil
	}

	n := len(dst)
	xs, ys, zs := make([]float32, n), make([]float32, n), make([]float32, n)
	idx := 0
	for k := k0; k < k1; k++ {
		for j := 0; j < b.Size; j++ {
			for i := 0; i < b.Size; i++ {
				p := b.Position(i, j, k)
				xs[idx], ys[idx], zs[idx] = float32(p[0]), float32(p[1]), float32(p[2])
				idx++
			}
		}
	}

	st := g.states.Get().(*program.State)
	out, err := g.prog.Evaluate(st, xs, ys, zs)
	g.states.Put(st)
	if err != nil {
		return false, err
	}
	clip := g.opts.clip
	for i, v := range out[0] {
		dst[i] = math32.Max(-clip, math32.Min(clip, v))
	}

	return false, nil
}
