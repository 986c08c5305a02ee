// SPDX-License-Identifier: MIT

package resource

import (
	"math"

	"github.com/katalvlaran/voxgraph/interval"
)

// Noise is a coherent noise generator. Range2D and Range3D must contain every
// value the point forms return for coordinates inside the given intervals.
type Noise interface {
	Noise2D(x, y float32) float32
	Noise3D(x, y, z float32) float32
	Range2D(x, y interval.Interval) interval.Interval
	Range3D(x, y, z interval.Interval) interval.Interval
}

// GradientNoise displaces coordinates. The range forms bound each displaced
// coordinate over input boxes.
type GradientNoise interface {
	Warp2D(x, y float32) (float32, float32)
	Warp3D(x, y, z float32) (float32, float32, float32)
	WarpRange2D(x, y interval.Interval) (interval.Interval, interval.Interval)
	WarpRange3D(x, y, z interval.Interval) (interval.Interval, interval.Interval, interval.Interval)
}

// NoiseOption configures a ValueNoise.
type NoiseOption func(*noiseOptions)

type noiseOptions struct {
	octaves     int
	period      float64
	persistence float64
	lacunarity  float64
}

func defaultNoiseOptions() noiseOptions {
	return noiseOptions{octaves: 3, period: 64, persistence: 0.5, lacunarity: 2}
}

// WithOctaves sets the number of summed layers. Values below 1 are ignored.
func WithOctaves(n int) NoiseOption {
	return func(o *noiseOptions) {
		if n >= 1 {
			o.octaves = n
		}
	}
}

// WithPeriod sets the lattice spacing of the first octave. Non-positive
// values are ignored.
func WithPeriod(p float64) NoiseOption {
	return func(o *noiseOptions) {
		if p > 0 {
			o.period = p
		}
	}
}

// WithPersistence sets the amplitude ratio between successive octaves.
func WithPersistence(p float64) NoiseOption {
	return func(o *noiseOptions) { o.persistence = p }
}

// WithLacunarity sets the frequency ratio between successive octaves.
func WithLacunarity(l float64) NoiseOption {
	return func(o *noiseOptions) { o.lacunarity = l }
}

// ValueNoise is deterministic hashed lattice value noise summed over octaves
// and scaled to [-1, 1]. It is immutable and safe for concurrent use.
type ValueNoise struct {
	seed int64
	opts noiseOptions
}

// NewValueNoise returns a generator for seed.
func NewValueNoise(seed int64, opts ...NoiseOption) *ValueNoise {
	o := defaultNoiseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &ValueNoise{seed: seed, opts: o}
}

// Noise2D returns the noise value at (x, y).
func (n *ValueNoise) Noise2D(x, y float32) float32 {
	return n.octaves(func(f float64, seed int64) float64 {
		return valueNoise2D(float64(x)*f, float64(y)*f, seed)
	})
}

// Noise3D returns the noise value at (x, y, z).
func (n *ValueNoise) Noise3D(x, y, z float32) float32 {
	return n.octaves(func(f float64, seed int64) float64 {
		return valueNoise3D(float64(x)*f, float64(y)*f, float64(z)*f, seed)
	})
}

// Range2D is exact for a point and [-1, 1] otherwise.
func (n *ValueNoise) Range2D(x, y interval.Interval) interval.Interval {
	if x.IsPoint() && y.IsPoint() {
		return interval.Point(n.Noise2D(x.Min, y.Min))
	}

	return interval.New(-1, 1)
}

// Range3D is exact for a point and [-1, 1] otherwise.
func (n *ValueNoise) Range3D(x, y, z interval.Interval) interval.Interval {
	if x.IsPoint() && y.IsPoint() && z.IsPoint() {
		return interval.Point(n.Noise3D(x.Min, y.Min, z.Min))
	}

	return interval.New(-1, 1)
}

// octaves sums layer(frequency, seed) over the configured octaves and maps
// the normalized sum from [0, 1] to [-1, 1].
func (n *ValueNoise) octaves(layer func(f float64, seed int64) float64) float32 {
	amplitude, frequency := 1.0, 1/n.opts.period
	sum, norm := 0.0, 0.0
	for i := range n.opts.octaves {
		sum += layer(frequency, n.seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= n.opts.persistence
		frequency *= n.opts.lacunarity
	}
	if norm == 0 {
		return 0
	}
	v := 2*sum/norm - 1
	if !(v >= -1) {
		return -1
	}
	if v > 1 {
		return 1
	}

	return float32(v)
}

// fade is the quintic smoothing curve 6t⁵ - 15t⁴ + 10t³.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// lattice truncates a floored coordinate to an integer lattice index.
// Coordinates beyond the int64 range collapse to the range edges.
func lattice(v float64) int64 {
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	case math.IsNaN(v):
		return 0
	}

	return int64(v)
}

// hash3 is a SplitMix64 finalizer over the lattice coordinates.
func hash3(x, y, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB

	return v ^ (v >> 31)
}

// latticeValue maps a lattice point to [0, 1].
func latticeValue(x, y, z, seed int64) float64 {
	return float64(hash3(x, y, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, y float64, seed int64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := fade(clampUnit(x-x0)), fade(clampUnit(y-y0))
	ix, iy := lattice(x0), lattice(y0)

	v00 := latticeValue(ix, iy, 0, seed)
	v10 := latticeValue(ix+1, iy, 0, seed)
	v01 := latticeValue(ix, iy+1, 0, seed)
	v11 := latticeValue(ix+1, iy+1, 0, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
}

func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	fx, fy, fz := fade(clampUnit(x-x0)), fade(clampUnit(y-y0)), fade(clampUnit(z-z0))
	ix, iy, iz := lattice(x0), lattice(y0), lattice(z0)

	v000 := latticeValue(ix, iy, iz, seed)
	v100 := latticeValue(ix+1, iy, iz, seed)
	v010 := latticeValue(ix, iy+1, iz, seed)
	v110 := latticeValue(ix+1, iy+1, iz, seed)
	v001 := latticeValue(ix, iy, iz+1, seed)
	v101 := latticeValue(ix+1, iy, iz+1, seed)
	v011 := latticeValue(ix, iy+1, iz+1, seed)
	v111 := latticeValue(ix+1, iy+1, iz+1, seed)

	i0 := lerp(lerp(v000, v100, fx), lerp(v010, v110, fx), fy)
	i1 := lerp(lerp(v001, v101, fx), lerp(v011, v111, fx), fy)

	return lerp(i0, i1, fz)
}

// clampUnit keeps interpolation weights in [0, 1]; infinite coordinates
// produce NaN fractions.
func clampUnit(t float64) float64 {
	if !(t >= 0) {
		return 0
	}
	if t > 1 {
		return 1
	}

	return t
}
