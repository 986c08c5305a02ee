// SPDX-License-Identifier: MIT

package resource

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/voxgraph/interval"
)

// ValueWarp displaces each coordinate by Amplitude times an independent
// ValueNoise channel.
type ValueWarp struct {
	amplitude float32
	channels  [3]*ValueNoise
}

// NewValueWarp returns a warp whose displacement never exceeds |amplitude|.
func NewValueWarp(seed int64, amplitude float32, opts ...NoiseOption) *ValueWarp {
	w := &ValueWarp{amplitude: amplitude}
	for i := range w.channels {
		w.channels[i] = NewValueNoise(seed+int64(i)*7919, opts...)
	}

	return w
}

// Amplitude returns the maximum displacement.
func (w *ValueWarp) Amplitude() float32 { return w.amplitude }

// Warp2D displaces (x, y).
func (w *ValueWarp) Warp2D(x, y float32) (float32, float32) {
	dx := w.channels[0].Noise2D(x, y)
	dy := w.channels[1].Noise2D(x, y)

	return x + w.amplitude*dx, y + w.amplitude*dy
}

// Warp3D displaces (x, y, z).
func (w *ValueWarp) Warp3D(x, y, z float32) (float32, float32, float32) {
	dx := w.channels[0].Noise3D(x, y, z)
	dy := w.channels[1].Noise3D(x, y, z)
	dz := w.channels[2].Noise3D(x, y, z)

	return x + w.amplitude*dx, y + w.amplitude*dy, z + w.amplitude*dz
}

// WarpRange2D widens each input interval by the amplitude.
func (w *ValueWarp) WarpRange2D(x, y interval.Interval) (interval.Interval, interval.Interval) {
	if x.IsPoint() && y.IsPoint() {
		wx, wy := w.Warp2D(x.Min, y.Min)
		return interval.Point(wx), interval.Point(wy)
	}

	return w.widen(x), w.widen(y)
}

// WarpRange3D widens each input interval by the amplitude.
func (w *ValueWarp) WarpRange3D(x, y, z interval.Interval) (interval.Interval, interval.Interval, interval.Interval) {
	if x.IsPoint() && y.IsPoint() && z.IsPoint() {
		wx, wy, wz := w.Warp3D(x.Min, y.Min, z.Min)
		return interval.Point(wx), interval.Point(wy), interval.Point(wz)
	}

	return w.widen(x), w.widen(y), w.widen(z)
}

func (w *ValueWarp) widen(v interval.Interval) interval.Interval {
	a := math32.Abs(w.amplitude)

	return interval.Interval{Min: v.Min - a, Max: v.Max + a}
}
