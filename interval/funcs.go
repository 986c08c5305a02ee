// SPDX-License-Identifier: MIT

package interval

import (
	"math"

	"github.com/chewxy/math32"
)

// Min returns the elementwise minimum of a and b.
func Min(a, b Interval) Interval {
	return Interval{Min: math32.Min(a.Min, b.Min), Max: math32.Min(a.Max, b.Max)}
}

// Max returns the elementwise maximum of a and b.
func Max(a, b Interval) Interval {
	return Interval{Min: math32.Max(a.Min, b.Min), Max: math32.Max(a.Max, b.Max)}
}

// Abs returns |a|.
func Abs(a Interval) Interval {
	switch {
	case a.Min >= 0:
		return a
	case a.Max <= 0:
		return a.Neg()
	default:
		return Interval{Min: 0, Max: math32.Max(-a.Min, a.Max)}
	}
}

// Square returns a*a, tighter than a.Mul(a) because both factors are the same value.
func Square(a Interval) Interval {
	lo, hi := a.Min*a.Min, a.Max*a.Max
	switch {
	case a.Min >= 0:
		return Interval{Min: lo, Max: hi}
	case a.Max <= 0:
		return Interval{Min: hi, Max: lo}
	default:
		return Interval{Min: 0, Max: math32.Max(lo, hi)}
	}
}

// Sqrt returns sqrt(max(a, 0)).
func Sqrt(a Interval) Interval {
	return bounds(SqrtValue(a.Min), SqrtValue(a.Max))
}

// Floor returns floor(a).
func Floor(a Interval) Interval {
	return bounds(math32.Floor(a.Min), math32.Floor(a.Max))
}

// Fract returns a - floor(a). The bound is exact while a stays within one
// integer cell and [0, 1] otherwise.
func Fract(a Interval) Interval {
	f0 := math32.Floor(a.Min)
	f1 := math32.Floor(a.Max)
	if f0 == f1 && !a.IsUnbounded() {
		return bounds(a.Min-f0, a.Max-f0)
	}

	return Interval{Min: 0, Max: 1}
}

// Sin returns sin(a).
func Sin(a Interval) Interval {
	if a.IsUnbounded() || float64(a.Max)-float64(a.Min) >= 2*math.Pi {
		return Interval{Min: -1, Max: 1}
	}
	s0 := math32.Sin(a.Min)
	s1 := math32.Sin(a.Max)
	lo, hi := math32.Min(s0, s1), math32.Max(s0, s1)
	if containsPhase(a, math.Pi/2) {
		hi = 1
	}
	if containsPhase(a, -math.Pi/2) {
		lo = -1
	}

	return bounds(lo, hi)
}

// containsPhase reports whether phase + 2kπ lies in a for some integer k.
// Computed in float64 so large arguments do not lose the phase.
func containsPhase(a Interval, phase float64) bool {
	const tau = 2 * math.Pi
	k := math.Ceil((float64(a.Min) - phase) / tau)

	return phase+k*tau <= float64(a.Max)
}

// Atan2 returns the range of atan2(y, x).
//
// atan2 is discontinuous across the negative x axis, where it jumps between
// +π and -π. When the box straddles that branch cut the angles form two
// disjoint pieces: the returned primary interval covers the y >= 0 part and,
// with ok == true, secondary covers the y < 0 part. Callers that map angles
// through a non-periodic function must evaluate both pieces and union them.
func Atan2(y, x Interval) (primary, secondary Interval, ok bool) {
	xZero := x.Contains(0)
	yZero := y.Contains(0)

	switch {
	case xZero && yZero:
		// The box touches the origin: every angle is possible.
		return Interval{Min: -math32.Pi, Max: math32.Pi}, Interval{}, false

	case !xZero && !yZero:
		// Inside one open quadrant atan2 is monotone in both arguments.
		a := math32.Atan2(y.Min, x.Min)
		b := math32.Atan2(y.Min, x.Max)
		c := math32.Atan2(y.Max, x.Min)
		d := math32.Atan2(y.Max, x.Max)
		return bounds(min4(a, b, c, d), max4(a, b, c, d)), Interval{}, false

	case xZero:
		if y.Min > 0 {
			// Upper half plane.
			return bounds(math32.Atan2(y.Min, x.Max), math32.Atan2(y.Min, x.Min)), Interval{}, false
		}
		// Lower half plane.
		return bounds(math32.Atan2(y.Max, x.Min), math32.Atan2(y.Max, x.Max)), Interval{}, false

	case x.Min > 0:
		// Right half plane: no discontinuity.
		return bounds(math32.Atan2(y.Min, x.Min), math32.Atan2(y.Max, x.Min)), Interval{}, false

	default:
		// Left half plane straddling the branch cut.
		primary = bounds(math32.Atan2(math32.Max(y.Max, 0), x.Max), math32.Pi)
		lower := float32(-math32.Pi)
		if y.Min < 0 {
			lower = math32.Atan2(y.Min, x.Max)
		}
		secondary = bounds(-math32.Pi, lower)
		return primary, secondary, true
	}
}

// Clamp returns min(max(a, lo), hi), matching ClampValue.
func Clamp(a, lo, hi Interval) Interval {
	return Min(Max(a, lo), hi)
}

// Lerp returns a + t*(b-a), matching LerpValue.
func Lerp(a, b, t Interval) Interval {
	return a.Add(t.Mul(b.Sub(a)))
}

// Smoothstep returns SmoothstepValue(edge0, edge1, x) over x. The function is
// monotone in x, so the endpoints bound it.
func Smoothstep(edge0, edge1 float32, x Interval) Interval {
	return Hull(SmoothstepValue(edge0, edge1, x.Min), SmoothstepValue(edge0, edge1, x.Max))
}

// Stepify returns StepifyValue over a and step. With a constant step the
// function is monotone in a; otherwise the result is within |step|/2 of a,
// widened to a full |step| to absorb rounding.
func Stepify(a, step Interval) Interval {
	if step.IsPoint() {
		s := step.Min
		return Hull(StepifyValue(a.Min, s), StepifyValue(a.Max, s))
	}
	m := math32.Max(math32.Abs(step.Min), math32.Abs(step.Max))

	return bounds(a.Min-m, a.Max+m)
}

// Wrapf returns WrapfValue over a and length. The bound is exact when a
// stays within one period of a constant length; otherwise it is the full
// period range, including 0 for zero lengths.
func Wrapf(a, length Interval) Interval {
	if length.IsPoint() && length.Min != 0 && !a.IsUnbounded() {
		l := length.Min
		f0 := math32.Floor(a.Min / l)
		f1 := math32.Floor(a.Max / l)
		if f0 == f1 {
			return bounds(a.Min-l*f0, a.Max-l*f0)
		}
	}

	return Interval{Min: math32.Min(length.Min, 0), Max: math32.Max(length.Max, 0)}
}

// Select mirrors SelectValue: a when t < threshold, b otherwise. When the
// intervals prove one branch is always taken, that branch's interval is
// returned exactly; otherwise the hull of both.
func Select(a, b, threshold, t Interval) Interval {
	if t.Max < threshold.Min {
		return a
	}
	if t.Min >= threshold.Max {
		return b
	}

	return a.Union(b)
}

// Skew3 returns Skew3Value over a. The function is increasing.
func Skew3(a Interval) Interval {
	return bounds(Skew3Value(a.Min), Skew3Value(a.Max))
}

// Length2 returns sqrt(x² + y²).
func Length2(x, y Interval) Interval {
	return Sqrt(Square(x).Add(Square(y)))
}

// Length3 returns sqrt(x² + y² + z²).
func Length3(x, y, z Interval) Interval {
	return Sqrt(Square(x).Add(Square(y)).Add(Square(z)))
}
