// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Interval is a closed bound [Min, Max]. The zero value is the point 0.
type Interval struct {
	Min float32
	Max float32
}

// New returns [min, max]. Reversed bounds are a programmer error and panic.
func New(min, max float32) Interval {
	if min > max {
		panic(fmt.Sprintf("interval: min %v > max %v", min, max))
	}

	return Interval{Min: min, Max: max}
}

// Point returns the degenerate interval [v, v].
func Point(v float32) Interval {
	return Interval{Min: v, Max: v}
}

// Unbounded returns (-Inf, +Inf).
func Unbounded() Interval {
	return Interval{Min: math32.Inf(-1), Max: math32.Inf(1)}
}

// Hull returns the smallest interval containing every value in vs.
// With no values it returns Unbounded.
func Hull(vs ...float32) Interval {
	if len(vs) == 0 {
		return Unbounded()
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return bounds(lo, hi)
}

// bounds builds an interval from computed endpoints. A NaN endpoint means
// the operation could not be bounded, so the result widens to Unbounded.
func bounds(lo, hi float32) Interval {
	if math32.IsNaN(lo) || math32.IsNaN(hi) {
		return Unbounded()
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return Interval{Min: lo, Max: hi}
}

// IsPoint reports whether the interval holds a single value.
func (i Interval) IsPoint() bool { return i.Min == i.Max }

// IsUnbounded reports whether either endpoint is infinite.
func (i Interval) IsUnbounded() bool {
	return math32.IsInf(i.Min, 0) || math32.IsInf(i.Max, 0)
}

// Contains reports whether v lies in [Min, Max].
func (i Interval) Contains(v float32) bool { return v >= i.Min && v <= i.Max }

// ContainsInterval reports whether o is a subset of i.
func (i Interval) ContainsInterval(o Interval) bool { return o.Min >= i.Min && o.Max <= i.Max }

// Width returns Max - Min.
func (i Interval) Width() float32 { return i.Max - i.Min }

// Union returns the hull of i and o.
func (i Interval) Union(o Interval) Interval {
	return Interval{Min: math32.Min(i.Min, o.Min), Max: math32.Max(i.Max, o.Max)}
}

// String implements fmt.Stringer.
func (i Interval) String() string { return fmt.Sprintf("[%g, %g]", i.Min, i.Max) }

// Add returns i + o.
func (i Interval) Add(o Interval) Interval {
	return bounds(i.Min+o.Min, i.Max+o.Max)
}

// Sub returns i - o.
func (i Interval) Sub(o Interval) Interval {
	return bounds(i.Min-o.Max, i.Max-o.Min)
}

// Neg returns -i.
func (i Interval) Neg() Interval {
	return Interval{Min: -i.Max, Max: -i.Min}
}

// Mul returns i * o.
func (i Interval) Mul(o Interval) Interval {
	a := mulEnd(i.Min, o.Min)
	b := mulEnd(i.Min, o.Max)
	c := mulEnd(i.Max, o.Min)
	d := mulEnd(i.Max, o.Max)

	return bounds(min4(a, b, c, d), max4(a, b, c, d))
}

// Div returns i / o with the x/0 = 0 convention: a point zero divisor yields
// the point 0, a divisor straddling zero yields Unbounded.
func (i Interval) Div(o Interval) Interval {
	if o.Min == 0 && o.Max == 0 {
		return Point(0)
	}
	if o.Min <= 0 && o.Max >= 0 {
		return Unbounded()
	}
	a := divEnd(i.Min, o.Min)
	b := divEnd(i.Min, o.Max)
	c := divEnd(i.Max, o.Min)
	d := divEnd(i.Max, o.Max)

	return bounds(min4(a, b, c, d), max4(a, b, c, d))
}

// AddScalar returns i + v.
func (i Interval) AddScalar(v float32) Interval { return i.Add(Point(v)) }

// SubScalar returns i - v.
func (i Interval) SubScalar(v float32) Interval { return i.Sub(Point(v)) }

// MulScalar returns i * v.
func (i Interval) MulScalar(v float32) Interval { return i.Mul(Point(v)) }

// mulEnd multiplies endpoints treating 0 * Inf as 0: infinite endpoints stand
// for unbounded finite values, and zero times any finite value is zero.
func mulEnd(a, b float32) float32 {
	if a == 0 || b == 0 {
		return 0
	}

	return a * b
}

// divEnd divides endpoints; Inf / Inf has no meaningful bound and yields NaN,
// which bounds() widens to Unbounded.
func divEnd(a, b float32) float32 {
	return a / b
}

func min4(a, b, c, d float32) float32 {
	return math32.Min(math32.Min(a, b), math32.Min(c, d))
}

func max4(a, b, c, d float32) float32 {
	return math32.Max(math32.Max(a, b), math32.Max(c, d))
}
