// Package interval implements conservative [Min, Max] arithmetic over float32.
//
// What:
//
//   - Interval: a closed bound over the reals, with a single-value (point)
//     case and an unbounded (-Inf, +Inf) case.
//   - Operators: Add, Sub, Mul, Div, Neg and scalar variants; Min, Max, Abs,
//     Square, Sqrt, Floor, Fract, Sin, Atan2 (with branch-cut wrap), Clamp,
//     Lerp, Smoothstep, Stepify, Wrapf, Select, Skew3, Length2, Length3.
//
// Soundness:
//
//	Every operator returns an interval containing every value the matching
//	scalar computation can produce for operands drawn from the inputs. Where
//	the scalar form is monotone the bound is computed by applying the same
//	float32 operations to the endpoints, so rounding agrees on both sides.
//	Operations that cannot be bounded (NaN endpoints, division by an interval
//	straddling zero) degrade to Unbounded, which is always sound.
//
// Scalar conventions shared with the buffer kernels:
//
//   - division by zero yields 0
//   - Clamp(x, lo, hi) = min(max(x, lo), hi)
//   - Smoothstep with equal edges is a step at the edge
//
// Complexity: every operator is O(1).
package interval
