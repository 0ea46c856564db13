package gjk

import "math"

func Assert(a bool) {
	if !a {
		panic("Assert")
	}
}

const MaxFloat = math.MaxFloat64
const Epsilon = math.SmallestNonzeroFloat64

/// @file
/// Tuning constants for the distance query. Both values are policy, not
/// algorithm: they may be overridden per call through DistanceParams.

/// A small length used for every "is this effectively zero" decision:
/// degenerate segments, degenerate polygon areas, and the convergence
/// delta of the distance iteration. Chosen to be numerically significant
/// but visually insignificant for unit-scale shapes.
const GJK_tolerance = 0.0001

/// The maximum number of refinement iterations per distance query.
/// Exhausting the budget yields a distance of 0 rather than an error.
const GJK_maxIterations = 30
