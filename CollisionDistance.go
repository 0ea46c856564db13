package gjk

import (
	"math"
	"sync/atomic"
)

/// Minimum distance between two convex polygons, computed with the
/// two-point (segment) distance variant of GJK on the Minkowski
/// difference of the shapes. Because the goal is strictly the minimum
/// distance to an external origin, the closest feature of the convex
/// difference is always a vertex or an edge; the full triangle simplex
/// is never needed.

/// Result state for a distance query. The plain float contract maps both
/// Touching and Unresolved to 0; the state tells them apart.
type DistanceState uint8

const (
	DistanceStateSeparated DistanceState = iota
	DistanceStateTouching
	DistanceStateUnresolved
)

func (s DistanceState) String() string {
	switch s {
	case DistanceStateSeparated:
		return "separated"
	case DistanceStateTouching:
		return "touching"
	case DistanceStateUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

/// Tuning for one distance query. Zero values are not meaningful; use
/// MakeDistanceParams for the defaults.
type DistanceParams struct {
	Tolerance     float64
	MaxIterations int
}

func MakeDistanceParams() DistanceParams {
	return DistanceParams{
		Tolerance:     GJK_tolerance,
		MaxIterations: GJK_maxIterations,
	}
}

/// Output for a distance query.
type DistanceOutput struct {
	Distance   float64
	State      DistanceState
	Iterations int ///< number of support-point refinements used
}

func MakeDistanceOutput() DistanceOutput {
	return DistanceOutput{
		Distance:   0,
		State:      DistanceStateUnresolved,
		Iterations: 0,
	}
}

// Query statistics. Atomics, so that independent queries may run
// concurrently.
var gjkCalls, gjkIters, gjkMaxIters int64

func GjkCalls() int64    { return atomic.LoadInt64(&gjkCalls) }
func GjkIters() int64    { return atomic.LoadInt64(&gjkIters) }
func GjkMaxIters() int64 { return atomic.LoadInt64(&gjkMaxIters) }

/// The vertex of the shape farthest along direction d. Linear scan with a
/// strict comparison: the first maximal vertex in boundary order wins, so
/// ties on degenerate or symmetric shapes resolve by enumeration order.
/// The magnitude of d does not affect the result.
func FarthestPointInDirection(vertices []Vec2, d Vec2) Vec2 {
	Assert(len(vertices) >= 1)

	bestIndex := 0
	bestValue := Vec2Dot(vertices[0], d)
	for i := 1; i < len(vertices); i++ {
		value := Vec2Dot(vertices[i], d)
		if value > bestValue {
			bestIndex = i
			bestValue = value
		}
	}

	return vertices[bestIndex]
}

/// The support point of the Minkowski difference A - B along direction d:
/// farthest(A, d) - farthest(B, -d). The caller's direction vector is
/// never modified; the negated direction is a copy.
func Support(vertsA []Vec2, vertsB []Vec2, d Vec2) Vec2 {
	pointA := FarthestPointInDirection(vertsA, d)
	pointB := FarthestPointInDirection(vertsB, d.OperatorNegate())

	return Vec2Sub(pointA, pointB)
}

/// The point on the closed segment [a, b] nearest the origin. Non-finite
/// input is a programming error. A degenerate segment yields a.
func ClosestPointOnSegmentToOrigin(a, b Vec2) Vec2 {
	return closestOnSegmentToOrigin(a, b, GJK_tolerance)
}

func closestOnSegmentToOrigin(a, b Vec2, tolerance float64) Vec2 {
	Assert(a.IsValid() && b.IsValid())

	lineAB := Vec2Sub(b, a)

	ab2 := Vec2Dot(lineAB, lineAB)
	if FloatIsZero(ab2, tolerance) {
		return a
	}

	// Project the origin onto the infinite line a + t*(b-a), then clamp t
	// onto the segment.
	aToOrigin := a.OperatorNegate()
	t := Vec2Dot(aToOrigin, lineAB) / ab2
	t = FloatClamp(t, 0.0, 1.0)

	return Vec2Add(a, Vec2MulScalar(t, lineAB))
}

/// Minimum distance between two convex polygons. Returns 0 for touching or
/// overlapping shapes, and also when no separation could be established
/// within the iteration budget; use DistanceConvexPolygons to tell those
/// apart.
func Distance(polyA, polyB *PolygonShape) float64 {
	output := MakeDistanceOutput()
	DistanceConvexPolygons(&output, polyA, polyB, MakeDistanceParams())
	return output.Distance
}

func DistanceConvexPolygons(output *DistanceOutput, polyA *PolygonShape, polyB *PolygonShape, params DistanceParams) {
	DistanceVertices(output, polyA.GetTransformedVertices(), polyB.GetTransformedVertices(), params)
}

/// The core query, over vertex positions already in the shared coordinate
/// space. All working state is local to the call.
func DistanceVertices(output *DistanceOutput, vertsA []Vec2, vertsB []Vec2, params DistanceParams) {
	atomic.AddInt64(&gjkCalls, 1)

	// Seed the search with the direction between the visual centers.
	centerA := ComputeAreaWeightedCenter(vertsA)
	centerB := ComputeAreaWeightedCenter(vertsB)
	d := Vec2Sub(centerB, centerA)

	a := Support(vertsA, vertsB, d)
	b := Support(vertsA, vertsB, d.OperatorNegate())

	iter := 0
	for iter < params.MaxIterations {
		p := closestOnSegmentToOrigin(a, b, params.Tolerance)

		if p.IsZero() {
			// The origin is on the Minkowski difference: the shapes touch
			// or overlap.
			output.Distance = 0.0
			output.State = DistanceStateTouching
			output.Iterations = iter
			updateMaxIters(iter)
			return
		}

		// The direction from the closest point toward the origin. Normalized
		// because the projections below are compared along it.
		d = p.OperatorNegate()
		d.Normalize()

		c := Support(vertsA, vertsB, d)

		iter++
		atomic.AddInt64(&gjkIters, 1)

		// Is the new support point making progress toward the origin?
		dc := Vec2Dot(c, d)
		da := Vec2Dot(a, d)

		if math.Abs(dc-da) < params.Tolerance {
			// No further progress is achievable along d. The whole
			// difference lies on the far side of the origin, so the support
			// projection -dc is the separation.
			output.Distance = math.Max(-dc, 0.0)
			output.State = DistanceStateSeparated
			output.Iterations = iter
			updateMaxIters(iter)
			return
		}

		// c is closer than one of a/b; drop whichever of the pair lies
		// farther from the origin so the segment keeps bracketing the
		// closest feature.
		if Vec2DistanceSquared(a, Vec2_zero) < Vec2DistanceSquared(b, Vec2_zero) {
			b = c
		} else {
			a = c
		}
	}

	updateMaxIters(iter)

	// Budget exhausted without convergence. Reported as 0, like a contact;
	// only the state distinguishes the two.
	output.Distance = 0.0
	output.State = DistanceStateUnresolved
	output.Iterations = iter
}

func updateMaxIters(iter int) {
	for {
		cur := atomic.LoadInt64(&gjkMaxIters)
		if int64(iter) <= cur {
			return
		}
		if atomic.CompareAndSwapInt64(&gjkMaxIters, cur, int64(iter)) {
			return
		}
	}
}
