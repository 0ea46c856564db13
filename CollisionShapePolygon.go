package gjk

/// A convex polygon. Vertices are stored in local space, in boundary order;
/// the distance query consumes GetTransformedVertices, which applies the
/// current transform. A single vertex is a valid (degenerate) polygon.

type PolygonShape struct {
	M_vertices []Vec2
	M_count    int
	M_xf       Transform
}

func MakePolygonShape() PolygonShape {
	return PolygonShape{
		M_vertices: make([]Vec2, 0),
		M_count:    0,
		M_xf:       MakeTransform(),
	}
}

func NewPolygonShape() *PolygonShape {
	res := MakePolygonShape()
	return &res
}

/// Create a convex polygon from boundary vertices. The vertex slice is
/// copied. Convexity is assumed, not verified.
func (poly *PolygonShape) Set(vertices []Vec2) {
	Assert(len(vertices) >= 1)

	poly.M_count = len(vertices)
	poly.M_vertices = make([]Vec2, len(vertices))
	copy(poly.M_vertices, vertices)
}

/// Build a box centered on the local origin with the given half-extents.
func (poly *PolygonShape) SetAsBox(hx float64, hy float64) {
	poly.M_count = 4
	poly.M_vertices = make([]Vec2, 4)
	poly.M_vertices[0].Set(-hx, -hy)
	poly.M_vertices[1].Set(hx, -hy)
	poly.M_vertices[2].Set(hx, hy)
	poly.M_vertices[3].Set(-hx, hy)
}

/// Place the polygon in the shared coordinate space.
func (poly *PolygonShape) SetTransform(position Vec2, anglerad float64) {
	poly.M_xf.Set(position, anglerad)
}

func (poly PolygonShape) GetVertexCount() int {
	return poly.M_count
}

func (poly *PolygonShape) GetVertex(index int) *Vec2 {
	Assert(0 <= index && index < poly.M_count)
	return &poly.M_vertices[index]
}

/// Get the vertices in the shared coordinate space, in boundary order.
/// The result is freshly allocated per call; the distance query computes
/// it once and reuses the slice for every iteration of one call.
func (poly PolygonShape) GetTransformedVertices() []Vec2 {
	vertices := make([]Vec2, poly.M_count)
	for i := 0; i < poly.M_count; i++ {
		vertices[i] = TransformVec2Mul(poly.M_xf, poly.M_vertices[i])
	}

	return vertices
}

/// Get the area-weighted center of the polygon in the shared coordinate
/// space. This only seeds the initial search direction of the distance
/// query; a poor center costs iterations, never correctness.
func (poly PolygonShape) GetAreaWeightedCenter() Vec2 {
	return ComputeAreaWeightedCenter(poly.GetTransformedVertices())
}

/// Compute the area-weighted centroid of a vertex set by triangle-fan
/// decomposition around the simple vertex average.
func ComputeAreaWeightedCenter(vs []Vec2) Vec2 {
	count := len(vs)
	Assert(count >= 1)

	if count == 1 {
		return vs[0]
	}

	// pRef is the reference point for forming triangles.
	// Its location doesn't change the result (except for rounding error).
	pRef := MakeVec2(0.0, 0.0)
	for i := 0; i < count; i++ {
		pRef.OperatorPlusInplace(vs[i])
	}
	pRef.OperatorScalarMulInplace(1.0 / float64(count))

	c := MakeVec2(0, 0)
	area := 0.0

	inv3 := 1.0 / 3.0

	for i := 0; i < count; i++ {
		// Triangle vertices, relative to the reference point.
		p1 := Vec2Sub(vs[i], pRef)

		var p2 Vec2
		if i+1 < count {
			p2 = Vec2Sub(vs[i+1], pRef)
		} else {
			p2 = Vec2Sub(vs[0], pRef)
		}

		triangleArea := 0.5 * Vec2Cross(p1, p2)
		area += triangleArea

		// Area-weighted centroid of the triangle (its third vertex is pRef).
		c.OperatorPlusInplace(Vec2MulScalar(triangleArea*inv3, Vec2Add(p1, p2)))
	}

	if FloatIsZero(area, GJK_tolerance) {
		// Zero area can only happen when all the vertices coincide (or the
		// boundary is a degenerate segment); the first vertex stands in.
		return vs[0]
	}

	c.OperatorScalarMulInplace(1.0 / area)
	c.OperatorPlusInplace(pRef)

	return c
}
