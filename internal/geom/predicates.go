package geom

import "github.com/osuushi/delaunay/internal/throw"

// All predicates use plain float64 arithmetic. There is no perturbation or
// exact arithmetic, so coincident or collinear inputs can produce ties that the
// callers must treat as degenerate.

// Returns 1 if p0, p1, p2 turn counterclockwise (+z), -1 if they turn clockwise
// (-z) and 0 if they are collinear. This is the sign of (p1-p0) x (p2-p1).
//
// Every call site depends on this argument order; triangles in the mesh are
// clockwise, so "inside" is always -1.
func Orientation(p0, p1, p2 Point) int {
	return sign(p1.Sub(p0).Cross(p2.Sub(p1)))
}

// Reports whether p3 lies strictly inside the circle through p0, p1, p2. The
// first three points must be clockwise.
//
// This is the sign of the determinant
//
//	| x0 y0 x0²+y0² 1 |
//	| x1 y1 x1²+y1² 1 |
//	| x2 y2 x2²+y2² 1 |
//	| x3 y3 x3²+y3² 1 |
//
// For a clockwise p0, p1, p2 a NEGATIVE determinant means inside. Some
// textbooks state the opposite sign for clockwise input; that is wrong. See
// TestInCircle for the pinned scenario.
func InCircle(p0, p1, p2, p3 Point) bool {
	if Orientation(p0, p1, p2) != -1 {
		throw.Invariantf("in-circle test needs a clockwise triangle, got %v %v %v", p0, p1, p2)
	}
	return InCircleDeterminant(p0, p1, p2, p3) < 0
}

// The 4x4 in-circle determinant. Subtracting the last row from the others
// leaves a single nonzero entry in the column of ones, so the determinant
// reduces to a 3x3 one over coordinates relative to p3.
func InCircleDeterminant(p0, p1, p2, p3 Point) float64 {
	var m [3][3]float64
	for i, p := range [3]Point{p0, p1, p2} {
		d := p.Sub(p3)
		m[i] = [3]float64{d.X, d.Y, p.Dot(p) - p3.Dot(p3)}
	}
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[0][1]*(m[1][0]*m[2][2]-m[2][0]*m[1][2]) +
		m[0][2]*(m[1][0]*m[2][1]-m[2][0]*m[1][1])
}

// Orientation of a, b, c where any of them may be a sentinel.
//
// Ordinary cross products are meaningless for points at infinity. Instead, the
// line through a finite point q and either sentinel is treated as horizontal,
// tilted just enough that positions along it follow CompareYX. For the
// sentinel models described on VertexKind:
//
//	(UpperLeft, q, r) is clockwise iff r is below q
//	(Right, q, r)     is clockwise iff r is above q
//	(UpperLeft, Right, q) is counterclockwise, since the line from UpperLeft
//	to Right passes below every finite point
//	(Right, UpperLeft, q) is therefore clockwise
//
// Orientation is invariant under rotation, so every other placement reduces to
// one of these.
func (ps Points) Orient(a, b, c VertexID) int {
	switch {
	case c.IsFinite():
		return ps.OrientPoint(a, b, ps.At(c))
	case a.IsFinite():
		return ps.OrientPoint(b, c, ps.At(a))
	case b.IsFinite():
		return ps.OrientPoint(c, a, ps.At(b))
	}
	throw.Invariantf("orientation of %v %v %v has no finite vertex", a, b, c)
	return 0
}

// Orientation of a, b, p where a and b may be sentinels and p is a real
// point. This is the form point location needs, since the point being located
// is not (yet) a vertex.
func (ps Points) OrientPoint(a, b VertexID, p Point) int {
	switch {
	case a.IsFinite() && b.IsFinite():
		return Orientation(ps.At(a), ps.At(b), p)
	case b.IsFinite():
		return sentinelOrientation(a, ps.At(b), p)
	case a.IsFinite():
		// (a, S, p) rotates to (S, p, a)
		return sentinelOrientation(b, p, ps.At(a))
	case a == UpperLeft && b == Right:
		return 1
	case a == Right && b == UpperLeft:
		return -1
	}
	throw.Invariantf("orientation of repeated sentinel %v", a)
	return 0
}

// Orientation of (s, q, r) for a sentinel s.
func sentinelOrientation(s VertexID, q, r Point) int {
	switch s.Kind {
	case UpperLeftKind:
		return CompareYX(r, q)
	case RightKind:
		return CompareYX(q, r)
	}
	throw.Invariantf("%v is not a sentinel", s)
	return 0
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func panicNoCoordinates(v VertexID) {
	throw.Invariantf("sentinel %v has no coordinates", v)
}
