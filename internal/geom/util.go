package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

type Point = r2.Point

// The input point set. Vertex ids index into it.
type Points []Point

// The coordinates of a finite vertex. Sentinels have no coordinates, so asking
// for one is a bug.
func (ps Points) At(v VertexID) Point {
	if !v.IsFinite() {
		panicNoCoordinates(v)
	}
	return ps[v.Index]
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a slightly
// rotated coordinate system, and is also the order along the near horizontal
// lines through the sentinels. Returns -1, 0 or 1.
//
// There is no tolerance: ties only happen for identical points, which the
// algorithm must notice.
func CompareYX(p, q Point) int {
	switch {
	case p.Y > q.Y:
		return 1
	case p.Y < q.Y:
		return -1
	case p.X > q.X:
		return 1
	case p.X < q.X:
		return -1
	}
	return 0
}

// Index of the largest point under CompareYX. The first one wins ties.
func LargestPoint(points []Point) int {
	largest := 0
	for i := 1; i < len(points); i++ {
		if CompareYX(points[i], points[largest]) > 0 {
			largest = i
		}
	}
	return largest
}

func IsFinitePoint(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
