package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/delaunay/internal/geom"
)

// Helper to check that a triangulation is a valid Delaunay triangulation. The
// rules are:
// 1. The mesh and history are consistent.
// 2. Every triangle is clockwise, and so has nonzero area.
// 3. There are 2n-h-2 triangles and 3n-h-3 edges, where h is the number of
//    points on the convex hull boundary. So the triangles cover the hull.
// 4. No input point is strictly inside the circumcircle of any triangle.
//
// Fully collinear inputs have no triangles, so they don't belong here.
func AssertValidDelaunay(t *testing.T, tri *Triangulation) {
	require.NoError(t, tri.CheckConsistency())

	points := tri.Points()
	triangles := tri.Triangles()
	for _, triangle := range triangles {
		a, b, c := points[triangle[0]], points[triangle[1]], points[triangle[2]]
		require.Equal(t, -1, geom.Orientation(a, b, c), "triangle %v is not clockwise", triangle)
	}

	n, h := len(points), len(convexHullBoundary(points))
	assert.Len(t, triangles, 2*n-h-2, "triangle count")
	assert.Len(t, tri.Edges(), 3*n-h-3, "edge count")

	for _, triangle := range triangles {
		a, b, c := points[triangle[0]], points[triangle[1]], points[triangle[2]]
		for i, p := range points {
			if i == triangle[0] || i == triangle[1] || i == triangle[2] {
				continue
			}
			assert.False(t, geom.InCircle(a, b, c, p), "point %d is inside the circumcircle of %v", i, triangle)
		}
	}
	assert.Empty(t, tri.IllegalEdges())
}

// The points on the boundary of the convex hull, including those in the middle
// of a hull edge. Monotone chain, keeping collinear points.
func convexHullBoundary(points []Point) []Point {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	cross := func(o, a, b Point) float64 {
		return a.Sub(o).Cross(b.Sub(o))
	}
	buildChain := func(points []Point) []Point {
		var chain []Point
		for _, p := range points {
			for len(chain) >= 2 && cross(chain[len(chain)-2], chain[len(chain)-1], p) < 0 {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain
	}

	lower := buildChain(sorted)
	reversed := make([]Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	upper := buildChain(reversed)
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
