package advanced

import (
	"github.com/osuushi/delaunay/internal/geom"
	"github.com/osuushi/delaunay/internal/throw"
)

type Point = geom.Point

// A finite triangle as indices into the input points, in clockwise order
// starting from the smallest index.
type Triangle [3]int

// An undirected edge between two input points, smaller index first.
type Edge [2]int

// Vertex ids and triangles as the mesh sees them, sentinels included.
type VertexID = geom.VertexID
type MeshTriangle = geom.Triangle

var (
	UpperLeft = geom.UpperLeft
	Right     = geom.Right
)

var (
	ErrPreconditionViolation      = throw.ErrPreconditionViolation
	ErrDegenerateInput            = throw.ErrDegenerateInput
	ErrInternalInvariantViolation = throw.ErrInternalInvariantViolation
)

// The y-then-x order used throughout: points with equal y are ordered by x.
// Returns -1, 0 or 1.
func CompareYX(p, q Point) int {
	return geom.CompareYX(p, q)
}

// Swap the largest point under CompareYX to index 0, as NewTriangulation
// requires, and return the index it came from. The caller owns the reordering:
// results refer to positions in the modified slice.
func MoveLargestFirst(points []Point) int {
	if len(points) == 0 {
		return -1
	}
	largest := geom.LargestPoint(points)
	points[0], points[largest] = points[largest], points[0]
	return largest
}
