// Delaunay triangulation of a planar point set for Go.
//
// Points are inserted in random order into a triangulation that starts as one
// huge triangle around the input, and illegal edges are flipped after every
// insertion. Expected running time is O(n log n).
//
// The input must be arranged so that point 0 is the largest point in y, then
// x, order. MoveLargestFirst does that for you. See the advanced package for
// logging, statistics, point location and access to the underlying mesh.
package delaunay

import (
	"math/rand"

	"github.com/osuushi/delaunay/advanced"
)

type Point = advanced.Point
type Triangle = advanced.Triangle
type Edge = advanced.Edge
type Triangulation = advanced.Triangulation
type Option = advanced.Option

var (
	ErrPreconditionViolation      = advanced.ErrPreconditionViolation
	ErrDegenerateInput            = advanced.ErrDegenerateInput
	ErrInternalInvariantViolation = advanced.ErrInternalInvariantViolation
)

var (
	WithLogger            = advanced.WithLogger
	WithConsistencyChecks = advanced.WithConsistencyChecks
)

// Triangulate the points and return the triangles, each as clockwise indices
// into points. The seed picks the insertion order; for points in general
// position every seed gives the same triangles.
//
// Point 0 must be the unique largest point (see MoveLargestFirst) and no two
// points may coincide.
func Triangulate(points []Point, seed int64) ([]Triangle, error) {
	triangulation, err := New(points, seed)
	if err != nil {
		return nil, err
	}
	return triangulation.Triangles(), nil
}

// Build the full triangulation, for callers that also want edges, neighbors or
// point location.
func New(points []Point, seed int64, opts ...Option) (*Triangulation, error) {
	return advanced.NewTriangulation(points, rand.New(rand.NewSource(seed)), opts...)
}

// Swap the largest point in y, then x, order to index 0 and return the index
// it came from.
func MoveLargestFirst(points []Point) int {
	return advanced.MoveLargestFirst(points)
}

func CompareYX(p, q Point) int {
	return advanced.CompareYX(p, q)
}
