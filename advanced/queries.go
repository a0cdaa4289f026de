package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/osuushi/delaunay/internal/dcel"
	"github.com/osuushi/delaunay/internal/geom"
	"github.com/osuushi/delaunay/internal/history"
	"github.com/osuushi/delaunay/internal/throw"
)

func (t *Triangulation) Points() []Point {
	return append([]Point(nil), t.points...)
}

func (t *Triangulation) Stats() Stats {
	return t.stats
}

// The underlying structures, for callers that need more than triangles. They
// must not be modified.
func (t *Triangulation) Mesh() *dcel.Mesh {
	return t.mesh
}

func (t *Triangulation) History() *history.History {
	return t.history
}

// The finite triangles, each once, in clockwise order starting from the
// smallest index, sorted.
func (t *Triangulation) Triangles() []Triangle {
	var result []Triangle
	for _, tri := range t.mesh.Triangles() {
		result = append(result, Triangle(tri.Indices()))
	}
	return result
}

// The finite edges, each once, sorted.
func (t *Triangulation) Edges() []Edge {
	var result []Edge
	for _, e := range t.mesh.FiniteEdges() {
		result = append(result, Edge(e))
	}
	return result
}

// The input points adjacent to point i, in clockwise order around it. Nil if i
// is out of range.
func (t *Triangulation) Neighbors(i int) []int {
	if i < 0 || i >= len(t.points) {
		return nil
	}
	var result []int
	for _, v := range t.mesh.Neighbors(geom.Finite(i)) {
		if v.IsFinite() {
			result = append(result, v.Index)
		}
	}
	return result
}

// Find the live triangles containing p: one if p is strictly inside a
// triangle, two if it is on an edge. The triangles may include sentinels when
// p is outside the convex hull. p must be smaller than point 0 in y-then-x
// order, and must not coincide with an input point.
func (t *Triangulation) Locate(p Point) (result []MeshTriangle, err error) {
	if !geom.IsFinitePoint(p) || geom.CompareYX(p, t.points[0]) >= 0 {
		return nil, throw.Precondition("cannot locate %v, it is not below point 0 %v", p, t.points[0])
	}

	defer func() {
		recoveredErr := throw.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	for _, leaf := range t.history.FindContainingLeafNodes(p) {
		result = append(result, leaf.Triangle)
	}
	return result, nil
}

// The finite edges that fail the empty circle test. Empty unless legalization
// had to skip a non-convex quadrilateral.
func (t *Triangulation) IllegalEdges() []Edge {
	var result []Edge
	for _, h := range t.mesh.FiniteHalfEdges() {
		if t.mesh.IsLegal(h) {
			continue
		}
		a, b := t.mesh.Origin(h), t.mesh.Dest(h)
		result = append(result, Edge{a.Index, b.Index})
	}
	return result
}

// Verify the mesh, and that the history leaves are exactly the live faces.
func (t *Triangulation) CheckConsistency() (err error) {
	defer func() {
		if recoveredErr := throw.HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			err = multierr.Append(err, recoveredErr)
		}
	}()

	err = t.mesh.CheckConsistency()

	leaves := map[*history.Node]struct{}{}
	for _, leaf := range t.history.Leaves() {
		leaves[leaf] = struct{}{}
	}
	faces := t.mesh.BoundedFaces()
	for _, f := range faces {
		node := t.mesh.Face(f).Data
		if _, ok := leaves[node]; !ok {
			err = multierr.Append(err, errors.Wrapf(throw.ErrInternalInvariantViolation,
				"face %v has a history node that is not a leaf", t.mesh.FaceTriangle(f)))
		}
		delete(leaves, node)
	}
	for leaf := range leaves {
		err = multierr.Append(err, errors.Wrapf(throw.ErrInternalInvariantViolation,
			"history leaf %v has no live face", leaf.Triangle))
	}
	return err
}
