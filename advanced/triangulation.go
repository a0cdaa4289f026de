package advanced

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/osuushi/delaunay/internal/dcel"
	"github.com/osuushi/delaunay/internal/geom"
	"github.com/osuushi/delaunay/internal/history"
	"github.com/osuushi/delaunay/internal/throw"
)

// Randomized incremental Delaunay triangulation (de Berg et al., chapter 9).
//
// Points are inserted one at a time in random order. The history graph finds
// the triangle (or the two triangles, if the point is on an edge) containing
// each new point; the mesh splits it, and then every edge that might have
// become illegal is flipped until the triangulation is Delaunay again.
//
// Construction starts from a triangle formed by the largest point and two
// sentinels, UpperLeft and Right, which lie so far away that every other
// point is inside it. The sentinels and their edges are still in the mesh
// afterwards, but they are never reported as triangles or edges.
type Triangulation struct {
	points  geom.Points
	mesh    *dcel.Mesh
	history *history.History
	stats   Stats

	logger           *zap.SugaredLogger
	checkConsistency bool
}

// Counts of what happened during construction.
type Stats struct {
	// Insertions strictly inside a triangle
	PointSplits int
	// Insertions onto an edge between two triangles
	EdgeSplits int
	Flips      int
	// Illegal edges left alone because their quadrilateral wasn't convex
	NonConvexSkips int
	// Edges that no longer existed when legalization reached them, because an
	// earlier flip in the same insertion replaced them
	SupersededEdges int
}

type Option func(*Triangulation)

// Log construction progress at debug level.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(t *Triangulation) {
		t.logger = logger
	}
}

// Verify the whole mesh and history after every mutation. This makes
// construction quadratic, so it is only meant for tests and debugging.
func WithConsistencyChecks(enabled bool) Option {
	return func(t *Triangulation) {
		t.checkConsistency = enabled
	}
}

// Triangulate the points. Point 0 must be the unique largest point in y, then
// x order (see MoveLargestFirst), and no two points may coincide. The random
// source picks the insertion order, so the same source state always gives the
// same result.
//
// Errors wrap ErrPreconditionViolation for unusable arguments, detected before
// any work, and ErrDegenerateInput when duplicate points turn up during
// construction. No partial result is returned.
func NewTriangulation(points []Point, rng *rand.Rand, opts ...Option) (result *Triangulation, err error) {
	if err := checkPreconditions(points, rng); err != nil {
		return nil, err
	}

	defer func() {
		recoveredErr := throw.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	t := &Triangulation{
		points: append(geom.Points(nil), points...),
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.build(rng)
	return t, nil
}

func checkPreconditions(points []Point, rng *rand.Rand) error {
	if rng == nil {
		return throw.Precondition("a random source is required")
	}
	if len(points) < 3 {
		return throw.Precondition("need at least 3 points, got %d", len(points))
	}
	for i, p := range points {
		if !geom.IsFinitePoint(p) {
			return throw.Precondition("point %d (%v) is not finite", i, p)
		}
	}
	for i := 1; i < len(points); i++ {
		if geom.CompareYX(points[0], points[i]) <= 0 {
			return throw.Precondition("point 0 %v must be larger than every other point, but point %d is %v", points[0], i, points[i])
		}
	}
	return nil
}

func (t *Triangulation) build(rng *rand.Rand) {
	n := len(t.points)
	t.logger.Debugw("starting triangulation", "points", n)

	t.history = history.New(t.points, 0)
	t.mesh = dcel.New(t.points, 0, t.history.Root)
	t.verify()

	order := make([]int, n-1)
	for i := range order {
		order[i] = i + 1
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for _, i := range order {
		t.insert(i)
	}

	t.logger.Debugw("finished triangulation",
		"points", n,
		"triangles", len(t.mesh.Triangles()),
		"flips", t.stats.Flips,
		"nonConvexSkips", t.stats.NonConvexSkips,
		"historyNodes", t.history.Size(),
	)
}

func (t *Triangulation) insert(i int) {
	p := geom.Finite(i)
	leaves := t.history.FindContainingLeafNodes(t.points[i])
	t.logger.Debugw("inserting point", "index", i, "point", t.points[i], "containingTriangles", len(leaves))

	switch len(leaves) {
	case 1:
		t.insertInTriangle(leaves[0], p)
	case 2:
		t.insertOnEdge(leaves[0], leaves[1], p)
	default:
		throw.Degeneratef("point %d %v is in %d triangles", i, t.points[i], len(leaves))
	}
}

// Split the triangle {i0,i1,i2} containing p into three, then legalize its
// old edges.
func (t *Triangulation) insertInTriangle(leaf *history.Node, p geom.VertexID) {
	tri := leaf.Triangle
	h30 := t.mesh.SplitTriangle(tri, p)
	children := t.history.SplitContainingLeafNode(leaf, p)
	faces := [3]dcel.FaceIndex{
		t.mesh.FaceOf(h30),
		t.mesh.FaceOf(t.mesh.Twin(t.mesh.Prev(h30))),
		t.mesh.FaceOf(t.mesh.Twin(h30)),
	}
	for k, f := range faces {
		t.mesh.SetFaceData(f, children[k])
	}
	t.stats.PointSplits++
	t.verify()

	i0, i1, i2 := tri[0], tri[1], tri[2]
	t.legalizeEdge(p, i0, i1)
	t.legalizeEdge(p, i1, i2)
	t.legalizeEdge(p, i2, i0)
}

// Split the triangles {i0,i1,i2} and {i1,i0,i3} on either side of the edge
// containing p into four, then legalize the outer edges of the quadrilateral.
func (t *Triangulation) insertOnEdge(leaf0, leaf1 *history.Node, p geom.VertexID) {
	tri0, tri1 := leaf0.Triangle, leaf1.Triangle
	c0, c1, ok := tri0.CommonEdge(tri1)
	if !ok {
		throw.Invariantf("containing triangles %v and %v share no edge", tri0, tri1)
	}
	i0, i1 := tri0[c0], tri0[c1]
	i2, _ := tri0.Opposite(i0, i1)
	i3, _ := tri1.Opposite(i0, i1)

	h04 := t.mesh.SplitTriangles(tri0, tri1, p)
	children0, children1 := t.history.SplitContainingLeafNodes(leaf0, leaf1, p)
	h41 := t.mesh.Next(t.mesh.Twin(t.mesh.Next(h04)))
	t.mesh.SetFaceData(t.mesh.FaceOf(h04), children0[0])
	t.mesh.SetFaceData(t.mesh.FaceOf(h41), children0[1])
	t.mesh.SetFaceData(t.mesh.FaceOf(t.mesh.Twin(h41)), children1[0])
	t.mesh.SetFaceData(t.mesh.FaceOf(t.mesh.Twin(h04)), children1[1])
	t.stats.EdgeSplits++
	t.verify()

	t.legalizeEdge(p, i2, i0)
	t.legalizeEdge(p, i1, i2)
	t.legalizeEdge(p, i3, i1)
	t.legalizeEdge(p, i0, i3)
}

// Restore legality of the edge a->b, whose triangle contains the newly
// inserted vertex p. Flipping it connects p to the vertex c across the edge,
// which exposes a->c and c->b in turn.
//
// Illegal edges whose quadrilateral is not convex are left alone, so under
// floating point ties the result is not guaranteed to be Delaunay everywhere.
func (t *Triangulation) legalizeEdge(p, a, b geom.VertexID) {
	h, ok := t.mesh.HalfEdgeBetween(a, b)
	if !ok {
		// Already replaced by an earlier flip during this insertion
		t.stats.SupersededEdges++
		return
	}
	if t.mesh.IsLegal(h) {
		return
	}
	if !t.mesh.SwapIsConvex(h) {
		t.stats.NonConvexSkips++
		t.logger.Debugw("skipping illegal edge with non-convex quadrilateral", "from", a.String(), "to", b.String())
		return
	}

	c := t.mesh.Origin(t.mesh.Prev(t.mesh.Twin(h)))
	t.flip(h)
	t.logger.Debugw("flipped edge", "from", a.String(), "to", b.String(), "newFrom", p.String(), "newTo", c.String())

	t.legalizeEdge(p, a, c)
	t.legalizeEdge(p, c, b)
}

func (t *Triangulation) flip(h dcel.EdgeIndex) {
	node0 := t.mesh.Face(t.mesh.FaceOf(h)).Data
	node1 := t.mesh.Face(t.mesh.FaceOf(t.mesh.Twin(h))).Data

	h23 := t.mesh.Flip(h)
	h32 := t.mesh.Twin(h23)
	face0, face1 := t.mesh.FaceOf(h23), t.mesh.FaceOf(h32)
	children := t.history.FlipEdge(node0, node1, t.mesh.FaceTriangle(face0), t.mesh.FaceTriangle(face1))
	t.mesh.SetFaceData(face0, children[0])
	t.mesh.SetFaceData(face1, children[1])
	t.stats.Flips++
	t.verify()
}

func (t *Triangulation) verify() {
	if !t.checkConsistency {
		return
	}
	if err := t.CheckConsistency(); err != nil {
		throw.Throw(err)
	}
}
