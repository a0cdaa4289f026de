package dcel

import (
	"github.com/osuushi/delaunay/internal/geom"
	"github.com/osuushi/delaunay/internal/history"
	"github.com/osuushi/delaunay/internal/throw"
)

// Doubly connected edge list for a triangulation. Records live in arenas and
// refer to each other by index. Nothing is ever removed from an arena; records
// replaced by a split or flip are marked as no longer in use, so indices stay
// stable for the whole construction.
//
// Every bounded face is a clockwise triangle. The single unbounded face lies
// outside the initial triangle {UpperLeft, largest, Right}, and is the only
// face with no history node.

type EdgeIndex int
type FaceIndex int

const (
	EmptyEdge EdgeIndex = -1
	EmptyFace FaceIndex = -1
)

type HalfEdge struct {
	Origin geom.VertexID
	Twin   EdgeIndex
	Next   EdgeIndex
	Prev   EdgeIndex
	Face   FaceIndex
	InUse  bool
}

type Face struct {
	// Any half-edge of the face's boundary.
	Edge EdgeIndex
	// The history leaf describing this face. Nil for the unbounded face.
	Data  *history.Node
	InUse bool
}

type Mesh struct {
	Points  geom.Points
	Largest int
	Edges   []HalfEdge
	Faces   []Face
	Outer   FaceIndex
	// An outgoing half-edge per vertex, indexed by vertexSlot.
	vertexEdges []EdgeIndex
}

// Build the initial mesh: one clockwise triangle {UpperLeft, largest, Right}
// carrying root, surrounded by the unbounded face.
func New(points geom.Points, largest int, root *history.Node) *Mesh {
	m := &Mesh{
		Points:      points,
		Largest:     largest,
		vertexEdges: make([]EdgeIndex, len(points)+2),
	}
	for i := range m.vertexEdges {
		m.vertexEdges[i] = EmptyEdge
	}

	ul, l, r := geom.UpperLeft, geom.Finite(largest), geom.Right
	ulL, lUL := m.newEdgePair(ul, l)
	lR, rL := m.newEdgePair(l, r)
	rUL, ulR := m.newEdgePair(r, ul)

	m.newFace(root, ulL, lR, rUL)
	m.Outer = m.newFace(nil, ulR, rL, lUL)

	m.setVertexEdge(ul, ulL)
	m.setVertexEdge(l, lR)
	m.setVertexEdge(r, rUL)
	return m
}

// Accessors

func (m *Mesh) Edge(h EdgeIndex) *HalfEdge {
	return &m.Edges[h]
}

func (m *Mesh) Face(f FaceIndex) *Face {
	return &m.Faces[f]
}

func (m *Mesh) Twin(h EdgeIndex) EdgeIndex { return m.Edges[h].Twin }
func (m *Mesh) Next(h EdgeIndex) EdgeIndex { return m.Edges[h].Next }
func (m *Mesh) Prev(h EdgeIndex) EdgeIndex { return m.Edges[h].Prev }

func (m *Mesh) FaceOf(h EdgeIndex) FaceIndex {
	return m.Edges[h].Face
}

func (m *Mesh) Origin(h EdgeIndex) geom.VertexID {
	return m.Edges[h].Origin
}

func (m *Mesh) Dest(h EdgeIndex) geom.VertexID {
	return m.Edges[m.Edges[h].Twin].Origin
}

// The outgoing half-edge recorded for v, or EmptyEdge if v is not in the mesh
// yet.
func (m *Mesh) VertexEdge(v geom.VertexID) EdgeIndex {
	return m.vertexEdges[m.vertexSlot(v)]
}

func (m *Mesh) HasVertex(v geom.VertexID) bool {
	return m.VertexEdge(v) != EmptyEdge
}

// The clockwise vertex triple of a face, canonicalized.
func (m *Mesh) FaceTriangle(f FaceIndex) geom.Triangle {
	e0 := m.Faces[f].Edge
	e1 := m.Edges[e0].Next
	e2 := m.Edges[e1].Next
	return geom.NewTriangle(m.Edges[e0].Origin, m.Edges[e1].Origin, m.Edges[e2].Origin)
}

func (m *Mesh) SetFaceData(f FaceIndex, node *history.Node) {
	m.Faces[f].Data = node
}

// Find the half-edge from a to b by rotating through the fan of half-edges
// leaving a. Returns false if a and b are not adjacent.
func (m *Mesh) HalfEdgeBetween(a, b geom.VertexID) (EdgeIndex, bool) {
	start := m.VertexEdge(a)
	if start == EmptyEdge {
		return EmptyEdge, false
	}
	h := start
	for {
		if m.Dest(h) == b {
			return h, true
		}
		h = m.Edges[m.Edges[h].Prev].Twin
		if h == start {
			return EmptyEdge, false
		}
	}
}

// Every live half-edge leaving v, in clockwise order around it.
func (m *Mesh) IncidentEdges(v geom.VertexID) []EdgeIndex {
	start := m.VertexEdge(v)
	if start == EmptyEdge {
		return nil
	}
	var result []EdgeIndex
	h := start
	for {
		result = append(result, h)
		h = m.Edges[m.Edges[h].Prev].Twin
		if h == start {
			return result
		}
		if len(result) > len(m.Edges) {
			throw.Invariantf("fan around %v does not close", v)
		}
	}
}

// Split a triangle {i0,i1,i2} around a new vertex p strictly inside it. The
// three boundary half-edges are reused, and six new ones connect them to p.
// The new faces are {i0,i1,p}, {i1,i2,p} and {i2,i0,p}.
//
// Returns the half-edge p->i0. Its face is {i0,i1,p}; the face of
// Twin(Prev(h)) is {i1,i2,p}, and the face of Twin(h) is {i2,i0,p}. The new
// faces have no data yet.
func (m *Mesh) SplitTriangle(tri geom.Triangle, p geom.VertexID) EdgeIndex {
	if m.HasVertex(p) {
		throw.Invariantf("vertex %v is already in the mesh", p)
	}
	i0, i1, i2 := tri[0], tri[1], tri[2]
	h01 := m.mustHalfEdge(i0, i1)
	h12 := m.Edges[h01].Next
	h20 := m.Edges[h12].Next
	if m.Edges[h12].Origin != i1 || m.Edges[h20].Origin != i2 {
		throw.Invariantf("%v is not a face of the mesh", tri)
	}
	old := m.Edges[h01].Face

	h03, h30 := m.newEdgePair(i0, p)
	h13, h31 := m.newEdgePair(i1, p)
	h23, h32 := m.newEdgePair(i2, p)

	m.newFace(nil, h01, h13, h30)
	m.newFace(nil, h12, h23, h31)
	m.newFace(nil, h20, h03, h32)
	m.retireFace(old)

	m.setVertexEdge(p, h30)
	return h30
}

// Split the two triangles {i0,i1,i2} and {i1,i0,i3} on either side of the
// edge i0-i1, because a new vertex p lies on that edge. Both half-edges of the
// edge are retired. The new faces are {i0,p,i2}, {p,i1,i2}, {i1,p,i3} and
// {p,i0,i3}.
//
// Returns the half-edge i0->p, whose face is {i0,p,i2}. From it h.Next.Twin.Next
// (that is, p->i1) lies on {p,i1,i2}, that edge's twin on {i1,p,i3}, and
// Twin(h) on {p,i0,i3}.
func (m *Mesh) SplitTriangles(tri0, tri1 geom.Triangle, p geom.VertexID) EdgeIndex {
	if m.HasVertex(p) {
		throw.Invariantf("vertex %v is already in the mesh", p)
	}
	c0, c1, ok := tri0.CommonEdge(tri1)
	if !ok {
		throw.Invariantf("cannot split %v and %v, they share no edge", tri0, tri1)
	}
	i0, i1 := tri0[c0], tri0[c1]
	i2, _ := tri0.Opposite(i0, i1)
	i3, _ := tri1.Opposite(i0, i1)

	h01 := m.mustHalfEdge(i0, i1)
	h10 := m.Edges[h01].Twin
	h12 := m.Edges[h01].Next
	h20 := m.Edges[h12].Next
	h03 := m.Edges[h10].Next
	h31 := m.Edges[h03].Next
	if m.Edges[h20].Origin != i2 || m.Edges[h31].Origin != i3 {
		throw.Invariantf("%v and %v are not adjacent faces of the mesh", tri0, tri1)
	}
	face0, face1 := m.Edges[h01].Face, m.Edges[h10].Face

	h04, h40 := m.newEdgePair(i0, p)
	h14, h41 := m.newEdgePair(i1, p)
	h24, h42 := m.newEdgePair(i2, p)
	h34, h43 := m.newEdgePair(i3, p)

	m.newFace(nil, h04, h42, h20)
	m.newFace(nil, h41, h12, h24)
	m.newFace(nil, h14, h43, h31)
	m.newFace(nil, h40, h03, h34)

	m.replaceVertexEdge(i0, h01, h04)
	m.replaceVertexEdge(i1, h10, h14)
	m.setVertexEdge(p, h40)

	m.retireEdge(h01)
	m.retireEdge(h10)
	m.retireFace(face0)
	m.retireFace(face1)
	return h04
}

// Replace the edge v0-v1 (h is v0->v1) by the other diagonal of the
// quadrilateral around it. The faces {v0,v1,v2} and {v1,v0,v3} become
// {v0,v3,v2} and {v1,v2,v3}. Returns the new half-edge v2->v3, whose face is
// {v1,v2,v3}. The new faces have no data yet.
func (m *Mesh) Flip(h EdgeIndex) EdgeIndex {
	h01 := h
	h10 := m.Edges[h01].Twin
	h12 := m.Edges[h01].Next
	h20 := m.Edges[h12].Next
	h03 := m.Edges[h10].Next
	h31 := m.Edges[h03].Next
	v0, v1 := m.Edges[h01].Origin, m.Edges[h10].Origin
	v2, v3 := m.Edges[h20].Origin, m.Edges[h31].Origin
	face0, face1 := m.Edges[h01].Face, m.Edges[h10].Face
	if m.Faces[face0].Data == nil || m.Faces[face1].Data == nil {
		throw.Invariantf("cannot flip %v-%v, it borders the unbounded face", v0, v1)
	}

	h23, h32 := m.newEdgePair(v2, v3)
	m.newFace(nil, h03, h32, h20)
	m.newFace(nil, h12, h23, h31)

	m.replaceVertexEdge(v0, h01, h03)
	m.replaceVertexEdge(v1, h10, h12)

	m.retireEdge(h01)
	m.retireEdge(h10)
	m.retireFace(face0)
	m.retireFace(face1)
	return h23
}

// The four vertices around the edge h = v0->v1: v2 completes h's triangle,
// and v3 completes its twin's.
func (m *Mesh) Quad(h EdgeIndex) (v0, v1, v2, v3 geom.VertexID) {
	e := m.Edges[h]
	twin := m.Edges[e.Twin]
	v0 = e.Origin
	v1 = twin.Origin
	v2 = m.Edges[m.Edges[e.Next].Next].Origin
	v3 = m.Edges[m.Edges[twin.Next].Next].Origin
	return
}

// Internal surgery helpers

func (m *Mesh) vertexSlot(v geom.VertexID) int {
	switch v.Kind {
	case geom.UpperLeftKind:
		return 0
	case geom.RightKind:
		return 1
	}
	return v.Index + 2
}

func (m *Mesh) setVertexEdge(v geom.VertexID, h EdgeIndex) {
	m.vertexEdges[m.vertexSlot(v)] = h
}

// Point v at replacement if it currently points at a retiring half-edge.
func (m *Mesh) replaceVertexEdge(v geom.VertexID, retiring, replacement EdgeIndex) {
	if m.VertexEdge(v) == retiring {
		m.setVertexEdge(v, replacement)
	}
}

func (m *Mesh) mustHalfEdge(a, b geom.VertexID) EdgeIndex {
	h, ok := m.HalfEdgeBetween(a, b)
	if !ok {
		throw.Invariantf("no half-edge from %v to %v", a, b)
	}
	return h
}

// Create the half-edges a->b and b->a as twins. They belong to no face until
// linked into one.
func (m *Mesh) newEdgePair(a, b geom.VertexID) (ab, ba EdgeIndex) {
	ab = EdgeIndex(len(m.Edges))
	ba = ab + 1
	m.Edges = append(m.Edges,
		HalfEdge{Origin: a, Twin: ba, Next: EmptyEdge, Prev: EmptyEdge, Face: EmptyFace, InUse: true},
		HalfEdge{Origin: b, Twin: ab, Next: EmptyEdge, Prev: EmptyEdge, Face: EmptyFace, InUse: true},
	)
	return
}

// Create a face bounded by the given half-edges, in order, and link them into
// a cycle around it.
func (m *Mesh) newFace(data *history.Node, edges ...EdgeIndex) FaceIndex {
	f := FaceIndex(len(m.Faces))
	m.Faces = append(m.Faces, Face{Edge: edges[0], Data: data, InUse: true})
	for i, h := range edges {
		e := &m.Edges[h]
		e.Next = edges[geom.CircularIndex(i+1, len(edges))]
		e.Prev = edges[geom.CircularIndex(i-1, len(edges))]
		e.Face = f
	}
	return f
}

func (m *Mesh) retireEdge(h EdgeIndex) {
	m.Edges[h].InUse = false
}

func (m *Mesh) retireFace(f FaceIndex) {
	m.Faces[f].InUse = false
}
