package dcel

import (
	"github.com/osuushi/delaunay/internal/geom"
	"github.com/osuushi/delaunay/internal/throw"
)

// Delaunay legality of the edge h = v0->v1, between the triangles {v0,v1,v2}
// and {v1,v0,v3} (de Berg et al., section 9.3).
//
// An edge of the unbounded face is always legal. Between finite triangles the
// edge is legal iff v3 is not strictly inside the circumcircle of
// {v0,v1,v2}. Once a sentinel is involved that circle is meaningless, and the
// edge is legal iff min(v2, v3) < min(v0, v1) in vertex order, where both
// sentinels sort below every input point.
func (m *Mesh) IsLegal(h EdgeIndex) bool {
	e := m.Edges[h]
	if m.Faces[e.Face].Data == nil || m.Faces[m.Edges[e.Twin].Face].Data == nil {
		return true
	}
	v0, v1, v2, v3 := m.Quad(h)
	if m.isBoundaryVertex(v0) && m.isBoundaryVertex(v1) {
		// Such edges are exactly the edges of the initial triangle, which border
		// the unbounded face.
		throw.Invariantf("edge %v-%v of the initial triangle has two bounded faces", v0, v1)
	}

	if v0.IsFinite() && v1.IsFinite() && v2.IsFinite() && v3.IsFinite() {
		ps := m.Points
		return !geom.InCircle(ps.At(v0), ps.At(v1), ps.At(v2), ps.At(v3))
	}
	return geom.MinVertex(v2, v3).Less(geom.MinVertex(v0, v1))
}

// Whether the quadrilateral v0,v3,v1,v2 around the edge h = v0->v1 is
// strictly convex, so that flipping h yields two proper clockwise triangles.
// Sentinels are handled by the sentinel-aware orientation, which reduces each
// test to a comparison along the line through the sentinel, or to a constant
// when both sentinels are involved.
func (m *Mesh) SwapIsConvex(h EdgeIndex) bool {
	v0, v1, v2, v3 := m.Quad(h)
	if v0.IsSentinel() && v1.IsSentinel() {
		throw.Invariantf("edge %v-%v between two sentinels cannot be flipped", v0, v1)
	}
	ps := m.Points
	return ps.Orient(v2, v0, v3) == -1 && ps.Orient(v3, v1, v2) == -1
}

// The sentinels and the largest point are the corners of the initial
// triangle.
func (m *Mesh) isBoundaryVertex(v geom.VertexID) bool {
	return v.IsSentinel() || v.Index == m.Largest
}
