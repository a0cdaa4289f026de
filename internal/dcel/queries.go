package dcel

import (
	"sort"

	"github.com/osuushi/delaunay/internal/geom"
)

// Live faces with a history node, that is every bounded triangle including
// the ones touching a sentinel.
func (m *Mesh) BoundedFaces() []FaceIndex {
	var result []FaceIndex
	for i, face := range m.Faces {
		if face.InUse && face.Data != nil {
			result = append(result, FaceIndex(i))
		}
	}
	return result
}

// The finite triangles of the triangulation, canonical and sorted.
func (m *Mesh) Triangles() []geom.Triangle {
	var result []geom.Triangle
	for _, f := range m.BoundedFaces() {
		tri := m.FaceTriangle(f)
		if tri.IsFinite() {
			result = append(result, tri)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Less(result[j])
	})
	return result
}

// The finite edges of the triangulation as index pairs with the smaller index
// first, sorted.
func (m *Mesh) FiniteEdges() [][2]int {
	var result [][2]int
	for _, e := range m.Edges {
		if !e.InUse {
			continue
		}
		a, b := e.Origin, m.Edges[e.Twin].Origin
		if a.IsFinite() && b.IsFinite() && a.Index < b.Index {
			result = append(result, [2]int{a.Index, b.Index})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i][0] != result[j][0] {
			return result[i][0] < result[j][0]
		}
		return result[i][1] < result[j][1]
	})
	return result
}

// The live half-edges between two finite vertices, one per undirected edge.
func (m *Mesh) FiniteHalfEdges() []EdgeIndex {
	var result []EdgeIndex
	for i, e := range m.Edges {
		if !e.InUse {
			continue
		}
		a, b := e.Origin, m.Edges[e.Twin].Origin
		if a.IsFinite() && b.IsFinite() && a.Index < b.Index {
			result = append(result, EdgeIndex(i))
		}
	}
	return result
}

// The vertices adjacent to v, sentinels included, in clockwise order.
func (m *Mesh) Neighbors(v geom.VertexID) []geom.VertexID {
	var result []geom.VertexID
	for _, h := range m.IncidentEdges(v) {
		result = append(result, m.Dest(h))
	}
	return result
}
