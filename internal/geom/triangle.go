package geom

import "fmt"

// A triangle as three vertex ids in clockwise (-z) order. Triangles built with
// NewTriangle are canonical: rotated so that the smallest id comes first. Since
// rotation preserves orientation, two canonical triangles describe the same
// face iff they are equal, so they can be compared with == and used as map
// keys.
type Triangle [3]VertexID

func NewTriangle(a, b, c VertexID) Triangle {
	return Triangle{a, b, c}.Canonical()
}

func (t Triangle) Canonical() Triangle {
	minIndex := 0
	for i := 1; i < 3; i++ {
		if t[i].Less(t[minIndex]) {
			minIndex = i
		}
	}
	return t.Rotate(minIndex)
}

// Rotate so that the element at index moves to the front.
func (t Triangle) Rotate(index int) Triangle {
	var result Triangle
	for i := range result {
		result[i] = t[CircularIndex(i+index, 3)]
	}
	return result
}

func (t Triangle) Contains(v VertexID) bool {
	return t[0] == v || t[1] == v || t[2] == v
}

// A triangle is finite if none of its vertices is a sentinel.
func (t Triangle) IsFinite() bool {
	return t[0].IsFinite() && t[1].IsFinite() && t[2].IsFinite()
}

// The input point indices of a finite triangle.
func (t Triangle) Indices() [3]int {
	return [3]int{t[0].Index, t[1].Index, t[2].Index}
}

// Lexicographic order over the (canonical) vertex triples.
func (t Triangle) Less(other Triangle) bool {
	for i := range t {
		if t[i] != other[i] {
			return t[i].Less(other[i])
		}
	}
	return false
}

// Find the edge shared with another triangle. The result (i, j) is one of
// (0, 1), (1, 2) or (2, 0), so that t[i] -> t[j] is a directed edge of t in
// its clockwise order. ok is false unless the triangles share exactly two
// vertices.
func (t Triangle) CommonEdge(other Triangle) (i, j int, ok bool) {
	var shared [3]bool
	count := 0
	for k, v := range t {
		if other.Contains(v) {
			shared[k] = true
			count++
		}
	}
	if count != 2 {
		return 0, 0, false
	}
	switch {
	case !shared[1]:
		return 2, 0, true
	case shared[0]:
		return 0, 1, true
	default:
		return 1, 2, true
	}
}

// The vertex of the triangle that is neither a nor b.
func (t Triangle) Opposite(a, b VertexID) (VertexID, bool) {
	if !t.Contains(a) || !t.Contains(b) {
		return VertexID{}, false
	}
	for _, v := range t {
		if v != a && v != b {
			return v, true
		}
	}
	return VertexID{}, false
}

func (t Triangle) String() string {
	return fmt.Sprintf("{%s,%s,%s}", t[0], t[1], t[2])
}
