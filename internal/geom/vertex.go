package geom

import "strconv"

// A vertex is either an input point, referenced by index, or one of the two
// sentinels that close off the triangulation. The sentinels are points at
// infinity. A useful mental model is:
//
//	UpperLeft: (-r*s, ymax+h)
//	Right:     (r, ymin-h)
//
// with r and s both going to infinity and h = ymax-ymin. They never have
// coordinates, and every test that involves them is special cased.
type VertexKind uint8

// The declaration order is the rank order. Both sentinels sort before any
// finite vertex, and UpperLeft sorts before Right.
const (
	UpperLeftKind VertexKind = iota
	RightKind
	FiniteKind
)

type VertexID struct {
	Kind VertexKind
	// Index into the input points. Only meaningful for finite vertices.
	Index int
}

var (
	UpperLeft = VertexID{Kind: UpperLeftKind}
	Right     = VertexID{Kind: RightKind}
)

func Finite(index int) VertexID {
	return VertexID{Kind: FiniteKind, Index: index}
}

func (v VertexID) IsFinite() bool {
	return v.Kind == FiniteKind
}

func (v VertexID) IsSentinel() bool {
	return v.Kind != FiniteKind
}

// Total order: UpperLeft < Right < Finite(0) < Finite(1) < ...
func (v VertexID) Less(other VertexID) bool {
	if v.Kind != other.Kind {
		return v.Kind < other.Kind
	}
	return v.Index < other.Index
}

func MinVertex(a, b VertexID) VertexID {
	if b.Less(a) {
		return b
	}
	return a
}

func (v VertexID) String() string {
	switch v.Kind {
	case UpperLeftKind:
		return "UL"
	case RightKind:
		return "R"
	}
	return strconv.Itoa(v.Index)
}
