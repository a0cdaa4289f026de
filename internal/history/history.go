package history

import (
	"sort"

	"github.com/osuushi/delaunay/internal/geom"
	"github.com/osuushi/delaunay/internal/throw"
)

// The history graph is the point location structure of the randomized
// incremental algorithm (de Berg et al., section 9.3). It is a DAG rooted at
// the triangle {UpperLeft, largest, Right}, which contains every input point.
// Locating a point walks down from the root, only ever visiting triangles
// that contain it.
type History struct {
	Root   *Node
	points geom.Points
}

func New(points geom.Points, largest int) *History {
	return &History{
		Root:   newSink(geom.NewTriangle(geom.UpperLeft, geom.Finite(largest), geom.Right)),
		points: points,
	}
}

// Find the leaves whose triangles contain p. There is one for a point strictly
// inside a triangle, and two for a point on an edge between triangles.
// Anything else means p duplicates an existing vertex (or worse), and is
// reported as ErrDegenerateInput.
//
// The walk is breadth first and remembers where it has been. After a flip
// both parents share their children, so without that a point on the flipped
// edge would reach the same leaf twice.
func (h *History) FindContainingLeafNodes(p geom.Point) []*Node {
	queue := []*Node{h.Root}
	seen := map[*Node]struct{}{h.Root: {}}
	var leaves []*Node
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.IsLeaf() {
			leaves = append(leaves, node)
			if len(leaves) > 2 {
				throw.Degeneratef("point %v is in more than two triangles", p)
			}
			continue
		}
		for _, child := range node.containingChildren(h.points, p) {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			queue = append(queue, child)
		}
	}
	if len(leaves) == 0 {
		throw.Degeneratef("point %v is in no triangle", p)
	}
	return leaves
}

// Split the leaf {i0,i1,i2} around a point p strictly inside it. Returns the
// new leaves {i0,i1,p}, {i1,i2,p} and {i2,i0,p}.
func (h *History) SplitContainingLeafNode(node *Node, p geom.VertexID) [3]*Node {
	mustBeLeaf(node)
	var children [3]*Node
	tri := node.Triangle
	for i := range children {
		children[i] = newSink(geom.Triangle{tri[i], tri[geom.CircularIndex(i+1, 3)], p})
	}
	node.Inner = PointSplitNode{Children: children}
	return children
}

// Split two leaves sharing the edge i0-i1, because the new point i4 lies on
// that edge. node0 is {i0,i1,i2} and node1 is {i1,i0,i3}, each up to
// rotation. The new leaves are
//
//	children0 = {i0,i4,i2}, {i4,i1,i2}
//	children1 = {i1,i4,i3}, {i4,i0,i3}
//
// See de Berg et al., figure 9.7.
func (h *History) SplitContainingLeafNodes(node0, node1 *Node, i4 geom.VertexID) (children0, children1 [2]*Node) {
	mustBeLeaf(node0)
	mustBeLeaf(node1)
	tri0, tri1 := node0.Triangle, node1.Triangle
	c0, c1, ok := tri0.CommonEdge(tri1)
	if !ok {
		throw.Invariantf("cannot split %v and %v, they share no edge", tri0, tri1)
	}
	i0, i1 := tri0[c0], tri0[c1]
	i2, _ := tri0.Opposite(i0, i1)
	i3, _ := tri1.Opposite(i0, i1)

	children0 = [2]*Node{
		newSink(geom.Triangle{i0, i4, i2}),
		newSink(geom.Triangle{i4, i1, i2}),
	}
	children1 = [2]*Node{
		newSink(geom.Triangle{i1, i4, i3}),
		newSink(geom.Triangle{i4, i0, i3}),
	}
	node0.Inner = EdgeSplitNode{Children: children0}
	node1.Inner = EdgeSplitNode{Children: children1}
	return
}

// Record a flip of the edge between two leaves. tri0 and tri1 are the
// triangles on either side of the new edge, and become children of both old
// leaves.
func (h *History) FlipEdge(node0, node1 *Node, tri0, tri1 geom.Triangle) [2]*Node {
	mustBeLeaf(node0)
	mustBeLeaf(node1)
	children := [2]*Node{newSink(tri0), newSink(tri1)}
	if _, _, ok := children[0].Triangle.CommonEdge(children[1].Triangle); !ok {
		throw.Invariantf("flipped triangles %v and %v share no edge", tri0, tri1)
	}
	node0.Inner = FlipNode{Children: children}
	node1.Inner = FlipNode{Children: children}
	return children
}

// The current leaves, sorted by triangle.
func (h *History) Leaves() []*Node {
	var leaves []*Node
	iter := NewGraphIterator(h.Root)
	for node := iter.Next(); node != nil; node = iter.Next() {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	}
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].Triangle.Less(leaves[j].Triangle)
	})
	return leaves
}

func mustBeLeaf(node *Node) {
	if !node.IsLeaf() {
		throw.Invariantf("history node %v was already split", node.Triangle)
	}
}

// A graph iterator lets you loop over the nodes in a graph exactly once.
// Traversal order is not defined. Behavior is also undefined if you modify the
// graph during iteration.
type GraphIterator struct {
	stack []*Node
	seen  map[*Node]struct{}
}

func NewGraphIterator(root *Node) *GraphIterator {
	return &GraphIterator{[]*Node{root}, map[*Node]struct{}{}}
}

func (iter *GraphIterator) Next() *Node {
	for len(iter.stack) > 0 {
		node := iter.stack[len(iter.stack)-1]
		iter.stack = iter.stack[:len(iter.stack)-1]
		// Skip if we've seen the node before
		if _, ok := iter.seen[node]; ok {
			continue
		}
		iter.seen[node] = struct{}{}

		// Push the children onto the stack
		iter.stack = append(iter.stack, node.ChildNodes()...)
		return node
	}
	return nil
}

// Number of distinct nodes reachable from the root.
func (h *History) Size() int {
	count := 0
	iter := NewGraphIterator(h.Root)
	for node := iter.Next(); node != nil; node = iter.Next() {
		count++
	}
	return count
}
