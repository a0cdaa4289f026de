package history

import (
	"github.com/osuushi/delaunay/internal/geom"
	"github.com/osuushi/delaunay/internal/throw"
)

// Node of the history graph. Every triangle that ever existed during the
// construction has exactly one node. Leaves are the triangles of the current
// triangulation; inner nodes record how a triangle was destroyed, and point at
// the triangles that replaced it.
//
// Nodes change from leaves to inner nodes in place, so callers holding a
// *Node (like mesh faces) stay valid. The Inner field is a union over the
// node kinds.
type Node struct {
	Triangle geom.Triangle
	Inner    NodeInner
}

type NodeInner interface {
	// Child nodes is useful for iterating over a graph
	ChildNodes() []*Node

	// Dummy method that keeps *Node from satisfying NodeInner, so nodes can't be
	// accidentally double wrapped.
	historyNodeInnerTypeHint()
}

func (SinkNode) historyNodeInnerTypeHint()       {}
func (PointSplitNode) historyNodeInnerTypeHint() {}
func (EdgeSplitNode) historyNodeInnerTypeHint()  {}
func (FlipNode) historyNodeInnerTypeHint()       {}

func newSink(triangle geom.Triangle) *Node {
	return &Node{Triangle: triangle.Canonical(), Inner: SinkNode{}}
}

func (n *Node) ChildNodes() []*Node {
	return n.Inner.ChildNodes()
}

func (n *Node) IsLeaf() bool {
	_, ok := n.Inner.(SinkNode)
	return ok
}

// A triangle that is still part of the triangulation.
type SinkNode struct{}

func (SinkNode) ChildNodes() []*Node {
	return nil
}

// A triangle {i0,i1,i2} that a new point p fell strictly inside. The children
// are {i0,i1,p}, {i1,i2,p} and {i2,i0,p}, in that order.
type PointSplitNode struct {
	Children [3]*Node
}

func (node PointSplitNode) ChildNodes() []*Node {
	return node.Children[:]
}

// One of two triangles sharing an edge that a new point fell on. Each of them
// is cut in two along the line from the new point to its opposite vertex.
type EdgeSplitNode struct {
	Children [2]*Node
}

func (node EdgeSplitNode) ChildNodes() []*Node {
	return node.Children[:]
}

// One of two triangles destroyed by an edge flip. Both parents of a flip share
// the same pair of children.
type FlipNode struct {
	Children [2]*Node
}

func (node FlipNode) ChildNodes() []*Node {
	return node.Children[:]
}

// The children of n whose closure contains p. There are one or two of them.
func (n *Node) containingChildren(points geom.Points, p geom.Point) []*Node {
	switch inner := n.Inner.(type) {
	case SinkNode:
		return nil
	case PointSplitNode:
		return containingOfThree(points, inner.Children, p)
	case EdgeSplitNode:
		return containingOfPair(points, inner.Children[0], inner.Children[1], p)
	case FlipNode:
		return containingOfPair(points, inner.Children[0], inner.Children[1], p)
	}
	throw.Invariantf("unknown history node %T", n.Inner)
	return nil
}

// Decide between two triangles sharing an edge. Since triangles are
// clockwise, points inside node0 are on the clockwise side of its directed
// copy of the edge.
func containingOfPair(points geom.Points, node0, node1 *Node, p geom.Point) []*Node {
	i, j, ok := node0.Triangle.CommonEdge(node1.Triangle)
	if !ok {
		throw.Invariantf("history siblings %v and %v share no edge", node0.Triangle, node1.Triangle)
	}
	a, b := node0.Triangle[i], node0.Triangle[j]
	switch points.OrientPoint(a, b, p) {
	case -1:
		return []*Node{node0}
	case 1:
		return []*Node{node1}
	}
	if a.IsSentinel() || b.IsSentinel() {
		// Lines through a sentinel only tie for a point equal to the finite
		// endpoint.
		throw.Degeneratef("point %v lies on edge %v-%v, which ends at a sentinel", p, a, b)
	}
	return []*Node{node0, node1}
}

// Test every pair of the three children on their shared edge. A child that
// wins both of its tests contains the point.
func containingOfThree(points geom.Points, children [3]*Node, p geom.Point) []*Node {
	var counts [3]int
	for k := range children {
		next := geom.CircularIndex(k+1, 3)
		for _, child := range containingOfPair(points, children[k], children[next], p) {
			if child == children[k] {
				counts[k]++
			} else {
				counts[next]++
			}
		}
	}

	var result []*Node
	for k, count := range counts {
		if count == 2 {
			result = append(result, children[k])
		}
	}
	if len(result) == 0 || len(result) > 2 {
		throw.Degeneratef("point %v is in %d children of a split triangle, probably a duplicate point", p, len(result))
	}
	return result
}
