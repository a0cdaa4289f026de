package history

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/delaunay/dbg"
)

func (n *Node) String() string {
	var children []string
	for _, child := range n.ChildNodes() {
		children = append(children, child.DbgName())
	}
	return fmt.Sprintf("%s %v -> [%s]", n.DbgName(), n.Triangle, strings.Join(children, ", "))
}

// Readable name for the node, colored by kind: leaves that touch a sentinel
// are cyan, other leaves green, and destroyed triangles red.
func (n *Node) DbgName() string {
	name := dbg.Name(n)
	switch {
	case !n.IsLeaf():
		name = aurora.Red(name).String()
	case !n.Triangle.IsFinite():
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

// Multiline dump of every node in the graph, for debugging.
func (h *History) String() string {
	var lines []string
	iter := NewGraphIterator(h.Root)
	for node := iter.Next(); node != nil; node = iter.Next() {
		lines = append(lines, node.String())
	}
	return strings.Join(lines, "\n")
}
