package advanced

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Plain text exports. Both start with the point count and one "x y" line per
// point, followed by a count and one line per item:
//
//	WritePointsAndLines:     "i j" per finite edge
//	WritePointsAndTriangles: "i j k" per finite triangle

func (t *Triangulation) WritePointsAndLines(w io.Writer) error {
	edges := t.Edges()
	return t.writeWithPoints(w, len(edges), func(out *bufio.Writer, i int) {
		fmt.Fprintf(out, "%d %d\n", edges[i][0], edges[i][1])
	})
}

func (t *Triangulation) WritePointsAndTriangles(w io.Writer) error {
	triangles := t.Triangles()
	return t.writeWithPoints(w, len(triangles), func(out *bufio.Writer, i int) {
		tri := triangles[i]
		fmt.Fprintf(out, "%d %d %d\n", tri[0], tri[1], tri[2])
	})
}

func (t *Triangulation) writeWithPoints(w io.Writer, count int, writeItem func(*bufio.Writer, int)) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%d\n", len(t.points))
	for _, p := range t.points {
		fmt.Fprintf(out, "%s %s\n", formatCoordinate(p.X), formatCoordinate(p.Y))
	}
	fmt.Fprintf(out, "%d\n", count)
	for i := 0; i < count; i++ {
		writeItem(out, i)
	}
	return out.Flush()
}

// Shortest representation that parses back to the same float.
func formatCoordinate(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
