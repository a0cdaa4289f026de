package advanced

import (
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the points, which also leaves room for the edges to the
// sentinels
const dbgDrawPadding = 40

// Render the triangulation. Finite triangles are filled, and edges to the
// sentinels are drawn as horizontal rays off the side of the image, toward the
// left for UpperLeft and toward the right for Right.
func (t *Triangulation) Draw(scale float64) *gg.Context {
	bounds := r2.RectFromPoints(t.points...)
	size := bounds.Size()
	width := int(scale*size.X) + dbgDrawPadding*2
	height := int(scale*size.Y) + dbgDrawPadding*2

	// Flip so that y goes up. Text is drawn in the same coordinates, so this is
	// done by hand rather than with a context transform.
	toCanvas := func(p Point) (float64, float64) {
		return dbgDrawPadding + scale*(p.X-bounds.X.Lo),
			float64(height) - dbgDrawPadding - scale*(p.Y-bounds.Y.Lo)
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	for _, tri := range t.Triangles() {
		for k, i := range tri {
			x, y := toCanvas(t.points[i])
			if k == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.Fill()
	}

	c.SetLineWidth(2)
	mesh := t.mesh
	for _, e := range mesh.Edges {
		if !e.InUse || !e.Origin.IsFinite() {
			continue
		}
		dest := mesh.Edges[e.Twin].Origin
		x0, y0 := toCanvas(t.points[e.Origin.Index])
		switch {
		case dest.IsFinite():
			if e.Origin.Index > dest.Index {
				continue
			}
			x1, y1 := toCanvas(t.points[dest.Index])
			c.DrawLine(x0, y0, x1, y1)
			c.SetRGB(0, 1, 0)
		case dest == UpperLeft:
			c.DrawLine(x0, y0, 0, y0)
			c.SetRGBA(1, 1, 0, 0.4)
		default:
			c.DrawLine(x0, y0, float64(width), y0)
			c.SetRGBA(1, 1, 0, 0.4)
		}
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for i, p := range t.points {
		x, y := toCanvas(p)
		c.DrawCircle(x, y, 3)
		c.Fill()
		c.DrawStringAnchored(strconv.Itoa(i), x+4, y-4, 0, 0)
	}
	return c
}

func (t *Triangulation) DrawPNG(path string, scale float64) error {
	return t.Draw(scale).SavePNG(path)
}

// Helper to draw the triangulation and print it to w as an inline terminal
// image (iTerm only) for debugging.
func (t *Triangulation) DbgDraw(w io.Writer, scale float64) error {
	return imgcat.CatImage(t.Draw(scale).Image(), w)
}
