package geom

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/osuushi/delaunay/internal/throw"
)

func TestOrientation(t *testing.T) {
	cases := []struct {
		name       string
		p0, p1, p2 Point
		expected   int
	}{
		{"counterclockwise", Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}, 1},
		{"clockwise", Point{X: 0, Y: 0}, Point{X: 0, Y: 1}, Point{X: 1, Y: 0}, -1},
		{"collinear", Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, Point{X: 3, Y: 3}, 0},
		{"clockwise wide", Point{X: -10, Y: 0}, Point{X: 43, Y: 2}, Point{X: 0, Y: -2}, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Orientation(c.p0, c.p1, c.p2))
			// Rotating the arguments never changes the answer
			assert.Equal(t, c.expected, Orientation(c.p1, c.p2, c.p0))
			assert.Equal(t, c.expected, Orientation(c.p2, c.p0, c.p1))
			// Swapping two of them always flips it
			assert.Equal(t, -c.expected, Orientation(c.p1, c.p0, c.p2))
		})
	}
}

func TestOrientationUnderRigidMotion(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			a, b, c := Point{X: 0, Y: -1}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}
			expected := 1
			if cwI == 1 {
				a, b = b, a
				expected = -1
			}
			assertOrientation := func() {
				assert.Equal(t, expected, Orientation(a, b, c))
			}
			assertOrientation()

			// Rotate the triangle repeatedly by a weird angle
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				a, b, c = rotatePoint(a, angle), rotatePoint(b, angle), rotatePoint(c, angle)
				assertOrientation()
			}

			// Translate the triangle and do the whole rotation thing again
			offset := Point{X: 5, Y: 3}
			a, b, c = a.Add(offset), b.Add(offset), c.Add(offset)
			for i := 0; i < 14; i++ {
				a, b, c = rotatePoint(a, angle), rotatePoint(b, angle), rotatePoint(c, angle)
				assertOrientation()
			}
		})
	}
}

func TestInCircle(t *testing.T) {
	p0 := Point{X: 0, Y: 1}
	p1 := Point{X: 1, Y: 0}
	p2 := Point{X: 0, Y: -1}
	require.Equal(t, -1, Orientation(p0, p1, p2))

	assert.True(t, InCircle(p0, p1, p2, Point{X: 0.9, Y: 0}))
	assert.False(t, InCircle(p0, p1, p2, Point{X: 1.1, Y: 0}))
	assert.True(t, InCircle(p0, p1, p2, Point{X: 0, Y: 0}))
	assert.False(t, InCircle(p0, p1, p2, Point{X: -5, Y: 5}))

	// The circle through the points is not "strictly inside" itself
	assert.False(t, InCircle(p0, p1, p2, Point{X: -1, Y: 0}))

	t.Run("sign convention", func(t *testing.T) {
		assert.Less(t, InCircleDeterminant(p0, p1, p2, Point{X: 0.9, Y: 0}), 0.0)
		assert.Greater(t, InCircleDeterminant(p0, p1, p2, Point{X: 1.1, Y: 0}), 0.0)
	})

	t.Run("counterclockwise input is rejected", func(t *testing.T) {
		err := catch(func() { InCircle(p2, p1, p0, Point{}) })
		assert.True(t, errors.Is(err, throw.ErrInternalInvariantViolation))
	})
}

// The reduced 3x3 determinant must agree with the literal 4x4 one.
func TestInCircleDeterminantMatchesFullMatrix(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		var ps [4]Point
		for j := range ps {
			ps[j] = Point{X: r.Float64()*20 - 10, Y: r.Float64()*20 - 10}
		}
		data := make([]float64, 0, 16)
		for _, p := range ps {
			data = append(data, p.X, p.Y, p.X*p.X+p.Y*p.Y, 1)
		}
		expected := mat.Det(mat.NewDense(4, 4, data))
		actual := InCircleDeterminant(ps[0], ps[1], ps[2], ps[3])
		assert.InDelta(t, expected, actual, 1e-6*math.Max(1, math.Abs(expected)))
	}
}

func TestCompareYX(t *testing.T) {
	assert.Equal(t, 1, CompareYX(Point{X: 0, Y: 2}, Point{X: 5, Y: 1}))
	assert.Equal(t, -1, CompareYX(Point{X: 5, Y: 1}, Point{X: 0, Y: 2}))
	assert.Equal(t, 1, CompareYX(Point{X: 3, Y: 1}, Point{X: 2, Y: 1}))
	assert.Equal(t, -1, CompareYX(Point{X: 2, Y: 1}, Point{X: 3, Y: 1}))
	assert.Equal(t, 0, CompareYX(Point{X: 2, Y: 1}, Point{X: 2, Y: 1}))
}

func TestLargestPoint(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 3}, {X: 4, Y: 3}, {X: 9, Y: 2}}
	assert.Equal(t, 2, LargestPoint(points))
}

func TestOrientWithSentinels(t *testing.T) {
	ps := Points{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
	}
	low, high, highLeft := Finite(0), Finite(1), Finite(2)

	t.Run("finite vertices use the cross product", func(t *testing.T) {
		assert.Equal(t, Orientation(ps[0], ps[1], ps[2]), ps.Orient(low, high, highLeft))
	})

	t.Run("upper left", func(t *testing.T) {
		// The line from UpperLeft through high passes above low
		assert.Equal(t, -1, ps.Orient(UpperLeft, high, low))
		assert.Equal(t, 1, ps.Orient(UpperLeft, low, high))
		// Same height: highLeft is below high in y-then-x order
		assert.Equal(t, -1, ps.Orient(UpperLeft, high, highLeft))
		// Rotations agree
		assert.Equal(t, -1, ps.Orient(high, low, UpperLeft))
		assert.Equal(t, -1, ps.Orient(low, UpperLeft, high))
	})

	t.Run("right", func(t *testing.T) {
		assert.Equal(t, -1, ps.Orient(Right, low, high))
		assert.Equal(t, 1, ps.Orient(Right, high, low))
		assert.Equal(t, -1, ps.Orient(low, high, Right))
		assert.Equal(t, -1, ps.Orient(high, Right, low))
	})

	t.Run("both sentinels", func(t *testing.T) {
		for _, v := range []VertexID{low, high, highLeft} {
			assert.Equal(t, 1, ps.Orient(UpperLeft, Right, v))
			assert.Equal(t, 1, ps.Orient(v, UpperLeft, Right))
			assert.Equal(t, -1, ps.Orient(Right, UpperLeft, v))
			assert.Equal(t, -1, ps.Orient(UpperLeft, v, Right))
		}
	})

	t.Run("the initial triangle is clockwise", func(t *testing.T) {
		// With high as the largest point. This is the triangle every
		// triangulation starts from.
		assert.Equal(t, -1, ps.Orient(UpperLeft, high, Right))
	})

	t.Run("ties along a sentinel line", func(t *testing.T) {
		assert.Equal(t, 0, ps.OrientPoint(UpperLeft, high, ps[1]))
		assert.Equal(t, 0, ps.OrientPoint(high, Right, ps[1]))
	})

	t.Run("sentinels have no coordinates", func(t *testing.T) {
		err := catch(func() { ps.At(Right) })
		assert.True(t, errors.Is(err, throw.ErrInternalInvariantViolation))
	})
}

// Helpers

func rotatePoint(point Point, angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: point.X*cos - point.Y*sin,
		Y: point.X*sin + point.Y*cos,
	}
}

func catch(fn func()) (err error) {
	defer func() {
		err = throw.HandleTriangulatePanicRecover(recover())
	}()
	fn()
	return nil
}
