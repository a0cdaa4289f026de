package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1.5},
		{X: -1, Y: -1},
	}
	assert.Equal(t, 2, MoveLargestFirst(points))

	triangles, err := Triangulate(points, 0)
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)
}

func TestNew(t *testing.T) {
	points := []Point{{X: 0, Y: 10}, {X: 0, Y: 0}, {X: 3, Y: 5}, {X: -5, Y: 5}}
	triangulation, err := New(points, 42, WithConsistencyChecks(true))
	require.NoError(t, err)
	assert.Equal(t, []Triangle{{0, 2, 3}, {1, 3, 2}}, triangulation.Triangles())
	assert.ElementsMatch(t, []int{0, 1, 2}, triangulation.Neighbors(3))
}

func TestErrors(t *testing.T) {
	_, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, 0)
	assert.ErrorIs(t, err, ErrPreconditionViolation)

	_, err = Triangulate([]Point{{X: 0, Y: 10}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}}, 0)
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestCompareYX(t *testing.T) {
	assert.Equal(t, 1, CompareYX(Point{X: 0, Y: 1}, Point{X: 5, Y: 0}))
	assert.Equal(t, -1, CompareYX(Point{X: 0, Y: 1}, Point{X: 5, Y: 1}))
	assert.Equal(t, 0, CompareYX(Point{X: 2, Y: 1}, Point{X: 2, Y: 1}))
}
