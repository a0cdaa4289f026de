package advanced

import (
	"embed"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file turns the svg fixtures into point sets. It is not a real svg
// reader: every <circle> contributes its center, and every <polygon>
// contributes its vertices, in that order. The largest point is then moved to
// index 0. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var points []Point
	for _, circleEl := range rootEl.FindAll("circle") {
		points = append(points, Point{
			X: parseCoordinate(circleEl.Attributes["cx"]),
			Y: parseCoordinate(circleEl.Attributes["cy"]),
		})
	}
	for _, polygonEl := range rootEl.FindAll("polygon") {
		for _, pointString := range strings.Split(polygonEl.Attributes["points"], " ") {
			if pointString == "" {
				continue
			}
			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			points = append(points, Point{
				X: parseCoordinate(pointStrings[0]),
				Y: parseCoordinate(pointStrings[1]),
			})
		}
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}

	MoveLargestFirst(points)
	return points
}

func parseCoordinate(s string) float64 {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return x
}

// Some ad hoc generated fixtures

// Uniform random points in a square. Ties have probability zero.
func RandomPoints(rng *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	MoveLargestFirst(points)
	return points
}

// A size x size integer grid. Full of collinear and cocircular points.
func Grid(size int) []Point {
	var points []Point
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			points = append(points, Point{X: float64(x), Y: float64(y)})
		}
	}
	MoveLargestFirst(points)
	return points
}

// An apex above n collinear points on the x axis.
func Fan(n int) []Point {
	points := []Point{{X: 0, Y: 5}}
	for i := 0; i < n; i++ {
		points = append(points, Point{X: float64(i), Y: 0})
	}
	return points
}
