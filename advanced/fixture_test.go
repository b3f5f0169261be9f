package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point rings. This is not a
// full (or even correct) svg parser. It finds whatever the first polygon is,
// then converts that into a CCW ring. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"comb", "hook", "road", "zigzag"}

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

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordinates[0], err)
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordinates[1], err)
		}
		points = append(points, Point{X: x, Y: y})
	}

	if WindingOf(points) == Clockwise {
		points = reversed(points)
	}
	return points
}

func reversed(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[len(points)-1-i] = p
	}
	return result
}

// Give a CCW ring the requested winding.
func withWinding(points []Point, winding Winding) []Point {
	if winding == Clockwise {
		return reversed(points)
	}
	return points
}

// Some ad hoc fixtures

func UnitSquare() []Point {
	return []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func RegularPolygon(n int, radius float64) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A rectangle with an extra vertex in the middle of its bottom edge.
func RectangleWithCollinearVertex() []Point {
	return []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
}

// A quarter-annulus sampled finely, like a subdivided road corner.
func RoadCorner(steps int) []Point {
	var points []Point
	for i := 0; i <= steps; i++ {
		angle := math.Pi / 2 * float64(i) / float64(steps)
		points = append(points, Point{X: 10 * math.Cos(angle), Y: 10 * math.Sin(angle)})
	}
	for i := steps; i >= 0; i-- {
		angle := math.Pi / 2 * float64(i) / float64(steps)
		points = append(points, Point{X: 7 * math.Cos(angle), Y: 7 * math.Sin(angle)})
	}
	return points
}
