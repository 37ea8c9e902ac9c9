package visgraph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// SimplifyPolygon reduces polygon complexity with the Douglas-Peucker
// algorithm. The polygon is returned unchanged when simplification would
// leave fewer than 3 vertices.
func SimplifyPolygon(vertices []Point, epsilon float64) []Point {
	if len(vertices) <= 3 || epsilon <= 0 {
		return vertices
	}

	ring := simplify.DouglasPeucker(epsilon).Ring(closedRing(vertices))

	// Remove the closing point again
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return vertices
	}

	simplified := make([]Point, len(ring))
	for i, p := range ring {
		simplified[i] = pointFromOrb(p)
	}
	return simplified
}

// SimplifyPolygons simplifies multiple polygons
func SimplifyPolygons(polygons [][]Point, epsilon float64) [][]Point {
	simplified := make([][]Point, len(polygons))
	for i, poly := range polygons {
		simplified[i] = SimplifyPolygon(poly, epsilon)
	}
	return simplified
}

// NormalizeOrientation returns the polygon in counter-clockwise order, with a
// trailing copy of the first vertex removed.
func NormalizeOrientation(vertices []Point) []Point {
	out := append([]Point(nil), vertices...)
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return out
	}

	if closedRing(out).Orientation() == orb.CW {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
