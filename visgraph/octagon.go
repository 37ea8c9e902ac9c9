package visgraph

import "math"

// Octagon returns the vertices of a regular octagon in counter-clockwise
// order: vertex k sits at angle 45°·k from center, at distance radius.
func Octagon(center Point, radius float64) []Point {
	vertices := make([]Point, 8)
	for k := 0; k < 8; k++ {
		theta := float64(k) * math.Pi / 4
		vertices[k] = Point{
			X: center.X + math.Cos(theta)*radius,
			Y: center.Y + math.Sin(theta)*radius,
		}
	}
	return vertices
}
