package visgraph

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Obstacle is a closed, counter-clockwise polygon. Edge i joins vertex i and
// vertex (i+1) mod n, so there are as many edges as vertices.
type Obstacle struct {
	ID       int
	Vertices []Point

	// Warnings holds a DegenerateObstacleError for every corner that could
	// not be grown.
	Warnings []error

	ring orb.Ring
}

// NewObstacle builds an obstacle from a counter-clockwise vertex list and
// grows it outward by growth to account for the agent radius.
func NewObstacle(id int, vertices []Point, growth float64) (*Obstacle, error) {
	if err := validatePolygon(vertices); err != nil {
		return nil, errors.Wrapf(err, "obstacle %d", id)
	}
	if growth < 0 || math.IsNaN(growth) || math.IsInf(growth, 0) {
		return nil, errors.Wrapf(ErrInvalidInput, "obstacle %d: growth %v", id, growth)
	}

	obstacle := &Obstacle{
		ID:       id,
		Vertices: append([]Point(nil), vertices...),
	}
	if growth > 0 {
		obstacle.Vertices, obstacle.Warnings = grow(id, obstacle.Vertices, growth)
	}
	obstacle.ring = closedRing(obstacle.Vertices)

	return obstacle, nil
}

// Edges returns the boundary segments, edge i running from vertex i to
// vertex i+1.
func (o *Obstacle) Edges() []LineSegment {
	n := len(o.Vertices)
	edges := make([]LineSegment, n)
	for i := 0; i < n; i++ {
		edges[i] = LineSegment{P1: o.Vertices[i], P2: o.Vertices[(i+1)%n]}
	}
	return edges
}

// Ring returns the obstacle boundary as a closed orb ring.
func (o *Obstacle) Ring() orb.Ring {
	return o.ring.Clone()
}

// Bound returns the axis-aligned bounding box of the obstacle.
func (o *Obstacle) Bound() orb.Bound {
	return o.ring.Bound()
}

// Contains checks if p lies strictly inside the obstacle. Points on the
// boundary are outside.
func (o *Obstacle) Contains(p Point) bool {
	return strictlyInside(o.ring, p)
}

func validatePolygon(vertices []Point) error {
	n := len(vertices)
	if n < 3 {
		return errors.Wrapf(ErrInvalidInput, "polygon has %d vertices, need at least 3", n)
	}
	for i, v := range vertices {
		if !v.finite() {
			return errors.Wrapf(ErrInvalidInput, "vertex %d is not finite", i)
		}
	}
	for i := 0; i < n; i++ {
		edge := LineSegment{P1: vertices[i], P2: vertices[(i+1)%n]}
		if edge.degenerate() {
			return errors.Wrapf(ErrInvalidInput, "edge %d has zero length", i)
		}
	}
	return nil
}

// grow offsets every edge outward by value and moves each vertex to the
// intersection of the offset lines of its two edges.
func grow(id int, vertices []Point, value float64) ([]Point, []error) {
	n := len(vertices)

	lines := make([]VectorLine, n)
	for i := 0; i < n; i++ {
		a := vertices[i].vec()
		b := vertices[(i+1)%n].vec()
		direction := b.Sub(a)

		// Outward for counter-clockwise polygons.
		normal := mgl64.Vec2{direction[1], -direction[0]}

		// Orthogonal projection of the edge start onto the normal, pushed
		// out along the unit normal: a point on the offset line.
		projection := normal.Mul(a.Dot(normal) / normal.Dot(normal))
		start := projection.Add(normal.Normalize().Mul(value))

		lines[i] = VectorLine{B: start, V: direction}
	}

	grown := make([]Point, n)
	var warnings []error
	for i := 0; i < n; i++ {
		prev := lines[(i+n-1)%n]
		vertex, err := prev.Intersect(lines[i])
		if err != nil {
			warnings = append(warnings, &DegenerateObstacleError{Obstacle: id, Vertex: i})
			grown[i] = vertices[i]
			continue
		}
		grown[i] = vertex
	}

	return grown, warnings
}
