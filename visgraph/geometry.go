package visgraph

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Epsilon is the relative tolerance shared by the parallel, collinearity and
// bounding box tests.
const Epsilon = 1e-9

// Point is a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

func (p Point) orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func pointFromVec(v mgl64.Vec2) Point {
	return Point{X: v[0], Y: v[1]}
}

func pointFromOrb(p orb.Point) Point {
	return Point{X: p[0], Y: p[1]}
}

// tolerance scales Epsilon to the magnitude of the given points.
func tolerance(points ...Point) float64 {
	scale := 1.0
	for _, p := range points {
		scale = math.Max(scale, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return Epsilon * scale
}

// LineSegment represents a line segment between two points
type LineSegment struct {
	P1, P2 Point
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// Midpoint returns the point halfway between P1 and P2.
func (s LineSegment) Midpoint() Point {
	return Point{X: (s.P1.X + s.P2.X) / 2, Y: (s.P1.Y + s.P2.Y) / 2}
}

// Line returns the infinite line through the segment, starting at P1.
func (s LineSegment) Line() VectorLine {
	return NewVectorLine(s.P1, Point{X: s.P2.X - s.P1.X, Y: s.P2.Y - s.P1.Y})
}

// Bound returns the axis-aligned bounding box of the segment.
func (s LineSegment) Bound() orb.Bound {
	return orb.MultiPoint{s.P1.orb(), s.P2.orb()}.Bound()
}

func (s LineSegment) degenerate() bool {
	return s.Length() <= tolerance(s.P1, s.P2)
}

// inBounds checks if q lies in the closed bounding box of the segment. It is
// only a segment test for points already known to be collinear with it.
func (s LineSegment) inBounds(q Point) bool {
	tol := tolerance(s.P1, s.P2, q)
	return q.X <= math.Max(s.P1.X, s.P2.X)+tol && q.X >= math.Min(s.P1.X, s.P2.X)-tol &&
		q.Y <= math.Max(s.P1.Y, s.P2.Y)+tol && q.Y >= math.Min(s.P1.Y, s.P2.Y)-tol
}

// distanceTo returns the distance from q to the closest point of the segment.
func (s LineSegment) distanceTo(q Point) float64 {
	a, b, p := s.P1.vec(), s.P2.vec(), q.vec()
	d := b.Sub(a)
	lenSqr := d.LenSqr()
	if lenSqr == 0 {
		return q.Distance(s.P1)
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(d)/lenSqr))
	return p.Sub(a.Add(d.Mul(t))).Len()
}

// Intersects checks if two segments share at least one point.
//
// Collinear segments intersect when an endpoint of one lies in the bounding
// box of the other. Otherwise the intersection point of the two lines has to
// lie in both bounding boxes; parallel lines that are not collinear never
// intersect.
func (s LineSegment) Intersects(other LineSegment) bool {
	if s.degenerate() {
		return other.distanceTo(s.P1) <= tolerance(other.P1, other.P2, s.P1)
	}
	if other.degenerate() {
		return s.distanceTo(other.P1) <= tolerance(s.P1, s.P2, other.P1)
	}

	l0, l1 := s.Line(), other.Line()
	if l0.IsEquivalentTo(l1) {
		return s.inBounds(other.P1) || s.inBounds(other.P2) ||
			other.inBounds(s.P1) || other.inBounds(s.P2)
	}

	p, err := l0.Intersect(l1)
	if err != nil {
		return false
	}
	return s.inBounds(p) && other.inBounds(p)
}

// closedRing converts a vertex cycle to a closed orb ring.
func closedRing(vertices []Point) orb.Ring {
	ring := make(orb.Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		ring = append(ring, v.orb())
	}
	if len(vertices) > 0 {
		ring = append(ring, vertices[0].orb())
	}
	return ring
}

// strictlyInside checks if p lies inside the ring and not on its boundary.
func strictlyInside(ring orb.Ring, p Point) bool {
	if !planar.RingContains(ring, p.orb()) {
		return false
	}
	for i := 0; i < len(ring)-1; i++ {
		edge := LineSegment{P1: pointFromOrb(ring[i]), P2: pointFromOrb(ring[i+1])}
		if edge.distanceTo(p) <= tolerance(edge.P1, edge.P2, p) {
			return false
		}
	}
	return true
}
