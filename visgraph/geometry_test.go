package visgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentsIntersect(t *testing.T) {
	seg := func(x1, y1, x2, y2 float64) LineSegment {
		return LineSegment{P1: Point{x1, y1}, P2: Point{x2, y2}}
	}

	cases := []struct {
		Name       string
		A, B       LineSegment
		Intersects bool
	}{
		{"crossing", seg(0, 0, 4, 4), seg(0, 4, 4, 0), true},
		{"lines cross outside both", seg(0, 0, 1, 1), seg(3, 0, 4, -1), false},
		{"lines cross outside one", seg(0, 0, 4, 4), seg(0, 4, 1, 3), false},
		{"touching at an endpoint", seg(0, 0, 2, 2), seg(2, 2, 4, 0), true},
		{"T junction", seg(0, 0, 4, 0), seg(2, 0, 2, 3), true},
		{"collinear overlap", seg(0, 0, 4, 0), seg(3, 0, 6, 0), true},
		{"collinear contained", seg(0, 0, 10, 10), seg(2, 2, 3, 3), true},
		{"collinear disjoint", seg(0, 0, 1, 0), seg(2, 0, 3, 0), false},
		{"parallel", seg(0, 0, 4, 0), seg(0, 1, 4, 1), false},
		{"point on segment", seg(1, 1, 1, 1), seg(0, 0, 2, 2), true},
		{"point off segment", seg(1, 0, 1, 0), seg(0, 0, 2, 2), false},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Intersects, tc.A.Intersects(tc.B))
			assert.Equal(t, tc.Intersects, tc.B.Intersects(tc.A))
		})
	}
}

func TestEdgeIncidence(t *testing.T) {
	g := &Graph{}
	a := g.addVertex(Point{0, 0}, 0)
	b := g.addVertex(Point{1, 0}, 0)
	c := g.addVertex(Point{1, 1}, 0)
	d := g.addVertex(Point{1, 0}, 0) // same position as b, different vertex

	ab := newEdge(0, a, b, false)
	bc := newEdge(1, b, c, true)
	dc := newEdge(2, d, c, true)
	ad := newEdge(3, a, d, false)

	assert.True(t, ab.IncidentTo(bc))
	assert.True(t, bc.IncidentTo(dc))
	assert.True(t, ab.IncidentTo(ad))
	assert.False(t, newEdge(4, b, c, false).IncidentTo(newEdge(5, a, d, false)),
		"incidence is by vertex identity, not position")
	assert.Equal(t, c.ID, bc.Other(b.ID))
	assert.Equal(t, b.ID, bc.Other(c.ID))
	assert.Equal(t, 1.0, ab.Weight)
}

func TestStrictlyInside(t *testing.T) {
	ring := closedRing([]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}})

	assert.True(t, strictlyInside(ring, Point{2, 2}))
	assert.False(t, strictlyInside(ring, Point{5, 2}))
	assert.False(t, strictlyInside(ring, Point{4, 2}), "boundary")
	assert.False(t, strictlyInside(ring, Point{0, 0}), "vertex")
}
