package visgraph

// Vertex is a graph node. Group is 0 for the start and end points and the
// owning obstacle's id otherwise.
type Vertex struct {
	ID        int
	Pos       Point
	Group     int
	Neighbors []Neighbor
}

// Neighbor is an adjacency entry: the vertex on the other side of Edge.
type Neighbor struct {
	Vertex int
	Edge   int
}

// Edge connects vertices A and B. Solid edges are obstacle boundaries: they
// block any segment crossing them, but an agent may travel along them.
type Edge struct {
	ID     int
	A, B   int
	Solid  bool
	Weight float64

	// Segment holds the endpoint positions at construction time.
	Segment LineSegment
}

func newEdge(id int, a, b Vertex, solid bool) Edge {
	return Edge{
		ID:      id,
		A:       a.ID,
		B:       b.ID,
		Solid:   solid,
		Weight:  a.Pos.Distance(b.Pos),
		Segment: LineSegment{P1: a.Pos, P2: b.Pos},
	}
}

// IncidentTo checks if the two edges share an endpoint vertex.
func (e Edge) IncidentTo(other Edge) bool {
	return e.A == other.A || e.A == other.B || e.B == other.A || e.B == other.B
}

// Intersects checks if the two edge segments share a point.
func (e Edge) Intersects(other Edge) bool {
	return e.Segment.Intersects(other.Segment)
}

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v int) int {
	if e.A == v {
		return e.B
	}
	return e.A
}
