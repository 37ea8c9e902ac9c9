package visgraph

const (
	startVertex = 0
	endVertex   = 1
)

// Graph is the visibility graph of one query. It owns its vertices and edges;
// adjacency lists refer to them by index. A Graph is never modified once
// Build returns it.
type Graph struct {
	vertices        []Vertex
	edges           []Edge
	obstacleEdges   []int
	visibilityEdges []int
	obstacles       []*Obstacle
	warnings        []error
}

func (g *Graph) addVertex(pos Point, group int) Vertex {
	v := Vertex{ID: len(g.vertices), Pos: pos, Group: group}
	g.vertices = append(g.vertices, v)
	return v
}

// addEdge stores e under the next edge id and registers both endpoints as
// each other's neighbours.
func (g *Graph) addEdge(e Edge) Edge {
	e.ID = len(g.edges)
	g.edges = append(g.edges, e)
	if e.Solid {
		g.obstacleEdges = append(g.obstacleEdges, e.ID)
	} else {
		g.visibilityEdges = append(g.visibilityEdges, e.ID)
	}

	g.vertices[e.A].Neighbors = append(g.vertices[e.A].Neighbors, Neighbor{Vertex: e.B, Edge: e.ID})
	g.vertices[e.B].Neighbors = append(g.vertices[e.B].Neighbors, Neighbor{Vertex: e.A, Edge: e.ID})
	return e
}

func (g *Graph) addObstacle(o *Obstacle) {
	first := len(g.vertices)
	for _, pos := range o.Vertices {
		g.addVertex(pos, o.ID)
	}

	n := len(o.Vertices)
	for i := 0; i < n; i++ {
		a := g.vertices[first+i]
		b := g.vertices[first+(i+1)%n]
		g.addEdge(newEdge(-1, a, b, true))
	}

	g.obstacles = append(g.obstacles, o)
	g.warnings = append(g.warnings, o.Warnings...)
}

// Start returns the start vertex.
func (g *Graph) Start() Vertex { return g.vertices[startVertex] }

// End returns the end vertex.
func (g *Graph) End() Vertex { return g.vertices[endVertex] }

// StartPoint returns the position of the start vertex.
func (g *Graph) StartPoint() Point { return g.vertices[startVertex].Pos }

// EndPoint returns the position of the end vertex.
func (g *Graph) EndPoint() Point { return g.vertices[endVertex].Pos }

// Vertices returns all vertices: start, end, then obstacle vertices in
// obstacle order.
func (g *Graph) Vertices() []Vertex {
	return append([]Vertex(nil), g.vertices...)
}

// Vertex returns the vertex with the given id.
func (g *Graph) Vertex(id int) Vertex { return g.vertices[id] }

// Edge returns the edge with the given id.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// ObstacleEdges returns the solid obstacle boundary edges.
func (g *Graph) ObstacleEdges() []Edge { return g.collect(g.obstacleEdges) }

// VisibilityEdges returns the traversable line-of-sight edges.
func (g *Graph) VisibilityEdges() []Edge { return g.collect(g.visibilityEdges) }

// AllEdges returns obstacle edges followed by visibility edges.
func (g *Graph) AllEdges() []Edge {
	return append(g.ObstacleEdges(), g.VisibilityEdges()...)
}

// Obstacles returns the grown obstacles the graph was built from.
func (g *Graph) Obstacles() []*Obstacle {
	return append([]*Obstacle(nil), g.obstacles...)
}

// Warnings returns the recoverable problems met during the build.
func (g *Graph) Warnings() []error {
	return append([]error(nil), g.warnings...)
}

// Lines returns the edges as point pairs for inspection.
func Lines(edges []Edge) [][2]Point {
	lines := make([][2]Point, 0, len(edges))
	for _, e := range edges {
		lines = append(lines, [2]Point{e.Segment.P1, e.Segment.P2})
	}
	return lines
}

func (g *Graph) collect(ids []int) []Edge {
	edges := make([]Edge, len(ids))
	for i, id := range ids {
		edges[i] = g.edges[id]
	}
	return edges
}
