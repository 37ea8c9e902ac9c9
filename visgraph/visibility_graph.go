package visgraph

import (
	"io"
	"log"
	"math"
	"time"

	"github.com/pkg/errors"
)

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	logger      *log.Logger
	index       bool
	maxVertices int
}

// WithLogger sends build progress to logger instead of the standard logger.
// A nil logger discards it.
func WithLogger(logger *log.Logger) Option {
	return func(o *buildOptions) {
		if logger == nil {
			logger = log.New(io.Discard, "", 0)
		}
		o.logger = logger
	}
}

// WithSpatialIndex tests each candidate only against the obstacle edges an
// R-tree reports near it. The resulting edge set is the same as without it.
func WithSpatialIndex() Option {
	return func(o *buildOptions) {
		o.index = true
	}
}

// WithMaxVertices makes Build fail with ErrTooManyVertices when the graph
// would hold more than n vertices. Zero disables the limit.
func WithMaxVertices(n int) Option {
	return func(o *buildOptions) {
		o.maxVertices = n
	}
}

// Build constructs the visibility graph for one query: start and end, plus
// every obstacle grown by agentRadius. Obstacle vertex lists must be in
// counter-clockwise order.
//
// Only invalid input fails the build. Corners that cannot be grown are
// reported through Graph.Warnings.
func Build(start, end Point, obstacles [][]Point, agentRadius float64, opts ...Option) (*Graph, error) {
	options := buildOptions{logger: log.Default()}
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.logger

	if !start.finite() || !end.finite() {
		return nil, errors.Wrap(ErrInvalidInput, "start and end must be finite")
	}
	if agentRadius < 0 || math.IsNaN(agentRadius) || math.IsInf(agentRadius, 0) {
		return nil, errors.Wrapf(ErrInvalidInput, "agent radius %v", agentRadius)
	}

	startTime := time.Now()

	graph := &Graph{}
	graph.addVertex(start, 0)
	graph.addVertex(end, 0)

	for i, vertices := range obstacles {
		obstacle, err := NewObstacle(i+1, vertices, agentRadius)
		if err != nil {
			return nil, err
		}
		for _, warning := range obstacle.Warnings {
			logger.Printf("⚠️  %v\n", warning)
		}
		graph.addObstacle(obstacle)
	}

	totalNodes := len(graph.vertices)
	if options.maxVertices > 0 && totalNodes > options.maxVertices {
		return nil, errors.Wrapf(ErrTooManyVertices, "%d vertices, limit is %d", totalNodes, options.maxVertices)
	}

	logger.Printf("   Obstacles: %d, vertices: %d, obstacle edges: %d\n",
		len(graph.obstacles), totalNodes, len(graph.obstacleEdges))

	var index *SpatialIndex
	if options.index {
		index = NewSpatialIndex(graph)
	}

	checked, added := graph.constructWithNaive(index)

	logger.Printf("   Candidates checked: %d, visibility edges added: %d\n", checked, added)
	logger.Printf("   ⏱️  Build time: %s\n", time.Since(startTime))

	return graph, nil
}

// constructWithNaive connects every pair of vertices whose segment crosses no
// obstacle: O(n²) candidates, each tested against the obstacle edges.
func (g *Graph) constructWithNaive(index *SpatialIndex) (checked, added int) {
	n := len(g.vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := g.vertices[i], g.vertices[j]

			// Vertices of one obstacle are only joined by its boundary.
			if a.Group != 0 && a.Group == b.Group {
				continue
			}

			checked++
			candidate := newEdge(-1, a, b, false)
			if g.blocked(candidate, index) {
				continue
			}

			g.addEdge(candidate)
			added++
		}
	}
	return checked, added
}

// blocked checks if candidate crosses an obstacle edge it is not incident to,
// or runs through the interior of an obstacle.
func (g *Graph) blocked(candidate Edge, index *SpatialIndex) bool {
	solid := g.obstacleEdges
	if index != nil {
		solid = index.EdgesNear(candidate.Segment)
	}
	for _, id := range solid {
		edge := g.edges[id]
		if candidate.IncidentTo(edge) {
			continue
		}
		if candidate.Intersects(edge) {
			return true
		}
	}

	mid := candidate.Segment.Midpoint()
	obstacles := g.obstacles
	if index != nil {
		obstacles = index.ObstaclesAt(mid)
	}
	for _, o := range obstacles {
		if o.Contains(mid) {
			return true
		}
	}
	return false
}
