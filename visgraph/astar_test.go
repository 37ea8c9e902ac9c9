package visgraph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond builds start -> a -> end (weight 10) and start -> b -> end
// (weight 14) without a direct start-end edge.
func diamond() (*Graph, Vertex, Vertex) {
	g := &Graph{}
	start := g.addVertex(Point{0, 0}, 0)
	end := g.addVertex(Point{8, 0}, 0)
	a := g.addVertex(Point{4, 3}, 0)
	b := g.addVertex(Point{4, -math.Sqrt(33)}, 0)

	g.addEdge(newEdge(-1, start, b, false))
	g.addEdge(newEdge(-1, b, end, false))
	g.addEdge(newEdge(-1, start, a, false))
	g.addEdge(newEdge(-1, a, end, false))
	return g, a, b
}

func TestAStarPicksCheaperRoute(t *testing.T) {
	g, a, _ := diamond()

	path, cost := ShortestPathCost(g)
	assert.Equal(t, []Point{a.Pos, {8, 0}}, path)
	assert.InDelta(t, 10, cost, 1e-12)
}

func TestAStarRelaxesQueuedVertex(t *testing.T) {
	// d is popped before a, so c is first queued through d and then
	// relaxed through a.
	g := &Graph{}
	start := g.addVertex(Point{0, 0}, 0)
	end := g.addVertex(Point{10, 0}, 0)
	a := g.addVertex(Point{3, 1.5}, 0)
	c := g.addVertex(Point{6, 3}, 0)
	d := g.addVertex(Point{2, -0.5}, 0)

	g.addEdge(newEdge(-1, start, d, false))
	g.addEdge(newEdge(-1, d, c, false))
	g.addEdge(newEdge(-1, start, a, false))
	g.addEdge(newEdge(-1, a, c, false))
	g.addEdge(newEdge(-1, c, end, false))

	path, cost := ShortestPathCost(g)
	require.Len(t, path, 3)
	assert.Equal(t, []Point{a.Pos, c.Pos, end.Pos}, path)
	assert.InDelta(t, start.Pos.Distance(a.Pos)+a.Pos.Distance(c.Pos)+c.Pos.Distance(end.Pos), cost, 1e-12)
}

func TestAStarUnreachable(t *testing.T) {
	g := &Graph{}
	start := g.addVertex(Point{0, 0}, 0)
	g.addVertex(Point{10, 0}, 0)
	a := g.addVertex(Point{3, 1}, 0)
	g.addEdge(newEdge(-1, start, a, false))

	path, cost := ShortestPathCost(g)
	assert.NotNil(t, path)
	assert.Empty(t, path)
	assert.True(t, math.IsInf(cost, 1))

	assert.Empty(t, ShortestPath(nil))
}

func TestAStarStartEqualsEnd(t *testing.T) {
	g, err := Build(Point{3, 3}, Point{3, 3}, nil, 0, quiet)
	require.NoError(t, err)

	path, cost := ShortestPathCost(g)
	assert.Equal(t, []Point{{3, 3}}, path)
	assert.Equal(t, 0.0, cost)
}

func TestAStarDeterministicTies(t *testing.T) {
	square := []Point{{4, -1}, {6, -1}, {6, 1}, {4, 1}}

	var first []Point
	for i := 0; i < 10; i++ {
		g, err := Build(Point{0, 0}, Point{10, 0}, [][]Point{square}, 0, quiet)
		require.NoError(t, err)
		path := ShortestPath(g)
		if first == nil {
			first = path
		}
		assert.Equal(t, first, path)
	}
}

func TestPathLength(t *testing.T) {
	assert.Equal(t, 0.0, PathLength(Point{1, 1}, nil))
	assert.Equal(t, 12.0, PathLength(Point{0, 0}, []Point{{3, 4}, {3, 11}}))
}
