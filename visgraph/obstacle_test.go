package visgraph

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unitSquare = []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func assertPointsInDelta(t *testing.T, expected, actual []Point, delta float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, delta, "vertex %d x", i)
		assert.InDelta(t, expected[i].Y, actual[i].Y, delta, "vertex %d y", i)
	}
}

// lineDistance is the distance from p to the infinite line through seg.
func lineDistance(seg LineSegment, p Point) float64 {
	d := seg.P2.vec().Sub(seg.P1.vec())
	return math.Abs(cross(d, p.vec().Sub(seg.P1.vec()))) / d.Len()
}

func TestNewObstacleWithoutGrowth(t *testing.T) {
	o, err := NewObstacle(3, unitSquare, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, o.ID)
	assert.Equal(t, unitSquare, o.Vertices)
	assert.Empty(t, o.Warnings)

	edges := o.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, LineSegment{P1: Point{0, 1}, P2: Point{0, 0}}, edges[3], "last edge closes the polygon")
}

func TestNewObstacleGrowth(t *testing.T) {
	o, err := NewObstacle(1, unitSquare, 1)
	require.NoError(t, err)

	assertPointsInDelta(t, []Point{{-1, -1}, {2, -1}, {2, 2}, {-1, 2}}, o.Vertices, 1e-9)
	assert.Len(t, o.Edges(), 4)
	assert.Equal(t, orb.CCW, o.Ring().Orientation())

	// Input is not modified.
	assert.Equal(t, Point{0, 0}, unitSquare[0])
}

func TestNewObstacleGrowthAwayFromOrigin(t *testing.T) {
	square := []Point{{100, 200}, {110, 200}, {110, 210}, {100, 210}}
	o, err := NewObstacle(1, square, 2.5)
	require.NoError(t, err)

	assertPointsInDelta(t, []Point{{97.5, 197.5}, {112.5, 197.5}, {112.5, 212.5}, {97.5, 212.5}}, o.Vertices, 1e-9)
}

func TestGrowthMonotonicity(t *testing.T) {
	polygons := map[string][]Point{
		"octagon":  Octagon(Point{315, 235}, 150),
		"triangle": {{0, 0}, {10, 0}, {3, 7}},
		"pentagon": {{0, 0}, {4, 0}, {5, 3}, {2, 5}, {-1, 3}},
	}

	for name, polygon := range polygons {
		t.Run(name, func(t *testing.T) {
			n := len(polygon)
			original, err := NewObstacle(1, polygon, 0)
			require.NoError(t, err)
			edges := original.Edges()

			prev := make([]float64, n)
			for _, g := range []float64{0, 0.5, 1, 4, 20} {
				o, err := NewObstacle(1, polygon, g)
				require.NoError(t, err)
				require.Len(t, o.Vertices, n)
				assert.Equal(t, orb.CCW, o.Ring().Orientation())

				for i, v := range o.Vertices {
					d := math.Min(lineDistance(edges[(i+n-1)%n], v), lineDistance(edges[i], v))
					assert.InDelta(t, g, d, 1e-6, "vertex %d sits g away from its edges", i)
					assert.GreaterOrEqual(t, d, prev[i]-1e-9)
					prev[i] = d
				}
			}
		})
	}
}

func TestGrowthDegenerateCorner(t *testing.T) {
	// Vertex 1 sits on a straight edge, so its two offset lines are parallel.
	polygon := []Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {0, 1}}

	o, err := NewObstacle(7, polygon, 0.5)
	require.NoError(t, err)

	require.Len(t, o.Warnings, 1)
	var degenerate *DegenerateObstacleError
	require.True(t, errors.As(o.Warnings[0], &degenerate))
	assert.Equal(t, 7, degenerate.Obstacle)
	assert.Equal(t, 1, degenerate.Vertex)
	assert.Equal(t, ErrParallelLines, errors.Cause(o.Warnings[0]))

	assert.Equal(t, Point{1, 0}, o.Vertices[1], "vertex keeps its un-grown position")
	assertPointsInDelta(t, []Point{{-0.5, -0.5}}, o.Vertices[:1], 1e-9)
	assertPointsInDelta(t, []Point{{2.5, -0.5}, {2.5, 1.5}, {-0.5, 1.5}}, o.Vertices[2:], 1e-9)
}

func TestNewObstacleInvalidInput(t *testing.T) {
	cases := []struct {
		Name     string
		Vertices []Point
		Growth   float64
	}{
		{"too few vertices", []Point{{0, 0}, {1, 0}}, 0},
		{"zero length edge", []Point{{0, 0}, {1, 0}, {1, 0}, {0, 1}}, 0},
		{"not finite", []Point{{0, 0}, {math.NaN(), 0}, {0, 1}}, 0},
		{"negative growth", unitSquare, -1},
		{"infinite growth", unitSquare, math.Inf(1)},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := NewObstacle(1, tc.Vertices, tc.Growth)
			require.Error(t, err)
			assert.Equal(t, ErrInvalidInput, errors.Cause(err))
		})
	}
}

func TestObstacleContains(t *testing.T) {
	o, err := NewObstacle(1, unitSquare, 0)
	require.NoError(t, err)

	assert.True(t, o.Contains(Point{0.5, 0.5}))
	assert.False(t, o.Contains(Point{1, 0.5}))
	assert.False(t, o.Contains(Point{1.5, 0.5}))
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, o.Bound())
}

func TestOctagon(t *testing.T) {
	center := Point{315, 235}
	vertices := Octagon(center, 150)
	require.Len(t, vertices, 8)

	for k, v := range vertices {
		theta := float64(k) * math.Pi / 4
		assert.InDelta(t, center.X+150*math.Cos(theta), v.X, 1e-9)
		assert.InDelta(t, center.Y+150*math.Sin(theta), v.Y, 1e-9)
		assert.InDelta(t, 150, v.Distance(center), 1e-9)
	}

	assertPointsInDelta(t, []Point{{465, 235}, {315, 385}, {165, 235}, {315, 85}},
		[]Point{vertices[0], vertices[2], vertices[4], vertices[6]}, 1e-9)
	assert.Equal(t, orb.CCW, closedRing(vertices).Orientation())
}
