package visgraph

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyPolygon(t *testing.T) {
	noisy := []Point{{0, 0}, {2, 0.01}, {4, 0}, {4, 4}, {0, 4}}

	simplified := SimplifyPolygon(noisy, 0.1)
	assert.Equal(t, []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, simplified)

	// Input is left untouched.
	assert.Equal(t, Point{2, 0.01}, noisy[1])

	t.Run("small epsilon keeps everything", func(t *testing.T) {
		assert.Len(t, SimplifyPolygon(noisy, 0.001), len(noisy))
	})

	t.Run("triangle", func(t *testing.T) {
		tri := []Point{{0, 0}, {1, 0}, {0, 1}}
		assert.Equal(t, tri, SimplifyPolygon(tri, 10))
	})

	t.Run("never below three vertices", func(t *testing.T) {
		thin := []Point{{0, 0}, {5, 0.01}, {10, 0}, {5, -0.01}}
		assert.Equal(t, thin, SimplifyPolygon(thin, 1))
	})
}

func TestSimplifyPolygons(t *testing.T) {
	polys := SimplifyPolygons([][]Point{
		{{0, 0}, {2, 0.01}, {4, 0}, {4, 4}, {0, 4}},
		unitSquare,
	}, 0.1)
	require.Len(t, polys, 2)
	assert.Len(t, polys[0], 4)
	assert.Equal(t, unitSquare, polys[1])
}

func TestNormalizeOrientation(t *testing.T) {
	cw := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}

	ccw := NormalizeOrientation(cw)
	require.Len(t, ccw, 4)
	assert.Equal(t, orb.CCW, closedRing(ccw).Orientation())
	assert.Equal(t, Point{1, 0}, ccw[0])

	// Already counter-clockwise input only loses its closing vertex.
	assert.Equal(t, unitSquare, NormalizeOrientation(append(append([]Point(nil), unitSquare...), Point{0, 0})))
	assert.Equal(t, unitSquare, NormalizeOrientation(unitSquare))
}
