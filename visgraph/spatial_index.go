package visgraph

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// edgeEntry wraps a solid edge for R-tree storage
type edgeEntry struct {
	ID   int
	BBox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *edgeEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// obstacleEntry wraps an obstacle for R-tree storage
type obstacleEntry struct {
	Obstacle *Obstacle
	BBox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (o *obstacleEntry) Bounds() rtreego.Rect {
	return o.BBox
}

// SpatialIndex answers "which solid edges / obstacles could touch this
// region" so the visibility build can skip far-away geometry. Every query
// returns a superset of the true answer.
type SpatialIndex struct {
	edges     *rtreego.Rtree
	obstacles *rtreego.Rtree
}

// NewSpatialIndex indexes the solid edges and obstacles of g.
func NewSpatialIndex(g *Graph) *SpatialIndex {
	edges := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, id := range g.obstacleEdges {
		e := g.edges[id]
		edges.Insert(&edgeEntry{ID: id, BBox: boundingRect(e.Segment.P1, e.Segment.P2)})
	}

	obstacles := rtreego.NewTree(2, 25, 50)
	for _, o := range g.obstacles {
		obstacles.Insert(&obstacleEntry{Obstacle: o, BBox: boundingRect(o.Vertices...)})
	}

	return &SpatialIndex{edges: edges, obstacles: obstacles}
}

// EdgesNear returns the ids of solid edges whose bounding box overlaps the
// bounding box of seg.
func (si *SpatialIndex) EdgesNear(seg LineSegment) []int {
	results := si.edges.SearchIntersect(boundingRect(seg.P1, seg.P2))
	ids := make([]int, 0, len(results))
	for _, item := range results {
		ids = append(ids, item.(*edgeEntry).ID)
	}
	return ids
}

// ObstaclesAt returns the obstacles whose bounding box contains p.
func (si *SpatialIndex) ObstaclesAt(p Point) []*Obstacle {
	results := si.obstacles.SearchIntersect(boundingRect(p))
	obstacles := make([]*Obstacle, 0, len(results))
	for _, item := range results {
		obstacles = append(obstacles, item.(*obstacleEntry).Obstacle)
	}
	return obstacles
}

// boundingRect computes the axis-aligned bounding box of the points, padded
// well beyond the geometry tolerance so that touching boxes still overlap
// and degenerate boxes keep a positive size.
func boundingRect(points ...Point) rtreego.Rect {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	pad := 1000 * tolerance(points...)
	rect, err := rtreego.NewRect(
		rtreego.Point{minX - pad, minY - pad},
		[]float64{maxX - minX + 2*pad, maxY - minY + 2*pad},
	)
	if err != nil {
		// Lengths are positive for finite input, which Build validates.
		panic(err)
	}
	return rect
}
