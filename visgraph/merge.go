package visgraph

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// MergeOverlappingPolygons drops polygons contained in another one and
// replaces each group of overlapping polygons by their union. Fewer, larger
// obstacles mean fewer vertices for the visibility build. Results are
// counter-clockwise.
func MergeOverlappingPolygons(polygons [][]Point) [][]Point {
	if len(polygons) <= 1 {
		return polygons
	}

	filtered := removeContainedPolygons(polygons)

	// Group polygons that overlap, directly or through a chain of others.
	group := make([]int, len(filtered))
	for i := range group {
		group[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for group[i] != i {
			group[i] = group[group[i]]
			i = group[i]
		}
		return i
	}
	for i := 0; i < len(filtered); i++ {
		for j := i + 1; j < len(filtered); j++ {
			if polygonsOverlap(filtered[i], filtered[j]) {
				group[find(j)] = find(i)
			}
		}
	}

	members := make(map[int][]int)
	var order []int
	for i := range filtered {
		root := find(i)
		if _, ok := members[root]; !ok {
			order = append(order, root)
		}
		members[root] = append(members[root], i)
	}

	result := make([][]Point, 0, len(order))
	for _, root := range order {
		idx := members[root]
		if len(idx) == 1 {
			result = append(result, NormalizeOrientation(filtered[idx[0]]))
			continue
		}

		union := toClipPolygon(filtered[idx[0]])
		for _, k := range idx[1:] {
			union = union.Construct(polyclip.UNION, toClipPolygon(filtered[k]))
		}
		result = append(result, outerContours(union)...)
	}

	return result
}

// removeContainedPolygons removes polygons that are fully contained within other polygons
func removeContainedPolygons(polygons [][]Point) [][]Point {
	result := make([][]Point, 0, len(polygons))
	contained := make([]bool, len(polygons))

	for i := 0; i < len(polygons); i++ {
		if contained[i] {
			continue
		}

		for j := 0; j < len(polygons); j++ {
			if i == j || contained[j] {
				continue
			}

			if isPolygonContainedIn(polygons[i], polygons[j]) {
				contained[i] = true
				break
			}
		}
	}

	for i := 0; i < len(polygons); i++ {
		if !contained[i] {
			result = append(result, polygons[i])
		}
	}

	return result
}

// isPolygonContainedIn checks if polygon a is fully contained within polygon b
func isPolygonContainedIn(a, b []Point) bool {
	ringA, ringB := closedRing(a), closedRing(b)

	boundA, boundB := ringA.Bound(), ringB.Bound()
	if !boundB.Contains(boundA.Min) || !boundB.Contains(boundA.Max) {
		return false
	}

	for _, v := range ringA {
		if !planar.RingContains(ringB, v) {
			return false
		}
	}

	// All vertices inside does not rule out a concave b cutting through a.
	return !boundariesCross(a, b)
}

// polygonsOverlap checks if two polygons share any area or boundary point.
func polygonsOverlap(a, b []Point) bool {
	ringA, ringB := closedRing(a), closedRing(b)
	if !ringA.Bound().Intersects(ringB.Bound()) {
		return false
	}
	if boundariesCross(a, b) {
		return true
	}
	return planar.RingContains(ringB, ringA[0]) || planar.RingContains(ringA, ringB[0])
}

func boundariesCross(a, b []Point) bool {
	for _, ea := range (&Obstacle{Vertices: a}).Edges() {
		for _, eb := range (&Obstacle{Vertices: b}).Edges() {
			if ea.Intersects(eb) {
				return true
			}
		}
	}
	return false
}

func toClipPolygon(vertices []Point) polyclip.Polygon {
	contour := make(polyclip.Contour, len(vertices))
	for i, v := range vertices {
		contour[i] = polyclip.Point{X: v.X, Y: v.Y}
	}
	return polyclip.Polygon{contour}
}

// outerContours returns the contours of p that are not holes of another
// contour; holes are filled in since the inside of an obstacle is never
// reachable.
func outerContours(p polyclip.Polygon) [][]Point {
	rings := make([]orb.Ring, 0, len(p))
	vertices := make([][]Point, 0, len(p))
	for _, contour := range p {
		var pts []Point
		for _, cp := range contour {
			pt := Point{X: cp.X, Y: cp.Y}
			if len(pts) > 0 && pts[len(pts)-1] == pt {
				continue
			}
			pts = append(pts, pt)
		}
		if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		pts = dropCollinear(pts)
		if len(pts) < 3 {
			continue
		}
		vertices = append(vertices, pts)
		rings = append(rings, closedRing(pts))
	}

	var outer [][]Point
	for i, pts := range vertices {
		hole := false
		for j := range vertices {
			if i != j && isPolygonContainedIn(pts, vertices[j]) {
				hole = true
				break
			}
		}
		if !hole && planar.Area(rings[i]) != 0 {
			outer = append(outer, NormalizeOrientation(pts))
		}
	}
	return outer
}

// dropCollinear removes vertices lying on the line through their neighbours,
// such as the ends of an edge two merged polygons shared. Growing such a
// vertex has no unique offset corner.
func dropCollinear(pts []Point) []Point {
	out := append([]Point(nil), pts...)
	for changed := true; changed && len(out) >= 3; {
		changed = false
		for i := 0; i < len(out) && len(out) >= 3; i++ {
			n := len(out)
			prev, cur, next := out[(i+n-1)%n], out[i], out[(i+1)%n]
			in := LineSegment{P1: prev, P2: cur}
			outgoing := LineSegment{P1: cur, P2: next}
			if in.degenerate() || outgoing.degenerate() || in.Line().IsParallelTo(outgoing.Line()) {
				out = append(out[:i], out[i+1:]...)
				changed = true
				i--
			}
		}
	}
	return out
}
