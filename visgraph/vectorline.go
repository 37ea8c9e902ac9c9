package visgraph

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// VectorLine is an infinite line in vector form: every point B + t·V.
// V must not be the zero vector.
type VectorLine struct {
	B mgl64.Vec2
	V mgl64.Vec2
}

// NewVectorLine creates the line through start with the given direction.
func NewVectorLine(start, direction Point) VectorLine {
	return VectorLine{B: start.vec(), V: direction.vec()}
}

// PointAt returns B + t·V.
func (l VectorLine) PointAt(t float64) Point {
	return pointFromVec(l.B.Add(l.V.Mul(t)))
}

// IsParallelTo reports whether the two directions are parallel, i.e. the
// sine of the angle between them is below Epsilon.
func (l VectorLine) IsParallelTo(other VectorLine) bool {
	return math.Abs(cross(l.V, other.V)) <= Epsilon*l.V.Len()*other.V.Len()
}

// IsEquivalentTo reports whether both lines are the same line: parallel, with
// start points at the same offset along the shared normal.
func (l VectorLine) IsEquivalentTo(other VectorLine) bool {
	if !l.IsParallelTo(other) {
		return false
	}
	n := mgl64.Vec2{l.V[1], -l.V[0]}.Normalize()
	offset := math.Abs(n.Dot(l.B) - n.Dot(other.B))
	scale := math.Max(1, math.Max(l.B.Len(), math.Max(other.B.Len(), l.B.Sub(other.B).Len())))
	return offset <= Epsilon*scale
}

// Intersect returns the intersection point of the two lines, or
// ErrParallelLines when there is none or infinitely many.
func (l VectorLine) Intersect(other VectorLine) (Point, error) {
	if l.IsParallelTo(other) {
		return Point{}, ErrParallelLines
	}

	// B0 + s·V0 = B1 + t·V1, solved for s with Cramer's rule.
	negV1 := other.V.Mul(-1)
	det := mgl64.Mat2FromCols(l.V, negV1).Det()
	s := mgl64.Mat2FromCols(other.B.Sub(l.B), negV1).Det() / det

	return l.PointAt(s), nil
}

func cross(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}
