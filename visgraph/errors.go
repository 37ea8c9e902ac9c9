package visgraph

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrParallelLines is returned by VectorLine.Intersect when the two lines
	// have no unique intersection point.
	ErrParallelLines = errors.New("parallel lines")

	// ErrInvalidInput marks precondition violations: polygons with fewer than
	// three vertices, zero-length obstacle edges, non-finite coordinates or a
	// negative agent radius.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooManyVertices is returned when a build would exceed the configured
	// vertex limit.
	ErrTooManyVertices = errors.New("too many vertices")
)

// DegenerateObstacleError reports an obstacle corner that could not be grown
// because the offset lines of its two edges are parallel. The vertex keeps its
// un-grown position.
type DegenerateObstacleError struct {
	Obstacle int
	Vertex   int
}

func (e *DegenerateObstacleError) Error() string {
	return fmt.Sprintf("degenerate obstacle %d: vertex %d kept its original position: %v",
		e.Obstacle, e.Vertex, ErrParallelLines)
}

// Cause lets errors.Cause reach ErrParallelLines.
func (e *DegenerateObstacleError) Cause() error { return ErrParallelLines }

func (e *DegenerateObstacleError) Unwrap() error { return ErrParallelLines }
