package main

import (
	"github.com/pkg/errors"

	"visgraph-planner/visgraph"
)

// RouteRequest is one planning query. Merge, Simplify and SpatialIndex are
// optional preprocessing and build settings.
type RouteRequest struct {
	Start        visgraph.Point     `json:"start"`
	End          visgraph.Point     `json:"end"`
	AgentRadius  float64            `json:"agentRadius"`
	Obstacles    [][]visgraph.Point `json:"obstacles"`
	Merge        bool               `json:"merge,omitempty"`
	Simplify     float64            `json:"simplify,omitempty"`
	SpatialIndex bool               `json:"spatialIndex,omitempty"`
}

type RouteResponse struct {
	Path     []visgraph.Point `json:"path"`
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Length   *float64         `json:"length,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
}

type GraphResponse struct {
	Vertices        []visgraph.Point    `json:"vertices"`
	ObstacleLines   [][2]visgraph.Point `json:"obstacleLines"`
	VisibilityLines [][2]visgraph.Point `json:"visibilityLines"`
	Warnings        []string            `json:"warnings,omitempty"`
}

// build preprocesses the obstacles as requested and builds the graph.
func (req RouteRequest) build(opts ...visgraph.Option) (*visgraph.Graph, error) {
	// Growth pushes edges outward only for counter-clockwise polygons, and
	// preprocessing would hide malformed polygons from Build.
	obstacles := make([][]visgraph.Point, len(req.Obstacles))
	for i, o := range req.Obstacles {
		obstacles[i] = visgraph.NormalizeOrientation(o)
		if len(obstacles[i]) < 3 {
			return nil, errors.Wrapf(visgraph.ErrInvalidInput, "obstacle %d has %d vertices", i+1, len(obstacles[i]))
		}
	}
	if req.Merge {
		obstacles = visgraph.MergeOverlappingPolygons(obstacles)
	}
	if req.Simplify > 0 {
		obstacles = visgraph.SimplifyPolygons(obstacles, req.Simplify)
	}
	if req.SpatialIndex {
		opts = append(opts, visgraph.WithSpatialIndex())
	}
	return visgraph.Build(req.Start, req.End, obstacles, req.AgentRadius, opts...)
}

func newRouteResponse(graph *visgraph.Graph) RouteResponse {
	path, cost := visgraph.ShortestPathCost(graph)
	response := RouteResponse{
		Path:     path,
		Success:  len(path) > 0,
		Warnings: warningStrings(graph),
	}
	if response.Success {
		response.Length = &cost
	} else {
		response.Message = "No path found: the end point cannot be reached from the start"
	}
	return response
}

func newGraphResponse(graph *visgraph.Graph) GraphResponse {
	vertices := graph.Vertices()
	response := GraphResponse{
		Vertices:        make([]visgraph.Point, len(vertices)),
		ObstacleLines:   visgraph.Lines(graph.ObstacleEdges()),
		VisibilityLines: visgraph.Lines(graph.VisibilityEdges()),
		Warnings:        warningStrings(graph),
	}
	for i, v := range vertices {
		response.Vertices[i] = v.Pos
	}
	return response
}

func warningStrings(graph *visgraph.Graph) []string {
	var warnings []string
	for _, w := range graph.Warnings() {
		warnings = append(warnings, w.Error())
	}
	return warnings
}
