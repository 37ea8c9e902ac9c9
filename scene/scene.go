// Package scene reads and writes planning scenes: a start and end point, an
// agent radius and a set of polygonal obstacles.
package scene

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"visgraph-planner/visgraph"
)

var (
	// ErrUnknownFormat is returned by Load for unsupported file extensions.
	ErrUnknownFormat = errors.New("unknown scene format")
	// ErrMissingEndpoint is returned when a scene file has no start or end.
	ErrMissingEndpoint = errors.New("scene is missing an endpoint")
)

type Scene struct {
	Start       visgraph.Point     `json:"start"`
	End         visgraph.Point     `json:"end"`
	AgentRadius float64            `json:"agentRadius"`
	Obstacles   [][]visgraph.Point `json:"obstacles"`
}

// Load reads a scene from a .json, .geojson or .svg file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene %s", path)
	}

	var s *Scene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		s, err = FromJSON(data)
	case ".geojson":
		s, err = FromGeoJSON(data)
	case ".svg":
		s, err = FromSVG(data)
	default:
		return nil, errors.Wrap(ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing scene %s", path)
	}
	return s, nil
}

func FromJSON(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	for i, o := range s.Obstacles {
		s.Obstacles[i] = visgraph.NormalizeOrientation(o)
	}
	return &s, nil
}

// Save writes the scene as indented JSON.
func (s *Scene) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding scene")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "writing scene %s", path)
}

// Build constructs the visibility graph for the scene.
func (s *Scene) Build(opts ...visgraph.Option) (*visgraph.Graph, error) {
	return visgraph.Build(s.Start, s.End, s.Obstacles, s.AgentRadius, opts...)
}

func (s *Scene) addObstacle(vertices []visgraph.Point) {
	s.Obstacles = append(s.Obstacles, visgraph.NormalizeOrientation(vertices))
}
