package scene

import (
	"log"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"visgraph-planner/visgraph"
)

// FromGeoJSON reads a scene from a feature collection. Polygon and
// MultiPolygon features become obstacles (outer rings only). Point features
// with a "role" property of "start" or "end" give the endpoints; the start
// feature may carry an "agentRadius" property.
func FromGeoJSON(data []byte) (*Scene, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding feature collection")
	}

	s := &Scene{}
	var hasStart, hasEnd bool
	for _, feature := range fc.Features {
		switch g := feature.Geometry.(type) {
		case nil:
			continue
		case orb.Point:
			switch role := feature.Properties.MustString("role", ""); role {
			case "start":
				s.Start = visgraph.Point{X: g.X(), Y: g.Y()}
				s.AgentRadius = feature.Properties.MustFloat64("agentRadius", 0)
				hasStart = true
			case "end":
				s.End = visgraph.Point{X: g.X(), Y: g.Y()}
				hasEnd = true
			default:
				log.Printf("⚠️  Ignoring point feature with role %q\n", role)
			}
		case orb.Polygon:
			s.addRing(g)
		case orb.MultiPolygon:
			for _, poly := range g {
				s.addRing(poly)
			}
		default:
			log.Printf("⚠️  Ignoring %s feature\n", feature.Geometry.GeoJSONType())
		}
	}

	if !hasStart {
		return nil, errors.Wrap(ErrMissingEndpoint, "no start feature")
	}
	if !hasEnd {
		return nil, errors.Wrap(ErrMissingEndpoint, "no end feature")
	}
	return s, nil
}

// addRing adds the outer ring of poly; holes are never reachable space.
func (s *Scene) addRing(poly orb.Polygon) {
	if len(poly) == 0 {
		return
	}
	vertices := make([]visgraph.Point, 0, len(poly[0]))
	for _, p := range poly[0] {
		vertices = append(vertices, visgraph.Point{X: p[0], Y: p[1]})
	}
	s.addObstacle(vertices)
}
