package scene

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"

	"visgraph-planner/visgraph"
)

// FromSVG reads a scene from an SVG drawing. <polygon> and <rect> elements
// are obstacles, other circles are approximated by an octagon. The circles
// with id "start" and "end" are the endpoints; the radius of the start circle
// is the agent radius. Groups are descended into, transforms are not applied.
func FromSVG(data []byte) (*Scene, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	root, err := svgparser.DecodeFirst(decoder)
	if err != nil {
		return nil, errors.Wrap(err, "decoding svg")
	}
	if err := root.Decode(decoder); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding svg")
	}

	p := &svgScene{}
	if err := p.parse(root); err != nil {
		return nil, err
	}
	if !p.hasStart {
		return nil, errors.Wrap(ErrMissingEndpoint, `no circle with id "start"`)
	}
	if !p.hasEnd {
		return nil, errors.Wrap(ErrMissingEndpoint, `no circle with id "end"`)
	}
	return &p.Scene, nil
}

type svgScene struct {
	Scene
	hasStart, hasEnd bool
}

func (p *svgScene) parse(e *svgparser.Element) error {
	for _, c := range e.Children {
		var err error
		switch c.Name {
		case "g":
			err = p.parse(c)
		case "polygon":
			err = p.parsePolygon(c)
		case "rect":
			err = p.parseRect(c)
		case "circle":
			err = p.parseCircle(c)
		}
		if err != nil {
			return errors.Wrapf(err, "<%s id=%q>", c.Name, c.Attributes["id"])
		}
	}
	return nil
}

func (p *svgScene) parsePolygon(e *svgparser.Element) error {
	fields := strings.FieldsFunc(e.Attributes["points"], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return errors.Errorf("odd number of coordinates in %q", e.Attributes["points"])
	}

	vertices := make([]visgraph.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return err
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return err
		}
		vertices = append(vertices, visgraph.Point{X: x, Y: y})
	}
	p.addObstacle(vertices)
	return nil
}

func (p *svgScene) parseRect(e *svgparser.Element) error {
	a := &attrs{e: e}
	x, y := a.float("x", true), a.float("y", true)
	w, h := a.float("width", false), a.float("height", false)
	if a.err != nil {
		return a.err
	}
	p.addObstacle([]visgraph.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}})
	return nil
}

func (p *svgScene) parseCircle(e *svgparser.Element) error {
	a := &attrs{e: e}
	centre := visgraph.Point{X: a.float("cx", true), Y: a.float("cy", true)}
	r := a.float("r", e.Attributes["id"] == "end")
	if a.err != nil {
		return a.err
	}

	switch e.Attributes["id"] {
	case "start":
		p.Start, p.AgentRadius, p.hasStart = centre, r, true
	case "end":
		p.End, p.hasEnd = centre, true
	default:
		p.addObstacle(visgraph.Octagon(centre, r))
	}
	return nil
}

// attrs reads float attributes of one element and keeps the first error,
// so a run of lookups can be checked once.
type attrs struct {
	e   *svgparser.Element
	err error
}

func (a *attrs) float(name string, optional bool) float64 {
	if a.err != nil {
		return 0
	}
	s, ok := a.e.Attributes[name]
	if !ok && optional {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		a.err = errors.Wrapf(err, "attribute %s", name)
	}
	return f
}
