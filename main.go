package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"visgraph-planner/scene"
	"visgraph-planner/visgraph"
)

func main() {
	app := makeapp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, chalk.Red.Color("❌ "+err.Error()))
		os.Exit(1)
	}
}

func makeapp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "visgraph"
	app.Usage = "Shortest paths among polygonal obstacles"
	app.Writer = stdout
	app.ErrWriter = stderr

	app.Commands = []cli.Command{
		{
			Name:  "serve",
			Usage: "Serve the planning HTTP API",
			Flags: serveFlags,
			Action: func(c *cli.Context) error {
				config, err := configFromContext(c)
				if err != nil {
					return err
				}
				return NewServer(config, stderr).ListenAndServe()
			},
		},
		{
			Name:      "solve",
			Usage:     "Print the shortest route through a scene file as JSON",
			ArgsUsage: "<scene.json|scene.geojson|scene.svg>",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "merge", Usage: "Merge overlapping obstacles before planning"},
				cli.Float64Flag{Name: "simplify", Usage: "Douglas-Peucker tolerance applied to obstacles; 0 disables"},
				cli.BoolFlag{Name: "spatial-index", Usage: "Prune intersection tests with an R-tree"},
				cli.BoolFlag{Name: "graph", Usage: "Print the visibility graph instead of the route"},
				maxVerticesFlag,
			},
			Action: func(c *cli.Context) error {
				return solveAction(c, stdout, stderr)
			},
		},
		{
			Name:  "octagon",
			Usage: "Print the vertices of an octagon obstacle as JSON",
			Flags: []cli.Flag{
				cli.Float64Flag{Name: "cx", Usage: "Centre x"},
				cli.Float64Flag{Name: "cy", Usage: "Centre y"},
				cli.Float64Flag{Name: "r", Value: 1, Usage: "Distance from centre to each vertex"},
			},
			Action: func(c *cli.Context) error {
				if c.Float64("r") <= 0 {
					return errors.New("r must be positive")
				}
				vertices := visgraph.Octagon(visgraph.Point{X: c.Float64("cx"), Y: c.Float64("cy")}, c.Float64("r"))
				return printJSON(stdout, vertices)
			},
		},
	}

	return app
}

func solveAction(c *cli.Context, stdout, stderr io.Writer) error {
	if c.NArg() != 1 {
		return errors.New("solve needs exactly one scene file")
	}

	s, err := scene.Load(c.Args().First())
	if err != nil {
		return err
	}

	req := RouteRequest{
		Start:        s.Start,
		End:          s.End,
		AgentRadius:  s.AgentRadius,
		Obstacles:    s.Obstacles,
		Merge:        c.Bool("merge"),
		Simplify:     c.Float64("simplify"),
		SpatialIndex: c.Bool("spatial-index"),
	}
	logger := log.New(stderr, "", log.LstdFlags)
	graph, err := req.build(visgraph.WithLogger(logger), visgraph.WithMaxVertices(c.Int("max-vertices")))
	if err != nil {
		return errors.Wrap(err, "building visibility graph")
	}

	for _, w := range warningStrings(graph) {
		fmt.Fprintln(stderr, chalk.Yellow.Color("⚠️  "+w))
	}

	if c.Bool("graph") {
		return printJSON(stdout, newGraphResponse(graph))
	}
	return printJSON(stdout, newRouteResponse(graph))
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
