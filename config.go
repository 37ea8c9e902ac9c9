package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Config holds the server settings. Every field can be set by flag or by
// environment variable.
type Config struct {
	Addr        string
	Rate        float64 // requests per second on the planning endpoints
	Burst       int
	MaxVertices int // 0 disables the limit
}

var maxVerticesFlag = cli.IntFlag{
	Name:   "max-vertices",
	Value:  1000,
	Usage:  "Refuse scenes whose graph would have more vertices; 0 disables the limit",
	EnvVar: "VISGRAPH_MAX_VERTICES",
}

var serveFlags = []cli.Flag{
	cli.StringFlag{Name: "addr", Value: ":8080", Usage: "Address to listen on", EnvVar: "VISGRAPH_ADDR"},
	cli.Float64Flag{Name: "rate", Value: 10, Usage: "Requests per second allowed on /route and /graph", EnvVar: "VISGRAPH_RATE"},
	cli.IntFlag{Name: "burst", Value: 20, Usage: "Burst size of the request rate limit", EnvVar: "VISGRAPH_BURST"},
	maxVerticesFlag,
}

func configFromContext(c *cli.Context) (Config, error) {
	config := Config{
		Addr:        c.String("addr"),
		Rate:        c.Float64("rate"),
		Burst:       c.Int("burst"),
		MaxVertices: c.Int("max-vertices"),
	}
	return config, config.validate()
}

func (c Config) validate() error {
	switch {
	case c.Addr == "":
		return errors.New("addr must not be empty")
	case c.Rate <= 0:
		return errors.Errorf("rate must be positive, got %v", c.Rate)
	case c.Burst < 1:
		return errors.Errorf("burst must be at least 1, got %d", c.Burst)
	case c.MaxVertices < 0:
		return errors.Errorf("max-vertices must not be negative, got %d", c.MaxVertices)
	}
	return nil
}
