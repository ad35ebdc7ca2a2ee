package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
)

func fixtureFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to YAML config file",
		},
		&cli.StringFlag{
			Name:    "fixture",
			Aliases: []string{"f"},
			Usage:   "fixture name (see list)",
			Value:   "LogSoftmax",
		},
		&cli.IntFlag{
			Name:  "dim",
			Usage: "normalization dimension (default: implicit rule from input rank)",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "dummy input random seed",
		},
		&cli.StringFlag{
			Name:  "shape",
			Usage: "dummy input shape, comma separated (e.g. 1,2,3,3)",
		},
		&cli.Float64Flag{
			Name:  "tolerance",
			Usage: "verification tolerance",
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "log format (text, json)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging (shorthand for --log-level=debug)",
		},
	}
}

// parseShape parses "1,2,3,3". An empty string is a scalar.
func parseShape(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	shape := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		shape[i] = n
	}
	return shape, nil
}
