package main

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/born-ml/fixtures/internal/backend/cpu"
	"github.com/born-ml/fixtures/internal/fixture"
	"github.com/born-ml/fixtures/internal/logger"
	"github.com/born-ml/fixtures/internal/onnx"
)

func graphCmd() *cli.Command {
	return &cli.Command{
		Name:  "graph",
		Usage: "Print the traced graph of a fixture as JSON",
		Flags: append(fixtureFlags(), loggingFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := prepare(ctx, cmd)
			if err != nil {
				return err
			}

			backend := cpu.New()
			f, err := fixture.Default[*cpu.CPUBackend]().Build(cfg.Fixture, fixtureOptions(cfg), backend)
			if err != nil {
				return err
			}

			g, err := f.Graph()
			if err != nil {
				return err
			}

			// A graph that cannot be executed would not survive export either.
			if _, err := onnx.NewRunner(g, backend); err != nil {
				return err
			}
			logger.FromContext(ctx).Debug("graph traced", "fixture", f.Name, "nodes", len(g.Nodes), "opset", g.Opset)

			data, err := json.MarshalIndent(g, "", "  ")
			if err != nil {
				return fmt.Errorf("encode graph: %w", err)
			}
			_, err = fmt.Fprintf(stdout(cmd), "%s\n", data)
			return err
		},
	}
}
