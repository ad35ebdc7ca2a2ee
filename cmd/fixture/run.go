package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/born-ml/fixtures/internal/backend/cpu"
	"github.com/born-ml/fixtures/internal/config"
	"github.com/born-ml/fixtures/internal/fixture"
	"github.com/born-ml/fixtures/internal/logger"
	"github.com/born-ml/fixtures/internal/tensor"
)

// result is one executed and verified fixture.
type result struct {
	fixture *fixture.Fixture[*cpu.CPUBackend]
	output  *tensor.Tensor[float32, *cpu.CPUBackend]
	report  fixture.Report
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run a fixture on its dummy input and verify the output",
		Flags: append(fixtureFlags(), loggingFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := prepare(ctx, cmd)
			if err != nil {
				return err
			}

			res, err := execute(ctx, cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(stdout(cmd), "%s: shape=%v dim=%d slices=%d max_sum_diff=%.3g\n",
				res.fixture.Name, res.output.Shape(), res.fixture.Dim, res.report.Slices, res.report.MaxSumDiff)
			return err
		},
	}
}

// execute builds the configured fixture, runs it and verifies the output.
func execute(ctx context.Context, cfg config.Config) (*result, error) {
	log := logger.FromContext(ctx).With("fixture", cfg.Fixture)

	backend := cpu.New()
	f, err := fixture.Default[*cpu.CPUBackend]().Build(cfg.Fixture, fixtureOptions(cfg), backend)
	if err != nil {
		return nil, err
	}
	log.Debug("fixture built", "shape", f.Dummy.Shape(), "dim", f.Dim, "seed", cfg.Seed, "backend", backend.Name())

	out, err := f.Run()
	if err != nil {
		return nil, err
	}

	report, err := fixture.Verify(f.Dummy.Raw(), out.Raw(), f.Dim, cfg.Tolerance)
	if err != nil {
		log.Error("verification failed", "error", err)
		return nil, err
	}
	log.Info("fixture verified", "dim", f.Dim, "slices", report.Slices, "max_sum_diff", report.MaxSumDiff)

	return &result{fixture: f, output: out, report: report}, nil
}
