package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/born-ml/fixtures/internal/logger"
	"github.com/born-ml/fixtures/internal/serialization"
	"github.com/born-ml/fixtures/internal/tensor"
)

// Dump formats.
const (
	formatJSON        = "json"
	formatSafeTensors = "safetensors"
)

// dumpRecord is the JSON written by the dump command.
type dumpRecord struct {
	RunID   string    `json:"run_id"`
	Fixture string    `json:"fixture"`
	Dim     int       `json:"dim"`
	Seed    int64     `json:"seed"`
	Shape   []int     `json:"shape"`
	Input   []float32 `json:"input"`
	Output  []float32 `json:"output"`
}

func dumpCmd() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "Run a fixture and write its input and output (JSON or SafeTensors)",
		Flags: append(append(fixtureFlags(), loggingFlags()...),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (default: stdout, json only)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "dump format (json, safetensors)",
				Value: formatJSON,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := prepare(ctx, cmd)
			if err != nil {
				return err
			}

			format, path := cmd.String("format"), cmd.String("out")
			switch format {
			case formatJSON:
			case formatSafeTensors:
				if path == "" {
					return fmt.Errorf("--out is required for %s dumps", formatSafeTensors)
				}
			default:
				return fmt.Errorf("unknown dump format %q (want %s or %s)", format, formatJSON, formatSafeTensors)
			}

			res, err := execute(ctx, cfg)
			if err != nil {
				return err
			}
			runID := uuid.NewString()
			log := logger.FromContext(ctx).With("path", path, "run_id", runID)

			if format == formatSafeTensors {
				tensors := map[string]*tensor.RawTensor{
					"input":  res.fixture.Dummy.Raw(),
					"output": res.output.Raw(),
				}
				meta := map[string]string{
					"run_id":  runID,
					"fixture": res.fixture.Name,
					"dim":     strconv.Itoa(res.fixture.Dim),
					"seed":    strconv.FormatInt(cfg.Seed, 10),
				}
				if err := serialization.WriteFile(path, tensors, meta); err != nil {
					return err
				}
				log.Info("dump written", "format", format)
				return nil
			}

			rec := dumpRecord{
				RunID:   runID,
				Fixture: res.fixture.Name,
				Dim:     res.fixture.Dim,
				Seed:    cfg.Seed,
				Shape:   res.fixture.Dummy.Shape(),
				Input:   res.fixture.Dummy.Data(),
				Output:  res.output.Data(),
			}
			data, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return fmt.Errorf("encode dump: %w", err)
			}
			data = append(data, '\n')

			if path == "" {
				_, err = stdout(cmd).Write(data)
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write dump: %w", err)
			}
			log.Info("dump written", "format", format)
			return nil
		},
	}
}
