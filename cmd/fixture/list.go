package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/born-ml/fixtures/internal/backend/cpu"
	"github.com/born-ml/fixtures/internal/fixture"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List available fixtures",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range fixture.Default[*cpu.CPUBackend]().Names() {
				if _, err := fmt.Fprintln(stdout(cmd), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
