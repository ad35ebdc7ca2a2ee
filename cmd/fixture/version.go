package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var (
	// version is the release version (set via -ldflags).
	version = "v0.1.0-dev"
	// commit is the git commit hash (set via -ldflags).
	commit = ""
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := stdout(cmd)
			if _, err := fmt.Fprintf(w, "Born fixtures %s\n", version); err != nil {
				return err
			}
			if commit != "" {
				_, err := fmt.Fprintf(w, "commit: %s\n", commit)
				return err
			}
			return nil
		},
	}
}
