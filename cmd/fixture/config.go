package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/born-ml/fixtures/internal/config"
	"github.com/born-ml/fixtures/internal/fixture"
	"github.com/born-ml/fixtures/internal/logger"
)

// loadConfig reads --config and applies every flag the user set on top.
// Flags left at their defaults never override the file.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if cmd.IsSet("fixture") {
		cfg.Fixture = cmd.String("fixture")
	}
	if cmd.IsSet("dim") {
		dim := cmd.Int("dim")
		cfg.Dim = &dim
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Int64("seed")
	}
	if cmd.IsSet("shape") {
		shape, err := parseShape(cmd.String("shape"))
		if err != nil {
			return config.Config{}, err
		}
		cfg.Shape = shape
	}
	if cmd.IsSet("tolerance") {
		cfg.Tolerance = cmd.Float64("tolerance")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.Bool("debug") {
		cfg.LogLevel = "debug"
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// prepare loads the config and stores a logger for it in the context.
func prepare(ctx context.Context, cmd *cli.Command) (context.Context, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return ctx, config.Config{}, err
	}

	log, err := logger.NewFormat(stderr(cmd), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return ctx, config.Config{}, err
	}
	return logger.WithContext(ctx, log), cfg, nil
}

func fixtureOptions(cfg config.Config) fixture.Options {
	return fixture.Options{
		Dim:   cfg.Dim,
		Seed:  cfg.Seed,
		Shape: cfg.TensorShape(),
	}
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
