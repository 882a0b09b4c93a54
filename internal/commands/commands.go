// Package commands defines the miti command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/starford/miti/internal"
	"github.com/starford/miti/internal/dateservice"
	pkgconfig "github.com/starford/miti/pkg/config"
)

const defaultConfigPath = "config/config.yaml"

// New returns the root command. Without a subcommand it runs the server.
func New() *cli.Command {
	return &cli.Command{
		Name:   "miti",
		Usage:  "Bikram Sambat calendar: conversion, date arithmetic and month grids over HTTP, MCP and the command line",
		Action: serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: defaultConfigPath,
				Value:       defaultConfigPath,
				Sources:     cli.EnvVars("MITI_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "Output language, en or np (default from config)",
				Sources: cli.EnvVars("MITI_LANG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "Serve MCP tools on stdin/stdout",
				Action: serveMCP,
			},
			todayCommand(),
			toADCommand(),
			toBSCommand(),
			formatCommand(),
			addCommand(),
			calCommand(),
		},
	}
}

// loadConfig reads the config file. A missing file at the default location
// falls back to the builtin defaults so that one-off commands work anywhere.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	path := cmd.String("config")
	cfg := internal.NewDefaultConfig()
	if cmd.IsSet("config") {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		return cfg, nil
	}
	found, err := pkgconfig.LoadIfExists(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !found {
		return cfg, cfg.Validate()
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.ServeMCP(ctx, internal.WithConfig(cfg))
}

// service builds the date service for a one-off command.
func service(cmd *cli.Command) (*dateservice.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	svc, _, err := internal.NewService(cfg)
	return svc, err
}

func out(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// args returns exactly n positional arguments.
func args(cmd *cli.Command, n int, usage string) ([]string, error) {
	if cmd.Args().Len() != n {
		return nil, fmt.Errorf("usage: miti %s %s", cmd.Name, usage)
	}
	return cmd.Args().Slice(), nil
}
