// Package cli implements the selectmirror command line interface.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

// Version information set at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "selectmirror",
		Usage:   "Wrap native selection controls in a document with synced replicas",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("no-color") {
				color.NoColor = true
			}
			configureLogging(cmd)
			return ctx, nil
		},
		Commands: []*cli.Command{
			runCommand(),
			inspectCommand(),
			versionCommand(),
		},
	}
	return app.Run(ctx, args)
}

// configureLogging sets the default slog level from the CLI flags.
func configureLogging(cmd *cli.Command) {
	level := slog.LevelWarn
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
