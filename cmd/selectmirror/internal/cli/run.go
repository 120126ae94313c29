package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/go-drift/selectmirror/cmd/selectmirror/internal/config"
	"github.com/go-drift/selectmirror/cmd/selectmirror/internal/tui"
	"github.com/go-drift/selectmirror/pkg/dom/memdom"
	"github.com/go-drift/selectmirror/pkg/selectmirror"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Wrap the controls in an HTML document and drive them interactively",
		ArgsUsage: "[document.html]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "selector",
				Usage: "CSS selector for the controls to wrap (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "prevent-native",
				Usage: "Latch outside-click dismissal before wrapping",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, cfg, err := loadDocument(cmd)
			if err != nil {
				return err
			}

			selector := cmd.String("selector")
			if selector == "" {
				selector = cfg.Selector
			}
			if cmd.Bool("prevent-native") || cfg.PreventNative {
				selectmirror.PreventNative()
			}

			coord, err := selectmirror.New(doc, selector)
			if err != nil {
				return err
			}
			defer coord.Destroy(cfg.RestoreOnDestroy)
			slog.Info("wrapped controls", "selector", selector, "count", len(coord.Engines()))

			_, err = tui.Run(tui.NewModel(coord))
			return err
		},
	}
}

// loadDocument resolves the tool config and parses the HTML document
// named on the command line or in selectmirror.yaml.
func loadDocument(cmd *cli.Command) (*memdom.Document, *config.Resolved, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Resolve(cwd)
	if err != nil {
		return nil, nil, err
	}

	path := cmd.Args().First()
	if path == "" {
		path = cfg.Document
	}
	if path == "" {
		return nil, nil, fmt.Errorf("no document given: pass a file or set document in selectmirror.yaml")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	doc, err := memdom.Parse(f)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("parsed document", "path", path)
	return doc, cfg, nil
}
