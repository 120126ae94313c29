package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/go-drift/selectmirror/pkg/selectmirror"
)

// Color functions for inspect output.
var (
	header   = color.New(color.FgCyan, color.Bold).SprintFunc()
	selected = color.New(color.FgGreen).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Wrap the controls in an HTML document and print the replica state",
		ArgsUsage: "[document.html]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "selector",
				Usage: "CSS selector for the controls to wrap (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "Dump the mutated document instead of a summary",
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
			coord, err := selectmirror.New(doc, selector)
			if err != nil {
				return err
			}

			if cmd.Bool("html") {
				return doc.Render(os.Stdout)
			}

			for i, e := range coord.Engines() {
				fmt.Printf("%s %s\n", header(fmt.Sprintf("control %d:", i)), e.Source().ID())
				if w := e.Container().RenderedWidth(); w > 0 {
					fmt.Printf("  width: %v\n", w)
				}
				for _, item := range e.Items() {
					mark := " "
					label := item.Label()
					if item.Index() == e.SelectedIndex() {
						mark = selected("✓")
						label = selected(label)
					}
					fmt.Printf("  %s %s %s\n", mark, label, dim(formatData(item.Data())))
				}
			}
			return nil
		},
	}
}

func formatData(data selectmirror.Data) string {
	if len(data) == 0 {
		return ""
	}
	out := "{"
	for i, d := range data {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%v", d.Key, d.Value)
	}
	return out + "}"
}
