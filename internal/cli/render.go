package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/tinct/pkg/errors"
	"github.com/matzehuels/tinct/pkg/graphio"
	"github.com/matzehuels/tinct/pkg/render/dot"
)

// Supported render formats.
var validFormats = map[string]bool{"dot": true, "svg": true, "png": true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	coloring string // coloring JSON file to drive node fills
	format   string // output format: dot, svg, png
	output   string // output file path
	detailed bool   // include color indices in node labels
}

// renderCommand creates the render command for visualizing graphs.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph as a node-link diagram",
		Long: `Render the graph in [file] as a Graphviz node-link diagram.
With --coloring, nodes are filled according to their assigned color.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", opts.format)
			}
			return c.runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.coloring, "coloring", "", "coloring JSON file (from 'tinct color -o')")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default derived from input)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include color indices in node labels")

	return cmd
}

func (c *CLI) runRender(input string, opts *renderOpts) error {
	g, err := graphio.ImportGraph(input)
	if err != nil {
		return err
	}

	fill := dot.NoFill[string]()
	if opts.coloring != "" {
		coloring, err := graphio.ImportColoring(opts.coloring)
		if err != nil {
			return err
		}
		fill = dot.PaletteFill(coloring)
	}

	src := dot.ToDOT(g, fill, dot.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(src)
	case "svg":
		data, err = dot.RenderSVG(src)
	case "png":
		data, err = dot.RenderPNG(src)
	}
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := apperrors.ValidateOutputPath(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered %s", opts.format)
	printFile(output)
	return nil
}
