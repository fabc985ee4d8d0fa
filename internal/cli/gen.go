package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tinct/pkg/gen"
	"github.com/matzehuels/tinct/pkg/graph"
	"github.com/matzehuels/tinct/pkg/graphio"
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	nodes     int     // node count
	density   float64 // edge density in [0,1]
	connected bool    // force a single connected component
	seed      uint64  // generator seed
	shape     string  // graph shape: random, complete, cycle
	output    string  // output file (empty = stdout)
}

// genCommand creates the gen command for generating test graphs.
func (c *CLI) genCommand() *cobra.Command {
	opts := genOpts{
		nodes:   10,
		density: 0.3,
		shape:   "random",
	}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a graph in the tinct JSON format",
		Long: `Generate a graph and write it as JSON. Shapes:

  random    density-controlled random graph (optionally connected)
  complete  every pair of nodes connected
  cycle     a single cycle

Equal seeds and options always produce the same graph.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGen(&opts)
		},
	}

	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", opts.nodes, "number of nodes")
	cmd.Flags().Float64VarP(&opts.density, "density", "d", opts.density, "edge density in [0,1] (random shape)")
	cmd.Flags().BoolVar(&opts.connected, "connected", false, "force a connected graph (random shape)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "generator seed")
	cmd.Flags().StringVar(&opts.shape, "shape", opts.shape, "graph shape: random, complete, cycle")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runGen(opts *genOpts) error {
	var (
		g   *graph.Undirected[string]
		err error
	)
	switch opts.shape {
	case "random":
		g, err = gen.Random(gen.Options{
			Nodes:     opts.nodes,
			Density:   opts.density,
			Connected: opts.connected,
			Seed:      opts.seed,
		})
	case "complete":
		g, err = gen.Complete(opts.nodes)
	case "cycle":
		g, err = gen.Cycle(opts.nodes)
	default:
		return fmt.Errorf("unknown shape: %s (must be 'random', 'complete', or 'cycle')", opts.shape)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		return graphio.WriteGraph(g, os.Stdout)
	}
	if err := graphio.ExportGraph(g, opts.output); err != nil {
		return err
	}

	printSuccess("Generated %s graph", opts.shape)
	printStats(g.NodeCount(), g.EdgeCount()/2, false)
	printFile(opts.output)
	return nil
}
