package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tinct/pkg/archive"
	"github.com/matzehuels/tinct/pkg/cache"
	"github.com/matzehuels/tinct/pkg/color"
	"github.com/matzehuels/tinct/pkg/graphio"
)

// colorOpts holds the command-line flags for the color command.
type colorOpts struct {
	strategy  string // strategy name: exhaustive, progressive, branchbound
	maxColors int    // color budget (0 = node count)
	budget    int    // expansion budget (0 = config default)
	output    string // coloring output file (empty = stdout summary only)
	noCache   bool   // skip the result cache
	noArchive bool   // skip recording the run
}

// colorCommand creates the color command for searching exact colorings.
func (c *CLI) colorCommand() *cobra.Command {
	opts := colorOpts{
		strategy: c.Config.Defaults.Strategy,
		budget:   c.Config.Defaults.MaxExpansions,
	}

	cmd := &cobra.Command{
		Use:   "color [file]",
		Short: "Search for an exact coloring of a graph",
		Long: `Search for a proper coloring of the graph in [file] using one of
the exact strategies: ` + strings.Join(color.Names(), ", ") + `.

A negative answer ("no coloring within --max-colors") is a normal result,
not an error. With the progressive strategy the number of colors used is
the chromatic number of the graph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runColor(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", opts.strategy, "coloring strategy: "+strings.Join(color.Names(), ", "))
	cmd.Flags().IntVarP(&opts.maxColors, "max-colors", "k", 0, "color budget (0 = one color per node)")
	cmd.Flags().IntVar(&opts.budget, "budget", opts.budget, "expansion budget (0 = unlimited)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the coloring to this JSON file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the result cache")
	cmd.Flags().BoolVar(&opts.noArchive, "no-archive", false, "do not record the run")

	return cmd
}

// runColor loads the graph, consults the cache, and otherwise runs the
// search, records the run, and prints the outcome.
func (c *CLI) runColor(ctx context.Context, input string, opts *colorOpts) error {
	logger := loggerFromContext(ctx)

	strategy, err := color.Parse[string](opts.strategy)
	if err != nil {
		return err
	}

	g, err := graphio.ImportGraph(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount()/2)

	maxColors := opts.maxColors
	if maxColors <= 0 {
		maxColors = g.NodeCount()
	}

	fingerprint := graphio.Fingerprint(g)
	results := c.newCache(ctx, opts.noCache)
	defer results.Close()
	key := cache.Key("color", fingerprint, strategy.Name(), maxColors)

	if run, ok := cachedRun(ctx, results, key); ok {
		logger.Debug("cache hit", "key", key)
		c.printRun(g.NodeCount(), g.EdgeCount()/2, run, true)
		return writeColoringOutput(run, opts.output)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Coloring with %s (k=%d)", strategy.Name(), maxColors))
	spinner.Start()

	track := newProgress(logger)
	coloring, found, err := strategy.Color(g, color.Options[string]{
		MaxColors:     maxColors,
		MaxExpansions: opts.budget,
	})
	spinner.Stop()
	if err != nil {
		return err
	}
	track.done(fmt.Sprintf("Searched with %s", strategy.Name()))

	run := archive.NewRun()
	run.Strategy = strategy.Name()
	run.Fingerprint = fingerprint
	run.Nodes = g.NodeCount()
	run.Edges = g.EdgeCount() / 2
	run.MaxColors = maxColors
	run.Found = found
	run.NumColors = color.NumColors(coloring)
	run.Duration = track.elapsed()
	run.Coloring = coloring

	if !opts.noArchive {
		if err := c.archiveRun(ctx, run); err != nil {
			c.Logger.Warn("archive run", "err", err)
		}
	}
	if data, err := json.Marshal(run); err == nil {
		if err := results.Set(ctx, key, data, 24*time.Hour); err != nil {
			logger.Debug("cache result", "err", err)
		}
	}

	c.printRun(g.NodeCount(), g.EdgeCount()/2, run, false)
	return writeColoringOutput(run, opts.output)
}

func (c *CLI) archiveRun(ctx context.Context, run archive.Run) error {
	store, err := c.newArchive(ctx)
	if err != nil {
		return err
	}
	defer store.Close(ctx)
	return store.Put(ctx, run)
}

// cachedRun looks up a previously computed run.
func cachedRun(ctx context.Context, results cache.Cache, key string) (archive.Run, bool) {
	var run archive.Run
	data, ok, err := results.Get(ctx, key)
	if err != nil || !ok {
		return run, false
	}
	if err := json.Unmarshal(data, &run); err != nil {
		return run, false
	}
	return run, true
}

// printRun prints the outcome of a coloring run.
func (c *CLI) printRun(nodes, edges int, run archive.Run, cached bool) {
	if run.Found {
		printSuccess("Proper coloring with %d colors (%s, k=%d)", run.NumColors, run.Strategy, run.MaxColors)
	} else {
		printWarning("No coloring with at most %d colors (%s)", run.MaxColors, run.Strategy)
	}
	printStats(nodes, edges, cached)
	if run.ID != "" {
		printDetail("Run: %s", run.ID)
	}
}

// writeColoringOutput writes the coloring to the requested file, if any.
func writeColoringOutput(run archive.Run, output string) error {
	if output == "" || !run.Found {
		return nil
	}
	if err := graphio.ExportColoring(run.Coloring, output); err != nil {
		return err
	}
	printFile(output)
	return nil
}
