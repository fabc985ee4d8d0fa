package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tinct/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string // listen address
	maxExpansions int    // per-request search cap
	noCache       bool   // disable the result cache
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:          c.Config.Server.Addr,
		maxExpansions: c.Config.Defaults.MaxExpansions,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tinct HTTP API",
		Long: `Run the HTTP API for coloring and generating graphs. The archive and
cache backends come from the config file; requests may lower the
expansion cap set by --max-expansions but never raise it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runs, err := c.newArchive(ctx)
			if err != nil {
				return err
			}
			defer runs.Close(ctx)

			results := c.newCache(ctx, opts.noCache)
			defer results.Close()

			srv := server.New(server.Config{
				Addr:          opts.addr,
				MaxExpansions: opts.maxExpansions,
			}, runs, results, c.Logger)

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().IntVar(&opts.maxExpansions, "max-expansions", opts.maxExpansions, "per-request expansion cap (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}
