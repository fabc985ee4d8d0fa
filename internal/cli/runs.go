package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tinct/pkg/archive"
)

// runsCommand creates the runs command group for inspecting archived runs.
func (c *CLI) runsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect archived coloring runs",
	}

	cmd.AddCommand(c.runsListCommand())
	cmd.AddCommand(c.runsShowCommand())
	cmd.AddCommand(c.runsBrowseCommand())

	return cmd
}

// runsListCommand creates the "runs list" subcommand.
func (c *CLI) runsListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newArchive(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			runs, err := store.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				printInfo("No archived runs")
				return nil
			}
			for _, run := range runs {
				fmt.Println(formatRunLine(run))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum runs to list (0 = all)")
	return cmd
}

// runsShowCommand creates the "runs show" subcommand.
func (c *CLI) runsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newArchive(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			run, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}
			printRunDetails(run)
			return nil
		},
	}
}

// runsBrowseCommand creates the "runs browse" subcommand with the
// interactive picker.
func (c *CLI) runsBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse archived runs interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newArchive(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			runs, err := store.List(ctx, 0)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				printInfo("No archived runs")
				return nil
			}

			selected, err := browseRuns(runs)
			if err != nil {
				return err
			}
			if selected != nil {
				printNewline()
				printRunDetails(*selected)
			}
			return nil
		},
	}
}

// formatRunLine renders one run as a single list line.
func formatRunLine(run archive.Run) string {
	outcome := StyleSuccess.Render(fmt.Sprintf("%d colors", run.NumColors))
	if !run.Found {
		outcome = StyleWarning.Render("no coloring")
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		StyleDim.Render(shortID(run.ID)),
		StyleValue.Render(fmt.Sprintf("%-12s", run.Strategy)),
		outcome,
		StyleDim.Render(fmt.Sprintf("%d nodes, k=%d, %s", run.Nodes, run.MaxColors, formatRelativeTime(run.CreatedAt))),
	)
}

// printRunDetails prints the full record of one run.
func printRunDetails(run archive.Run) {
	printKeyValue("Run", run.ID)
	printKeyValue("Created", run.CreatedAt.Format(time.RFC3339))
	printKeyValue("Strategy", run.Strategy)
	printKeyValue("Graph", fmt.Sprintf("%d nodes, %d edges (%s)", run.Nodes, run.Edges, shortID(run.Fingerprint)))
	printKeyValue("Budget", fmt.Sprintf("k=%d", run.MaxColors))
	if run.Found {
		printKeyValue("Result", StyleSuccess.Render(fmt.Sprintf("%d colors", run.NumColors)))
	} else {
		printKeyValue("Result", StyleWarning.Render("no coloring"))
	}
	printKeyValue("Duration", run.Duration.Round(time.Millisecond).String())
}

// shortID truncates ids and fingerprints for display.
func shortID(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[:8]
}

// formatRelativeTime renders a timestamp relative to now.
func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
