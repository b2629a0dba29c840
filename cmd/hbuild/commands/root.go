// Package commands implements the CLI commands for the hbuild build tool.
package commands

import (
	"context"

	"github.com/hackeros/hbuild/internal/app"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for hbuild.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hbuild",
		Short:         "Modern build tool for HackerOS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("progress", false, "Record build progress per unit of work")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newMakeCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newRemakeCmd())
	rootCmd.AddCommand(c.newSetupCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used by main and tests.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// applyProgress swaps in the progress tracer when the flag was given.
func (c *CLI) applyProgress(cmd *cobra.Command) {
	if on, _ := cmd.Flags().GetBool("progress"); on {
		c.app.UseProgress()
	}
}
