package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make <folder>",
		Short: "Build the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyProgress(cmd)
			return c.app.Make(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newRemakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remake <folder>",
		Short: "Clean and rebuild the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyProgress(cmd)
			return c.app.Remake(cmd.Context(), args[0])
		},
	}
}
