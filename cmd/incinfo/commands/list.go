package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/incinfo/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List where the includes of an included file resolve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := readOverrides(cmd)
			if err != nil {
				return err
			}
			line, _ := cmd.Flags().GetInt("line")
			return c.app.List(cmd.Context(), cmd.OutOrStdout(), app.ListOptions{
				File:      args[0],
				Line:      line,
				Overrides: overrides,
			})
		},
	}
	cmd.Flags().IntP("line", "l", 0, "Line of the include directive (1-based)")
	_ = cmd.MarkFlagRequired("line")
	addSearchFlags(cmd)
	return cmd
}
