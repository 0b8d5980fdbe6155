package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/incinfo/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Annotate a file and refresh whenever it or its includes change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := readOverrides(cmd)
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), cmd.OutOrStdout(), app.WatchOptions{
				File:      args[0],
				Overrides: overrides,
			})
		},
	}
	addFormatFlags(cmd)
	addSearchFlags(cmd)
	return cmd
}
