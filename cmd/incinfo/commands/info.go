package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/incinfo/internal/app"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Annotate the include directives of a file",
		Long: "Annotate the include directives of a file with the size, line count and\n" +
			"number of includes of the file each one names. With --line only that\n" +
			"directive is shown.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := readOverrides(cmd)
			if err != nil {
				return err
			}
			line, _ := cmd.Flags().GetInt("line")
			return c.app.Info(cmd.Context(), cmd.OutOrStdout(), app.InfoOptions{
				File:      args[0],
				Line:      line,
				Overrides: overrides,
			})
		},
	}
	cmd.Flags().IntP("line", "l", 0, "Only annotate the directive on this line (1-based)")
	addFormatFlags(cmd)
	addSearchFlags(cmd)
	return cmd
}
