package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xcscheme/internal/app"
)

func (c *CLI) newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Rewrite scheme files in canonical form",
		Long: "Rewrite scheme files in canonical form. Without paths every scheme of the project is " +
			"formatted; directories are searched for .xcscheme files.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			check, _ := cmd.Flags().GetBool("check")
			watch, _ := cmd.Flags().GetBool("watch")

			opts := app.FormatOptions{
				ProjectOptions: projectOptions(cmd),
				Check:          check,
			}
			if watch {
				return c.app.Watch(cmd.Context(), opts)
			}
			return c.app.Format(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().Bool("check", false, "Report unformatted files without rewriting them")
	cmd.Flags().BoolP("watch", "w", false, "Keep formatting schemes of the project as they change")
	cmd.MarkFlagsMutuallyExclusive("check", "watch")
	return cmd
}
