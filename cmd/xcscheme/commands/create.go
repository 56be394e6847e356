package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xcscheme/internal/app"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a scheme",
		Long: "Create a scheme. With --runnable or --test the scheme is configured to build, run, " +
			"profile and test those targets; otherwise it only holds an empty build action.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runnable, _ := cmd.Flags().GetString("runnable")
			test, _ := cmd.Flags().GetString("test")
			shared, _ := cmd.Flags().GetBool("shared")
			force, _ := cmd.Flags().GetBool("force")

			return c.app.Create(cmd.Context(), args[0], app.CreateOptions{
				ProjectOptions: projectOptions(cmd),
				Runnable:       runnable,
				Test:           test,
				Shared:         shared,
				Force:          force,
			})
		},
	}
	cmd.Flags().StringP("runnable", "r", "", "Target to build, launch and profile")
	cmd.Flags().StringP("test", "t", "", "Target to test")
	cmd.Flags().BoolP("shared", "s", false, "Store the scheme in xcshareddata instead of xcuserdata")
	cmd.Flags().BoolP("force", "f", false, "Replace an existing scheme of the same name")
	return cmd
}

func (c *CLI) newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure NAME",
		Short: "Reset every action of a scheme for the given targets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runnable, _ := cmd.Flags().GetString("runnable")
			test, _ := cmd.Flags().GetString("test")

			return c.app.Configure(cmd.Context(), args[0], app.ConfigureOptions{
				ProjectOptions: projectOptions(cmd),
				Runnable:       runnable,
				Test:           test,
			})
		},
	}
	cmd.Flags().StringP("runnable", "r", "", "Target to build, launch and profile")
	cmd.Flags().StringP("test", "t", "", "Target to test")
	return cmd
}
