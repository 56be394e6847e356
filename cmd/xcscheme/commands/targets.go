package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xcscheme/internal/app"
)

func (c *CLI) newAddBuildTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-build-target NAME TARGET",
		Short: "Add a build entry for a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			noRun, _ := cmd.Flags().GetBool("no-run")

			return c.app.AddBuildTarget(cmd.Context(), args[0], args[1], app.BuildTargetOptions{
				ProjectOptions: projectOptions(cmd),
				NoRun:          noRun,
			})
		},
	}
	cmd.Flags().Bool("no-run", false, "Do not build the target when running")
	return cmd
}

func (c *CLI) newAddTestTargetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-test-target NAME TARGET",
		Short: "Add a testable for a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.AddTestTarget(cmd.Context(), args[0], args[1], projectOptions(cmd))
		},
	}
}

func (c *CLI) newSetLaunchTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-launch-target NAME TARGET",
		Short: "Launch and profile a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, _ := cmd.Flags().GetStringArray("env")
			launchArgs, _ := cmd.Flags().GetStringArray("arg")

			return c.app.SetLaunchTarget(cmd.Context(), args[0], args[1], app.LaunchOptions{
				ProjectOptions: projectOptions(cmd),
				Env:            env,
				Args:           launchArgs,
			})
		},
	}
	cmd.Flags().StringArrayP("env", "e", nil, "Launch environment variable as KEY=VALUE (repeatable)")
	cmd.Flags().StringArrayP("arg", "a", nil, "Launch argument (repeatable)")
	return cmd
}

func (c *CLI) newSetPhasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-phases NAME TARGET",
		Short: "Choose the actions a target is built for",
		Long: "Enable or disable building TARGET for the testing, running, profiling, archiving " +
			"and analyzing phases in every build entry that refers to it.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enable, _ := cmd.Flags().GetStringSlice("enable")
			disable, _ := cmd.Flags().GetStringSlice("disable")

			return c.app.SetBuildPhases(cmd.Context(), args[0], args[1], app.PhaseOptions{
				ProjectOptions: projectOptions(cmd),
				Enable:         enable,
				Disable:        disable,
			})
		},
	}
	cmd.Flags().StringSlice("enable", nil, "Phases to build the target for")
	cmd.Flags().StringSlice("disable", nil, "Phases to stop building the target for")
	return cmd
}
