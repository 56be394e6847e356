package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/xcscheme/internal/ui/style"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a scheme in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.app.Show(cmd.Context(), args[0], projectOptions(cmd))
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the shared and user schemes of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			refs, err := c.app.List(cmd.Context(), projectOptions(cmd))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, ref := range refs {
				location := "user"
				if ref.Shared {
					location = "shared"
				}
				if _, err := fmt.Fprintf(w, "%s %s\n", ref.Name, style.Muted("("+location+")")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *CLI) newShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share NAME",
		Short: "Move a user scheme into xcshareddata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Share(cmd.Context(), args[0], projectOptions(cmd))
		},
	}
}

func (c *CLI) newUnshareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unshare NAME",
		Short: "Move a shared scheme into xcuserdata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Unshare(cmd.Context(), args[0], projectOptions(cmd))
		},
	}
}
