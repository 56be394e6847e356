// Package commands implements the CLI commands for the xcscheme tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/xcscheme/internal/app"
	"go.trai.ch/xcscheme/internal/build"
	"go.trai.ch/xcscheme/internal/core/domain"
)

// CLI represents the command line interface for xcscheme.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Create(ctx context.Context, name string, opts app.CreateOptions) error
	Configure(ctx context.Context, name string, opts app.ConfigureOptions) error
	AddBuildTarget(ctx context.Context, name, target string, opts app.BuildTargetOptions) error
	AddTestTarget(ctx context.Context, name, target string, opts app.ProjectOptions) error
	SetLaunchTarget(ctx context.Context, name, target string, opts app.LaunchOptions) error
	SetBuildPhases(ctx context.Context, name, target string, opts app.PhaseOptions) error
	Show(ctx context.Context, name string, opts app.ProjectOptions) (string, error)
	List(ctx context.Context, opts app.ProjectOptions) ([]domain.SchemeRef, error)
	Share(ctx context.Context, name string, opts app.ProjectOptions) error
	Unshare(ctx context.Context, name string, opts app.ProjectOptions) error
	Format(ctx context.Context, paths []string, opts app.FormatOptions) error
	Watch(ctx context.Context, opts app.FormatOptions) error
	SetJSONLog(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "xcscheme",
		Short:         "Create and edit Xcode scheme files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path of "+domain.ManifestFileName+" or a directory to search upwards from")
	flags.String("project", "", "Project bundle path, overriding the manifest")
	flags.String("user", "", "Owner of per-user schemes (default $USER)")
	flags.Bool("json-log", false, "Write log output as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLog, _ := cmd.Flags().GetBool("json-log"); jsonLog {
			c.app.SetJSONLog(true)
		}
	}

	rootCmd.AddCommand(c.newCreateCmd())
	rootCmd.AddCommand(c.newConfigureCmd())
	rootCmd.AddCommand(c.newAddBuildTargetCmd())
	rootCmd.AddCommand(c.newAddTestTargetCmd())
	rootCmd.AddCommand(c.newSetLaunchTargetCmd())
	rootCmd.AddCommand(c.newSetPhasesCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newShareCmd())
	rootCmd.AddCommand(c.newUnshareCmd())
	rootCmd.AddCommand(c.newFmtCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// projectOptions reads the persistent project flags.
func projectOptions(cmd *cobra.Command) app.ProjectOptions {
	configPath, _ := cmd.Flags().GetString("config")
	project, _ := cmd.Flags().GetString("project")
	user, _ := cmd.Flags().GetString("user")
	return app.ProjectOptions{
		Config:  configPath,
		Project: project,
		User:    user,
	}
}
