// Package commands implements the CLI for the six contact database.
package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/six/internal/app"
	"go.trai.ch/six/internal/build"
	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/six/internal/core/ports"
	"go.trai.ch/six/internal/report"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for six.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command

	selected  report.Report
	reportErr error

	local  string
	output string
	force  bool
}

// New creates a new CLI instance with the given app. args is the raw command
// line (excluding the program name); the requested report is resolved up
// front so it can contribute its own flags before parsing. When no report
// option is present, the settings file may name the default.
func New(a *app.App, settings ports.SettingsLoader, args []string) *CLI {
	c := &CLI{app: a}
	name := scanReportName(args)
	if name == "" {
		name = report.DefaultName
		if s, err := settings.Load(); err == nil && s.DefaultReport != "" {
			name = s.DefaultReport
		}
	}
	c.selected, c.reportErr = report.Lookup(name)

	rootCmd := &cobra.Command{
		Use:           "six [flags] [query...]",
		Short:         "Query the contact database",
		Long:          "six compiles the contact source file into a cached model and prints the entries matching a query expression.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runQuery,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Everything after the first positional token belongs to the query
	// expression, where words like "-or" are operators, not flags.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().StringP("report", "r", name, "Report to render: "+strings.Join(report.Summaries(), "; "))
	rootCmd.Flags().StringVarP(&c.local, "local", "l", "", "Render phone numbers relative to this place")
	rootCmd.Flags().StringVarP(&c.output, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&c.force, "force", "f", false, "Recompile the source, bypassing the cached model")
	if c.selected != nil {
		c.selected.RegisterOptions(rootCmd.Flags())
	}

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.SetArgs(args)
	return c
}

func (c *CLI) runQuery(cmd *cobra.Command, args []string) error {
	if c.reportErr != nil {
		return c.reportErr
	}
	// Combined shorthands such as -fr NAME slip past scanReportName, which
	// would leave the default report's flags registered for a different
	// report. Refuse rather than render the wrong one.
	if name, err := cmd.Flags().GetString("report"); err == nil && name != c.selected.Name() {
		return zerr.With(zerr.Wrap(domain.ErrBadArgument, "report option must stand on its own, write it as -r "+name), "report", name)
	}
	return c.app.Run(cmd.Context(), app.Request{
		Report: c.selected,
		Local:  c.local,
		Output: c.output,
		Out:    cmd.OutOrStdout(),
		Force:  c.force,
		Query:  args,
	})
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

// scanReportName finds the --report value ahead of real flag parsing, so the
// chosen report can register its flags first. It returns "" when the flag is
// absent or dangling, leaving the choice to the settings file.
func scanReportName(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-r" || arg == "--report":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--report="):
			return arg[len("--report="):]
		case strings.HasPrefix(arg, "-r") && !strings.HasPrefix(arg, "--"):
			return strings.TrimPrefix(arg[len("-r"):], "=")
		case arg == "--":
			return ""
		}
	}
	return ""
}
