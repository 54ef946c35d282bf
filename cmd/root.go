package cmd

import (
	"errors"
	"fmt"
	"os"

	"routerstat/internal/cli"
	"routerstat/internal/report"
	"routerstat/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (query failed, bad configuration).
	ExitCodeError = 1
	// ExitCodeUsage indicates that no report, or more than one, was selected.
	ExitCodeUsage = 2
	// ExitCodeConnection indicates the router could not be reached.
	ExitCodeConnection = 3
)

// reportFlag binds one report selector to its command line switch.
type reportFlag struct {
	selector  report.Selector
	name      string
	shorthand string
	usage     string
}

var reportFlags = []reportFlag{
	{report.SelectGeneral, "general", "g", "Show general router statistics"},
	{report.SelectConnections, "connections", "c", "Show connections"},
	{report.SelectLinks, "links", "l", "Show router links"},
	{report.SelectNodes, "nodes", "n", "Show router nodes"},
	{report.SelectAddresses, "address", "a", "Show router addresses"},
	{report.SelectMemory, "memory", "m", "Show memory pool statistics"},
	{report.SelectAutoLinks, "autolinks", "", "Show auto links"},
	{report.SelectLinkRoutes, "linkroutes", "", "Show link routes"},
	{report.SelectLog, "log", "", "Show recent router log records"},
}

// displayName is how the switch is written on the command line.
func (f reportFlag) displayName() string {
	if f.shorthand != "" {
		return "-" + f.shorthand
	}
	return "--" + f.name
}

// rootCmd represents the base command for the routerstat application.
var rootCmd = newRootCmd()

// newRootCmd creates the report command. Exactly one report switch must be
// given per invocation.
func newRootCmd() *cobra.Command {
	flags := &cli.CommandFlags{}
	selected := make(map[report.Selector]*bool, len(reportFlags))
	var named string

	cmd := &cobra.Command{
		Use:   "routerstat",
		Short: "Show diagnostic reports from a message router",
		Long: `routerstat queries the management agent of a running message router
and prints one diagnostic report: general statistics, connections, links,
the router network, addresses, memory pools, auto links, link routes or
the recent log.

Examples:
  routerstat -g                                  # General statistics
  routerstat -l -v                               # Links with extra columns
  routerstat -a --limit 50                       # First 50 addresses
  routerstat -n --endpoint http://router:8672/management
  routerstat --linkroutes --context production -o json
  routerstat --report autolinks`,
		Args: cobra.NoArgs,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selectedReport(selected, named)
			if err != nil {
				return err
			}
			return runReport(cmd, flags, sel)
		},
	}

	cli.RegisterCommonFlags(cmd, flags)
	for _, f := range reportFlags {
		selected[f.selector] = cmd.Flags().BoolP(f.name, f.shorthand, false, f.usage)
	}
	cmd.Flags().StringVar(&named, "report", "", "Select a report by name (g, c, l, n, a, m, autolinks, linkroutes, log)")

	return cmd
}

// selectedReport returns the single report chosen by the switches and
// --report.
func selectedReport(selected map[report.Selector]*bool, named string) (report.Selector, error) {
	var names []string
	var sel report.Selector
	for _, f := range reportFlags {
		if set := selected[f.selector]; set != nil && *set {
			names = append(names, f.displayName())
			sel = f.selector
		}
	}
	if named != "" {
		parsed, err := report.ParseSelector(named)
		if err != nil {
			return "", err
		}
		names = append(names, "--report "+named)
		sel = parsed
	}
	if len(names) != 1 {
		return "", &cli.SelectorError{Selected: names}
	}
	return sel, nil
}

// logLevelEnv overrides the default WARN log level; --debug wins over it.
const logLevelEnv = "ROUTERSTAT_LOG_LEVEL"

func runReport(cmd *cobra.Command, flags *cli.CommandFlags, sel report.Selector) error {
	level := logging.LevelWarn
	if v := os.Getenv(logLevelEnv); v != "" {
		parsed, err := logging.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", logLevelEnv, err)
		}
		level = parsed
	}
	if flags.Debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())

	options, err := flags.ToExecutorOptions()
	if err != nil {
		return err
	}
	options.Out = cmd.OutOrStdout()
	options.Status = cmd.ErrOrStderr()

	executor, err := cli.NewReportExecutor(options)
	if err != nil {
		return err
	}

	logging.Debug("Report", "running report %q against %s", sel, executor.Endpoint())

	ctx := cmd.Context()
	if err := executor.Connect(ctx); err != nil {
		return err
	}
	defer executor.Close()

	return executor.Run(ctx, sel)
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(versionTemplate)
	rootCmd.SilenceErrors = true

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), cli.FormatError(err))
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var selectorErr *cli.SelectorError
	if errors.As(err, &selectorErr) {
		return ExitCodeUsage
	}

	var connErr *cli.ConnectionError
	if errors.As(err, &connErr) {
		return ExitCodeConnection
	}

	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newContextCmd())
}
