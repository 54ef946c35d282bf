package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"routerstat/internal/cli"
	routerctx "routerstat/internal/context"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newContextCmd creates the context command group.
func newContextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Manage routerstat contexts",
		Long: `Manage named contexts for different router management endpoints.

Contexts provide a convenient way to work with several routers without
specifying --endpoint for every report.

Examples:
  routerstat context                                  # List all contexts
  routerstat context current                          # Show current context
  routerstat context use production                   # Switch to context
  routerstat context add edge --endpoint <url>        # Add new context
  routerstat context add edge --endpoint <url> --use  # Add and switch
  routerstat context delete edge                      # Remove a context
  routerstat context show production -o yaml          # Show details

Contexts are stored in contexts.yaml next to config.yaml.

Precedence (highest to lowest):
  1. --endpoint flag
  2. --context flag
  3. ROUTERSTAT_CONTEXT environment variable
  4. current-context from contexts.yaml
  5. endpoint from config.yaml or ROUTERSTAT_ENDPOINT`,
		Args: cobra.NoArgs,
		RunE: runContextList,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List all contexts",
			Long: `List all configured contexts.

The current context is marked with an asterisk (*).`,
			Args: cobra.NoArgs,
			RunE: runContextList,
		},
		&cobra.Command{
			Use:   "current",
			Short: "Show current context name",
			Long: `Display the name of the currently active context.

Prints nothing if no context is set.`,
			Args: cobra.NoArgs,
			RunE: runContextCurrent,
		},
		&cobra.Command{
			Use:               "use <name>",
			Aliases:           []string{"switch"},
			Short:             "Switch to a different context",
			Args:              cobra.ExactArgs(1),
			ValidArgsFunction: completeContextNames,
			RunE:              runContextUse,
		},
		newContextAddCmd(),
		newContextDeleteCmd(),
		newContextShowCmd(),
	)

	return cmd
}

func newContextAddCmd() *cobra.Command {
	var (
		newContext routerctx.Context
		settings   routerctx.ContextSettings
		setCurrent bool
	)

	cmd := &cobra.Command{
		Use:   "add <name> --endpoint <url>",
		Short: "Add a new context",
		Long: `Add a new named context pointing to a router management endpoint.

Context names must:
  - Be between 1 and 63 characters
  - Contain only lowercase letters, numbers, and hyphens
  - Start and end with an alphanumeric character

Examples:
  routerstat context add local --endpoint http://localhost:8672/management
  routerstat context add edge --endpoint https://edge.example.com/mcp --transport streamable-http
  routerstat context add hub --endpoint http://hub:8672/management --limit 200 -o plain --use`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newContext.Name = args[0]
			if settings != (routerctx.ContextSettings{}) {
				newContext.Settings = &settings
			}
			return runContextAdd(cmd, newContext, setCurrent)
		},
	}

	cmd.Flags().StringVar(&newContext.Endpoint, "endpoint", "", "Endpoint URL for the context (required)")
	cmd.Flags().StringVar(&newContext.Transport, "transport", "", "Management transport for the context (http, streamable-http, sse)")
	cmd.Flags().StringVarP(&settings.Output, "output", "o", "", "Default output format for the context")
	cmd.Flags().IntVar(&settings.Limit, "limit", 0, "Default row limit for the context")
	cmd.Flags().BoolVar(&setCurrent, "use", false, "Set as current context after adding")
	_ = cmd.MarkFlagRequired("endpoint")

	return cmd
}

func newContextDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a context",
		Long: `Remove a context by name.

If the deleted context was the current context, the current context will be cleared.

By default, this command asks for confirmation. Use --force to skip the prompt.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeContextNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContextDelete(cmd, args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

func newContextShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:               "show <name>",
		Aliases:           []string{"describe", "get"},
		Short:             "Show context details",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeContextNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContextShow(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format (text, json, yaml)")
	return cmd
}

// contextStorage opens contexts.yaml in the directory given by --config-path.
func contextStorage(cmd *cobra.Command) (*routerctx.Storage, error) {
	path, err := cmd.Flags().GetString("config-path")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context storage: %w", err)
	}
	return routerctx.NewStorageWithPath(path), nil
}

func contextQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return quiet
}

// completeContextNames provides shell completion for context names
func completeContextNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	storage, err := contextStorage(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := storage.GetContextNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func runContextList(cmd *cobra.Command, args []string) error {
	storage, err := contextStorage(cmd)
	if err != nil {
		return err
	}

	config, err := storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load contexts: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(config.Contexts) == 0 {
		if !contextQuiet(cmd) {
			fmt.Fprintln(out, "No contexts configured yet.")
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, "Get started by adding your first context:")
			fmt.Fprintln(out, "  routerstat context add local --endpoint http://localhost:8672/management --use")
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CURRENT\tNAME\tENDPOINT\tTRANSPORT")

	for _, ctx := range config.Contexts {
		current := ""
		if ctx.Name == config.CurrentContext {
			current = "*"
		}
		transport := ctx.Transport
		if transport == "" {
			transport = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", current, ctx.Name, ctx.Endpoint, transport)
	}

	return w.Flush()
}

func runContextCurrent(cmd *cobra.Command, args []string) error {
	storage, err := contextStorage(cmd)
	if err != nil {
		return err
	}

	name, err := storage.GetCurrentContextName()
	if err != nil {
		return fmt.Errorf("failed to get current context: %w", err)
	}

	// No current context: print nothing, for scripting.
	if name == "" {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}

func runContextUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	storage, err := contextStorage(cmd)
	if err != nil {
		return err
	}

	if err := storage.SetCurrentContext(name); err != nil {
		var notFoundErr *routerctx.ContextNotFoundError
		if errors.As(err, &notFoundErr) {
			return fmt.Errorf("context %q not found. Use 'routerstat context list' to see available contexts", name)
		}
		return fmt.Errorf("failed to set current context: %w", err)
	}

	if !contextQuiet(cmd) {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Switched to context %q", name)))
	}
	return nil
}

func runContextAdd(cmd *cobra.Command, ctx routerctx.Context, setCurrent bool) error {
	if ctx.Transport != "" {
		if err := cli.ValidateTransport(ctx.Transport); err != nil {
			return err
		}
	}
	if ctx.Settings != nil && ctx.Settings.Output != "" {
		if err := cli.ValidateOutputFormat(ctx.Settings.Output); err != nil {
			return err
		}
	}

	storage, err := contextStorage(cmd)
	if err != nil {
		return err
	}

	if err := storage.AddContext(ctx); err != nil {
		return fmt.Errorf("failed to add context: %w", err)
	}

	out := cmd.OutOrStdout()
	quiet := contextQuiet(cmd)
	if !quiet {
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Context %q added.", ctx.Name)))
	}

	if setCurrent {
		if err := storage.SetCurrentContext(ctx.Name); err != nil {
			return fmt.Errorf("failed to set current context: %w", err)
		}
		if !quiet {
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Switched to context %q", ctx.Name)))
		}
	} else if !quiet {
		currentName, _ := storage.GetCurrentContextName()
		if currentName == "" {
			fmt.Fprintf(out, "\nTo use this context, run:\n")
			fmt.Fprintf(out, "  routerstat context use %s\n", ctx.Name)
		}
	}

	return nil
}

func runContextDelete(cmd *cobra.Command, name string, force bool) error {
	storage, err := contextStorage(cmd)
	if err != nil {
		return err
	}

	ctx, err := storage.GetContext(name)
	if err != nil {
		return fmt.Errorf("failed to check context: %w", err)
	}
	if ctx == nil {
		return &routerctx.ContextNotFoundError{Name: name}
	}

	currentName, _ := storage.GetCurrentContextName()
	wasCurrent := currentName == name

	out := cmd.OutOrStdout()
	quiet := contextQuiet(cmd)
	if !force {
		prompt := fmt.Sprintf("Delete context %q?", name)
		if wasCurrent {
			prompt = fmt.Sprintf("Delete context %q (current context)?", name)
		}
		if !confirmAction(cmd.InOrStdin(), out, prompt) {
			if !quiet {
				fmt.Fprintln(out, "Aborted.")
			}
			return nil
		}
	}

	if err := storage.DeleteContext(name); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}

	if !quiet {
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Context %q deleted.", name)))
		if wasCurrent {
			fmt.Fprintln(out, cli.FormatWarning("This was the current context. Current context is now unset."))
		}
	}

	return nil
}

// contextDetails represents the output structure for show command
type contextDetails struct {
	Name      string                     `json:"name" yaml:"name"`
	Endpoint  string                     `json:"endpoint" yaml:"endpoint"`
	Transport string                     `json:"transport,omitempty" yaml:"transport,omitempty"`
	Current   bool                       `json:"current" yaml:"current"`
	Settings  *routerctx.ContextSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

func runContextShow(cmd *cobra.Command, name, format string) error {
	storage, err := contextStorage(cmd)
	if err != nil {
		return err
	}

	config, err := storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load contexts: %w", err)
	}

	ctx := config.GetContext(name)
	if ctx == nil {
		return &routerctx.ContextNotFoundError{Name: name}
	}

	details := contextDetails{
		Name:      ctx.Name,
		Endpoint:  ctx.Endpoint,
		Transport: ctx.Transport,
		Current:   config.CurrentContext == name,
		Settings:  ctx.Settings,
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := json.MarshalIndent(details, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(details)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Fprint(out, string(data))

	default:
		fmt.Fprintf(out, "Name:      %s\n", details.Name)
		fmt.Fprintf(out, "Endpoint:  %s\n", details.Endpoint)
		if details.Transport != "" {
			fmt.Fprintf(out, "Transport: %s\n", details.Transport)
		}
		if details.Current {
			fmt.Fprintf(out, "Current:   yes\n")
		}
		if s := details.Settings; s != nil {
			fmt.Fprintln(out, "Settings:")
			if s.Output != "" {
				fmt.Fprintf(out, "  output: %s\n", s.Output)
			}
			if s.Limit > 0 {
				fmt.Fprintf(out, "  limit:  %d\n", s.Limit)
			}
		}
	}

	return nil
}

// confirmAction prompts the user for confirmation and returns true if they confirm.
func confirmAction(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
