package cli

import (
	"time"

	"routerstat/internal/config"
	"routerstat/internal/management"

	"github.com/spf13/cobra"
)

// CommandFlags holds the flag values shared by routerstat commands.
type CommandFlags struct {
	// OutputFormat overrides the configured output format when set.
	OutputFormat string
	NoHeaders    bool
	Quiet        bool
	Debug        bool
	ConfigPath   string
	Endpoint     string
	Context      string
	Transport    string
	Timeout      time.Duration
	// Limit overrides the configured row limit when positive.
	Limit       int
	Verbose     bool
	TLSCACert   string
	TLSCert     string
	TLSKey      string
	TLSInsecure bool
}

// RegisterConnectionFlags registers the flags needed to locate the config
// directory and the router: --config-path, --endpoint, --context and
// --debug.
func RegisterConnectionFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config-path", config.GetDefaultConfigPath(), "Configuration directory")
	cmd.PersistentFlags().StringVar(&flags.Endpoint, "endpoint", "", "Router management endpoint URL (env: ROUTERSTAT_ENDPOINT)")
	cmd.PersistentFlags().StringVar(&flags.Context, "context", "", "Use a specific context (env: ROUTERSTAT_CONTEXT)")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
}

// RegisterCommonFlags registers the connection flags plus the output,
// transport and TLS flags used by report commands.
func RegisterCommonFlags(cmd *cobra.Command, flags *CommandFlags) {
	RegisterConnectionFlags(cmd, flags)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.OutputFormat, "output", "o", "", "Output format (table, plain, json, yaml, markdown)")
	pf.BoolVar(&flags.NoHeaders, "no-headers", false, "Suppress titles and header rows")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress the progress spinner")
	pf.StringVar(&flags.Transport, "transport", "", "Management transport (http, streamable-http, sse)")
	pf.DurationVar(&flags.Timeout, "timeout", 0, "Timeout for each management request")
	pf.IntVar(&flags.Limit, "limit", 0, "Maximum number of rows to request (default 1000)")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Show extra columns in the links and nodes reports")
	pf.StringVar(&flags.TLSCACert, "tls-ca-cert", "", "CA certificate for https endpoints")
	pf.StringVar(&flags.TLSCert, "tls-cert", "", "Client certificate for https endpoints")
	pf.StringVar(&flags.TLSKey, "tls-key", "", "Client key for https endpoints")
	pf.BoolVar(&flags.TLSInsecure, "tls-insecure", false, "Skip server certificate verification")
}

// ToExecutorOptions converts CommandFlags to ExecutorOptions, validating the
// output format and transport when they are given.
func (f *CommandFlags) ToExecutorOptions() (ExecutorOptions, error) {
	if f.OutputFormat != "" {
		if err := ValidateOutputFormat(f.OutputFormat); err != nil {
			return ExecutorOptions{}, err
		}
	}
	if f.Transport != "" {
		if err := ValidateTransport(f.Transport); err != nil {
			return ExecutorOptions{}, err
		}
	}

	return ExecutorOptions{
		Format:     OutputFormat(f.OutputFormat),
		NoHeaders:  f.NoHeaders,
		Quiet:      f.Quiet,
		Debug:      f.Debug,
		ConfigPath: f.ConfigPath,
		Endpoint:   f.Endpoint,
		Context:    f.Context,
		Transport:  management.TransportType(f.Transport),
		Timeout:    f.Timeout,
		Limit:      f.Limit,
		Verbose:    f.Verbose,
		TLS: management.TLSOptions{
			CACertPath:         f.TLSCACert,
			CertPath:           f.TLSCert,
			KeyPath:            f.TLSKey,
			InsecureSkipVerify: f.TLSInsecure,
		},
	}, nil
}

// ValidateTransport checks that transport names a supported management
// transport.
func ValidateTransport(transport string) error {
	return config.ValidateOneOf("transport", transport, transportNames())
}

func transportNames() []string {
	names := make([]string, len(management.ValidTransports))
	for i, t := range management.ValidTransports {
		names[i] = string(t)
	}
	return names
}
