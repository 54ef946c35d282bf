package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"time"

	"routerstat/internal/config"
	routerctx "routerstat/internal/context"
	"routerstat/internal/management"
	"routerstat/internal/report"
	"routerstat/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ExecutorOptions contains configuration options for report execution.
// Zero values fall back to the selected context, then to config.yaml.
type ExecutorOptions struct {
	Format     OutputFormat
	NoHeaders  bool
	Quiet      bool
	Debug      bool
	ConfigPath string
	Endpoint   string
	Context    string
	Transport  management.TransportType
	Timeout    time.Duration
	Limit      int
	Verbose    bool
	TLS        management.TLSOptions
	// Out receives report output. Nil means os.Stdout.
	Out io.Writer
	// Status receives the spinner. Nil means os.Stderr.
	Status io.Writer
}

// newManagementClient is replaced in tests.
var newManagementClient = management.NewClient

// ReportExecutor connects to a router and renders one report.
type ReportExecutor struct {
	options  ExecutorOptions
	client   management.Client
	renderer *Renderer
	// clientOptions is the fully resolved connection configuration
	clientOptions management.Options
	reportOptions report.Options
}

// NewReportExecutor resolves the endpoint, transport, limit and output
// format from flags, contexts and config.yaml. It does not connect.
func NewReportExecutor(options ExecutorOptions) (*ReportExecutor, error) {
	if options.ConfigPath == "" {
		return nil, fmt.Errorf("Logic error: empty report executor ConfigPath")
	}

	cfg, err := config.LoadConfig(options.ConfigPath)
	if err != nil {
		return nil, err
	}

	target, err := ResolveEndpoint(routerctx.NewStorageWithPath(options.ConfigPath), options.Endpoint, options.Context)
	if err != nil {
		return nil, err
	}

	endpoint := firstString(target.Endpoint, cfg.Endpoint)
	transport := management.TransportType(firstString(string(options.Transport), target.Transport, cfg.Transport))
	format := OutputFormat(firstString(string(options.Format), settingsOutput(target.Settings), cfg.Output))
	limit := firstPositive(options.Limit, settingsLimit(target.Settings), cfg.Limit)

	if err := ValidateOutputFormat(string(format)); err != nil {
		return nil, err
	}

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = cfg.Timeout
	}

	tlsOptions := management.TLSOptions{
		CACertPath:         firstString(options.TLS.CACertPath, cfg.TLS.CACert),
		CertPath:           firstString(options.TLS.CertPath, cfg.TLS.Cert),
		KeyPath:            firstString(options.TLS.KeyPath, cfg.TLS.Key),
		InsecureSkipVerify: options.TLS.InsecureSkipVerify || cfg.TLS.InsecureSkipVerify,
	}

	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Status == nil {
		options.Status = os.Stderr
	}
	options.Format = format

	if target.Context != "" {
		logging.Debug("Report", "Using context %s (%s)", target.Context, endpoint)
	}

	return &ReportExecutor{
		options:  options,
		renderer: NewRenderer(options.Out, format, options.NoHeaders),
		clientOptions: management.Options{
			Endpoint:  endpoint,
			Transport: transport,
			Timeout:   timeout,
			TLS:       tlsOptions,
		},
		reportOptions: report.Options{
			Verbose: options.Verbose,
			Limit:   limit,
		},
	}, nil
}

// Endpoint returns the resolved management endpoint.
func (e *ReportExecutor) Endpoint() string {
	return e.clientOptions.Endpoint
}

// Connect creates the management client. Failures are returned as
// *ConnectionError.
func (e *ReportExecutor) Connect(ctx context.Context) error {
	stop := e.startSpinner(fmt.Sprintf(" Connecting to %s...", e.clientOptions.Endpoint))

	client, err := newManagementClient(ctx, e.clientOptions)
	if err != nil {
		stop(false)
		logging.Error("Executor", err, "Failed to connect to %s", e.clientOptions.Endpoint)
		return ClassifyConnectionError(err, e.clientOptions.Endpoint)
	}

	stop(true)
	logging.Info("Executor", "Connected to %s", e.clientOptions.Endpoint)
	e.client = client
	return nil
}

// Run builds the selected report and renders it. Nothing is rendered when
// the query fails.
func (e *ReportExecutor) Run(ctx context.Context, sel report.Selector) error {
	if e.client == nil {
		return fmt.Errorf("not connected")
	}

	dispatcher := report.NewDispatcher(e.client, e.renderer, e.reportOptions)

	stop := e.startSpinner(" Querying router...")
	out, err := dispatcher.Build(ctx, sel)
	stop(err == nil)
	if err != nil {
		if isTransportError(err) {
			logging.Error("Executor", err, "Lost connection to %s while querying %s report", e.clientOptions.Endpoint, sel)
			return ClassifyConnectionError(err, e.clientOptions.Endpoint)
		}
		return err
	}

	return out.Render(e.renderer)
}

// Close releases the management client.
func (e *ReportExecutor) Close() error {
	if e.client == nil {
		return nil
	}
	return e.client.Close()
}

// startSpinner shows progress on the status writer for table output. The
// returned func stops it; ok=false leaves a failure message.
func (e *ReportExecutor) startSpinner(suffix string) func(ok bool) {
	if e.options.Quiet || e.options.Debug || e.options.Format != OutputFormatTable {
		return func(bool) {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(e.options.Status))
	s.Suffix = suffix
	s.Start()
	return func(ok bool) {
		if !ok {
			s.FinalMSG = text.FgRed.Sprint("Failed to query router") + "\n"
		}
		s.Stop()
	}
}

// isTransportError reports whether err came from the network rather than
// from the management agent.
func isTransportError(err error) bool {
	if management.IsQueryError(err) {
		return false
	}

	var urlErr *url.Error
	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &urlErr) || errors.As(err, &dnsErr) || errors.As(err, &opErr) {
		return true
	}
	return classify(err) != ConnectionErrorUnknown
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func settingsOutput(s *routerctx.ContextSettings) string {
	if s == nil {
		return ""
	}
	return s.Output
}

func settingsLimit(s *routerctx.ContextSettings) int {
	if s == nil {
		return 0
	}
	return s.Limit
}
