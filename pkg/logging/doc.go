// Package logging provides the structured logger used across routerstat.
//
// It is a thin layer over Go's standard slog package: every entry carries a
// subsystem attribute and an optional error, and level filtering happens in
// the handler so filtered messages cost nothing.
//
// # Usage
//
//	// Initialize once, before any command runs
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("HTTPClient", "QUERY %s count=%d", entityType, limit)
//	logging.Info("ConfigLoader", "Loaded configuration from %s", path)
//	logging.Error("Report", err, "query failed")
//
// Report output goes to stdout; logs go to stderr so the two never mix when
// output is piped.
//
// # Subsystems
//
//   - ConfigLoader: configuration and context file loading
//   - HTTPClient: the HTTP management bridge transport
//   - MCPClient: the MCP management gateway transport
//   - Report: report building and dispatch
package logging
