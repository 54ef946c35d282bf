// Package cli connects routerstat commands to a router and renders reports.
//
// ReportExecutor resolves where and how to connect (flags, then the
// selected context, then config.yaml), creates the management client with
// a progress spinner, and runs one report through report.Dispatcher.
// Connection failures come back as *ConnectionError, classified as TLS,
// DNS, timeout or network errors.
//
// Renderer implements report.Renderer for the supported output formats:
//   - table: rounded go-pretty table with the report title
//   - plain: unboxed columns (PlainTableWriter) for grep and awk
//   - json, yaml: {title, headers, rows} or {lines}
//   - markdown: heading plus markdown table
//
// Numeric columns are right-aligned and comma-grouped; list cells are
// joined with ", ".
package cli
