package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the supported output formats for reports.
type OutputFormat string

const (
	// OutputFormatTable renders a boxed table with a title.
	OutputFormatTable OutputFormat = "table"
	// OutputFormatPlain renders an unboxed, column-aligned table.
	OutputFormatPlain OutputFormat = "plain"
	// OutputFormatJSON emits the report as JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML emits the report as YAML.
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatMarkdown renders a markdown heading and table.
	OutputFormatMarkdown OutputFormat = "markdown"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatTable,
	OutputFormatPlain,
	OutputFormatJSON,
	OutputFormatYAML,
	OutputFormatMarkdown,
}

// ValidateOutputFormat returns an error listing the valid formats when
// format is not one of them.
func ValidateOutputFormat(format string) error {
	for _, f := range ValidOutputFormats {
		if OutputFormat(format) == f {
			return nil
		}
	}

	names := make([]string, len(ValidOutputFormats))
	for i, f := range ValidOutputFormats {
		names[i] = string(f)
	}
	return fmt.Errorf("unsupported output format: %q (valid: %s)", format, strings.Join(names, ", "))
}

// IsStructured reports whether the format is meant for programs rather
// than terminals.
func (f OutputFormat) IsStructured() bool {
	return f == OutputFormatJSON || f == OutputFormatYAML
}

// outputJSON marshals data to indented JSON.
func outputJSON(w io.Writer, data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format as JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// outputYAML marshals data to YAML.
func outputYAML(w io.Writer, data interface{}) error {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to format as YAML: %w", err)
	}
	_, err = w.Write(yamlData)
	return err
}
