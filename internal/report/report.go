package report

import (
	"context"
	"time"

	"routerstat/internal/management"
)

// DefaultLimit bounds every limited query when the caller sets no limit.
const DefaultLimit = 1000

// Column is a table header. Numeric columns are compared as numbers when
// sorting and rendered with comma grouping.
type Column struct {
	Name    string `json:"name" yaml:"name"`
	Numeric bool   `json:"numeric,omitempty" yaml:"numeric,omitempty"`
}

// Report is one rendered table. Rows are aligned positionally to Headers;
// a nil cell is an unset attribute.
type Report struct {
	Title   string   `json:"title" yaml:"title"`
	Headers []Column `json:"headers" yaml:"headers"`
	Rows    [][]any  `json:"rows" yaml:"rows"`
}

// Output is the result of one builder: either a table or terminal lines
// (standalone router, no memory statistics, log listing).
type Output struct {
	Report *Report
	Lines  []string
}

// Render sends the output to r as a table or as lines.
func (o Output) Render(r Renderer) error {
	if o.Report != nil {
		return r.RenderTable(o.Report.Title, o.Report.Headers, o.Report.Rows)
	}
	return r.RenderLines(o.Lines)
}

// Options carries the per-invocation settings every builder reads.
type Options struct {
	// Verbose adds the optional columns of the links and nodes reports.
	Verbose bool
	// Limit bounds the limited queries. Zero means DefaultLimit.
	Limit int
	// Location is used for log timestamps. Nil means time.Local.
	Location *time.Location
}

func (o Options) limit() int {
	if o.Limit <= 0 {
		return DefaultLimit
	}
	return o.Limit
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// Renderer displays builder output.
type Renderer interface {
	RenderTable(title string, headers []Column, rows [][]any) error
	RenderLines(lines []string) error
}

// builderFunc builds one report kind with exactly one management call.
type builderFunc func(ctx context.Context, client management.Client, opts Options) (Output, error)

func tableOutput(title string, headers []Column, rows [][]any) Output {
	if rows == nil {
		rows = [][]any{}
	}
	return Output{Report: &Report{Title: title, Headers: headers, Rows: rows}}
}

func linesOutput(lines ...string) Output {
	return Output{Lines: lines}
}

// col and num declare plain and numeric headers.
func col(name string) Column { return Column{Name: name} }
func num(name string) Column { return Column{Name: name, Numeric: true} }

// cell passes an attribute through verbatim; unset attributes become nil.
func cell(v management.Value) any {
	return v.Raw()
}

// numCell returns numeric attributes as float64 so sorting and grouping
// see a number. Values that do not parse are passed through.
func numCell(v management.Value) any {
	if !v.IsSet() {
		return nil
	}
	if f, ok := v.Float(); ok {
		return f
	}
	return v.Raw()
}
