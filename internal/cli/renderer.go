package cli

import (
	"fmt"
	"io"
	"strings"

	"routerstat/internal/management"
	"routerstat/internal/report"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nao1215/markdown"
)

// Renderer writes report output in one OutputFormat. It implements
// report.Renderer.
type Renderer struct {
	out       io.Writer
	format    OutputFormat
	noHeaders bool
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, format OutputFormat, noHeaders bool) *Renderer {
	return &Renderer{
		out:       out,
		format:    format,
		noHeaders: noHeaders,
	}
}

// linesDocument is the structured form of terminal-line output.
type linesDocument struct {
	Lines []string `json:"lines" yaml:"lines"`
}

// RenderTable renders one report table.
func (r *Renderer) RenderTable(title string, headers []report.Column, rows [][]any) error {
	if r.format.IsStructured() {
		return r.writeStructured(structuredReport(title, headers, rows))
	}

	switch r.format {
	case OutputFormatPlain:
		return r.renderPlain(title, headers, rows)
	case OutputFormatMarkdown:
		return r.renderMarkdown(title, headers, rows)
	default:
		return r.renderTable(title, headers, rows)
	}
}

// RenderLines writes terminal lines, one per line.
func (r *Renderer) RenderLines(lines []string) error {
	if lines == nil {
		lines = []string{}
	}

	if r.format.IsStructured() {
		return r.writeStructured(linesDocument{Lines: lines})
	}

	switch r.format {
	case OutputFormatMarkdown:
		md := markdown.NewMarkdown(r.out)
		for _, line := range lines {
			md.PlainText(line)
			md.PlainText("")
		}
		return md.Build()
	default:
		for _, line := range lines {
			if _, err := fmt.Fprintln(r.out, line); err != nil {
				return err
			}
		}
		return nil
	}
}

func (r *Renderer) writeStructured(data interface{}) error {
	if r.format == OutputFormatYAML {
		return outputYAML(r.out, data)
	}
	return outputJSON(r.out, data)
}

func (r *Renderer) renderTable(title string, headers []report.Column, rows [][]any) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleRounded)
	if !r.noHeaders {
		t.SetTitle(title)
		header := make(table.Row, len(headers))
		for i, h := range headers {
			header[i] = h.Name
		}
		t.AppendHeader(header)
	}

	var configs []table.ColumnConfig
	for i, h := range headers {
		if h.Numeric {
			configs = append(configs, table.ColumnConfig{
				Number:      i + 1,
				Align:       text.AlignRight,
				AlignHeader: text.AlignRight,
			})
		}
	}
	t.SetColumnConfigs(configs)

	for _, row := range rows {
		cells := formatRow(headers, row)
		tr := make(table.Row, len(cells))
		for i, c := range cells {
			tr[i] = c
		}
		t.AppendRow(tr)
	}

	t.Render()
	return nil
}

func (r *Renderer) renderPlain(title string, headers []report.Column, rows [][]any) error {
	tw := NewPlainTableWriter(r.out)
	tw.SetTitle(title)
	tw.SetNoHeaders(r.noHeaders)

	names := make([]string, len(headers))
	for i, h := range headers {
		names[i] = h.Name
		if h.Numeric {
			tw.SetRightAligned(i)
		}
	}
	tw.SetHeaders(names)

	for _, row := range rows {
		tw.AppendRow(formatRow(headers, row))
	}
	tw.Render()
	return nil
}

// renderMarkdown always emits a header row; markdown tables need one.
// --no-headers only drops the heading. Title lines after the first follow
// the heading as text.
func (r *Renderer) renderMarkdown(title string, headers []report.Column, rows [][]any) error {
	md := markdown.NewMarkdown(r.out)
	if !r.noHeaders {
		heading, rest, _ := strings.Cut(title, "\n")
		md.H2(heading)
		if rest != "" {
			md.PlainText(rest)
		}
		md.PlainText("")
	}

	names := make([]string, len(headers))
	for i, h := range headers {
		names[i] = h.Name
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = formatRow(headers, row)
	}

	md.Table(markdown.TableSet{
		Header: names,
		Rows:   cells,
	})
	return md.Build()
}

// structuredReport wraps a table for JSON and YAML output. Cells keep
// their raw values.
func structuredReport(title string, headers []report.Column, rows [][]any) report.Report {
	if rows == nil {
		rows = [][]any{}
	}
	return report.Report{Title: title, Headers: headers, Rows: rows}
}

// formatRow renders every cell of a row for display, aligned to headers.
func formatRow(headers []report.Column, row []any) []string {
	cells := make([]string, len(headers))
	for i := range headers {
		if i < len(row) {
			cells[i] = FormatCell(row[i], headers[i].Numeric)
		}
	}
	return cells
}

// FormatCell renders one cell. Unset cells are empty and list cells are
// comma-joined. Numbers in numeric columns get comma grouping; text is
// printed verbatim even when it looks numeric.
func FormatCell(v any, numeric bool) string {
	switch c := v.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(c, ", ")
	case []any:
		parts := make([]string, len(c))
		for i, item := range c {
			parts[i] = management.FormatScalar(item)
		}
		return strings.Join(parts, ", ")
	}

	if _, isText := v.(string); numeric && !isText {
		if f, ok := management.NewValue(v).Float(); ok {
			if f == float64(int64(f)) {
				return humanize.Comma(int64(f))
			}
			return humanize.Commaf(f)
		}
	}
	return management.FormatScalar(v)
}
