package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// PlainTableWriter renders a table without box-drawing characters, for
// piping into grep, awk or cut.
type PlainTableWriter struct {
	title        string
	headers      []string
	rows         [][]string
	columnWidths []int
	rightAlign   map[int]bool
	// minPadding is the minimum space between columns
	minPadding  int
	showHeaders bool
	output      io.Writer
}

// NewPlainTableWriter creates a plain table writer. Headers are shown
// unless SetNoHeaders(true) is called.
func NewPlainTableWriter(output io.Writer) *PlainTableWriter {
	return &PlainTableWriter{
		headers:      []string{},
		rows:         [][]string{},
		columnWidths: []int{},
		rightAlign:   map[int]bool{},
		minPadding:   3,
		showHeaders:  true,
		output:       output,
	}
}

// SetTitle sets a line printed above the header row. The title is
// suppressed together with the headers.
func (w *PlainTableWriter) SetTitle(title string) {
	w.title = title
}

// SetHeaders sets the column headers. Headers are displayed in uppercase.
func (w *PlainTableWriter) SetHeaders(headers []string) {
	w.headers = make([]string, len(headers))
	w.columnWidths = make([]int, len(headers))
	for i, h := range headers {
		upper := strings.ToUpper(h)
		w.headers[i] = upper
		w.columnWidths[i] = text.RuneWidthWithoutEscSequences(upper)
	}
}

// SetRightAligned right-aligns the given zero-based columns.
func (w *PlainTableWriter) SetRightAligned(columns ...int) {
	for _, c := range columns {
		w.rightAlign[c] = true
	}
}

// SetNoHeaders controls whether to suppress the header row.
func (w *PlainTableWriter) SetNoHeaders(noHeaders bool) {
	w.showHeaders = !noHeaders
}

// AppendRow adds a row, padding or truncating it to the header count.
func (w *PlainTableWriter) AppendRow(row []string) {
	normalizedRow := make([]string, len(w.headers))
	for i := range w.headers {
		if i >= len(row) {
			continue
		}
		normalizedRow[i] = row[i]
		if width := text.RuneWidthWithoutEscSequences(row[i]); width > w.columnWidths[i] {
			w.columnWidths[i] = width
		}
	}
	w.rows = append(w.rows, normalizedRow)
}

// Render writes the table.
func (w *PlainTableWriter) Render() {
	if len(w.headers) == 0 {
		return
	}

	if len(w.rows) == 0 && !w.showHeaders {
		return
	}

	if w.showHeaders {
		if w.title != "" {
			fmt.Fprintln(w.output, w.title)
		}
		w.printRow(w.headers)
	}

	for _, row := range w.rows {
		w.printRow(row)
	}
}

func (w *PlainTableWriter) printRow(row []string) {
	var sb strings.Builder
	for i, cell := range row {
		pad := strings.Repeat(" ", w.columnWidths[i]-text.RuneWidthWithoutEscSequences(cell))
		if w.rightAlign[i] {
			sb.WriteString(pad)
			sb.WriteString(cell)
		} else {
			sb.WriteString(cell)
			sb.WriteString(pad)
		}
		if i < len(row)-1 {
			sb.WriteString(strings.Repeat(" ", w.minPadding))
		}
	}
	fmt.Fprintln(w.output, strings.TrimRight(sb.String(), " "))
}
