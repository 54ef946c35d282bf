package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"routerstat/internal/report"
)

var (
	testHeaders = []report.Column{
		{Name: "addr"},
		{Name: "in", Numeric: true},
		{Name: "neighbors"},
	}
	testRows = [][]any{
		{"queue", float64(1234567), []string{"R1", "R2"}},
		{"topic", nil, []string{}},
	}
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		numeric bool
		want    string
	}{
		{"nil", nil, true, ""},
		{"string", "queue", false, "queue"},
		{"grouped integer", float64(1234567), true, "1,234,567"},
		{"small integer", float64(12), true, "12"},
		{"grouped fraction", 1234.5, true, "1,234.5"},
		{"numeric column with text", "n/a", true, "n/a"},
		{"numeric column with numeric text", "1234", true, "1234"},
		{"numeric column with integer type", 1234, true, "1,234"},
		{"plain number not grouped", float64(1234567), false, "1234567"},
		{"string list", []string{"R1", "R2"}, false, "R1, R2"},
		{"raw list", []any{"R1", float64(3)}, false, "R1, 3"},
		{"bool", true, false, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(tt.value, tt.numeric))
		})
	}
}

func TestRenderer_Table(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, OutputFormatTable, false)

	require.NoError(t, r.RenderTable("Router Addresses", testHeaders, testRows))

	out := buf.String()
	assert.Contains(t, out, "Router Addresses")
	assert.Contains(t, out, "ADDR")
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "R1, R2")
	assert.Contains(t, out, "╭")
}

func TestRenderer_TableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, OutputFormatTable, true)

	require.NoError(t, r.RenderTable("Router Addresses", testHeaders, testRows))

	out := buf.String()
	assert.NotContains(t, out, "Router Addresses")
	assert.NotContains(t, out, "ADDR")
	assert.Contains(t, out, "queue")
}

func TestRenderer_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, OutputFormatPlain, false)

	require.NoError(t, r.RenderTable("Router Addresses", testHeaders, testRows))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Router Addresses", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ADDR"))
	assert.Contains(t, lines[2], "1,234,567")
	assert.Equal(t, "topic", strings.TrimSpace(lines[3]))
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, OutputFormatJSON, false)

	require.NoError(t, r.RenderTable("Router Addresses", testHeaders, testRows))

	var doc struct {
		Title   string `json:"title"`
		Headers []struct {
			Name    string `json:"name"`
			Numeric bool   `json:"numeric"`
		} `json:"headers"`
		Rows [][]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Router Addresses", doc.Title)
	assert.Len(t, doc.Headers, 3)
	assert.True(t, doc.Headers[1].Numeric)
	assert.Equal(t, float64(1234567), doc.Rows[0][1])
	assert.Nil(t, doc.Rows[1][1])
	assert.Equal(t, []any{"R1", "R2"}, doc.Rows[0][2])
}

func TestRenderer_YAMLLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, OutputFormatYAML, false)

	require.NoError(t, r.RenderLines([]string{report.StandaloneMessage}))

	var doc map[string][]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []string{report.StandaloneMessage}, doc["lines"])
}

func TestRenderer_Markdown(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, OutputFormatMarkdown, false)

	require.NoError(t, r.RenderTable("Link Routes", []report.Column{{Name: "prefix"}, {Name: "dir"}},
		[][]any{{"org.apache", "in"}}))

	out := buf.String()
	assert.Contains(t, out, "## Link Routes")
	assert.Contains(t, out, "prefix")
	assert.Contains(t, out, "org.apache")
	assert.Contains(t, out, "|")
}

func TestRenderer_MultiLineTitle(t *testing.T) {
	const title = "Routers in the Network\nLast Topology Change: Thursday Jan 01 00:04:10 1970 GMT"
	headers := []report.Column{{Name: "router-id"}}
	rows := [][]any{{strings.Repeat("R", 80)}}

	tests := []struct {
		name   string
		format OutputFormat
		want   []string
	}{
		{"table", OutputFormatTable, []string{"Routers in the Network", "Last Topology Change: Thursday Jan 01 00:04:10 1970 GMT"}},
		{"plain", OutputFormatPlain, []string{"Routers in the Network", "Last Topology Change: Thursday Jan 01 00:04:10 1970 GMT"}},
		{"markdown", OutputFormatMarkdown, []string{"## Routers in the Network", "Last Topology Change: Thursday Jan 01 00:04:10 1970 GMT"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRenderer(&buf, tt.format, false)
			require.NoError(t, r.RenderTable(title, headers, rows))

			out := buf.String()
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			assert.NotContains(t, out, "Network, Last")
		})
	}
}

func TestRenderer_Lines(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, OutputFormatTable, false)

	require.NoError(t, r.RenderLines([]string{"first", "second"}))
	assert.Equal(t, "first\nsecond\n", buf.String())
}
