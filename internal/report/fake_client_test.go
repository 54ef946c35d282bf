package report

import (
	"context"

	"routerstat/internal/management"
)

type queryCall struct {
	entityType string
	attrs      []string
	limit      int
}

// fakeClient answers queries from canned rows keyed by entity type and
// records every call.
type fakeClient struct {
	entities map[string][]map[string]any
	logs     []management.LogRecord
	err      error

	queries  []queryCall
	logLimit int
}

func (f *fakeClient) Query(_ context.Context, entityType string, attrs []string, limit int) ([]management.Entity, error) {
	f.queries = append(f.queries, queryCall{entityType: entityType, attrs: attrs, limit: limit})
	if f.err != nil {
		return nil, f.err
	}
	var out []management.Entity
	for _, attrs := range f.entities[entityType] {
		out = append(out, management.NewEntity(attrs))
	}
	return out, nil
}

func (f *fakeClient) GetLog(_ context.Context, limit int) ([]management.LogRecord, error) {
	f.logLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.logs, nil
}

func (f *fakeClient) Close() error { return nil }

// recordingRenderer captures what a dispatcher renders.
type recordingRenderer struct {
	tables []Report
	lines  [][]string
}

func (r *recordingRenderer) RenderTable(title string, headers []Column, rows [][]any) error {
	r.tables = append(r.tables, Report{Title: title, Headers: headers, Rows: rows})
	return nil
}

func (r *recordingRenderer) RenderLines(lines []string) error {
	r.lines = append(r.lines, lines)
	return nil
}

func headerNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
