package report

import (
	"context"
	"fmt"

	"routerstat/internal/management"
)

func buildAutoLinks(ctx context.Context, client management.Client, opts Options) (Output, error) {
	headers := []Column{
		col("addr"),
		col("dir"),
		col("phs"),
		col("link"),
		col("status"),
		col("lastErr"),
	}
	attrs := []string{"addr", "direction", "phase", "linkRef", "operStatus", "lastError"}

	autoLinks, err := client.Query(ctx, management.TypeAutoLink, attrs, opts.limit())
	if err != nil {
		return Output{}, fmt.Errorf("failed to query %s: %w", management.TypeAutoLink, err)
	}

	rows := make([][]any, 0, len(autoLinks))
	for _, al := range autoLinks {
		row := make([]any, len(attrs))
		for i, attr := range attrs {
			row[i] = cell(al.Attr(attr))
		}
		rows = append(rows, row)
	}

	rows = SortRows(SortSpec{Headers: headers, Rows: rows, Key: headers[0].Name})
	return tableOutput("Auto Links", headers, rows), nil
}
