package report

import (
	"context"
	"fmt"

	"routerstat/internal/management"
)

func buildLinkRoutes(ctx context.Context, client management.Client, opts Options) (Output, error) {
	headers := []Column{col("prefix"), col("dir"), col("distrib"), col("status")}

	linkRoutes, err := client.Query(ctx, management.TypeLinkRoute,
		[]string{"prefix", "direction", "distribution", "operStatus"}, opts.limit())
	if err != nil {
		return Output{}, fmt.Errorf("failed to query %s: %w", management.TypeLinkRoute, err)
	}

	rows := make([][]any, 0, len(linkRoutes))
	for _, lr := range linkRoutes {
		rows = append(rows, []any{
			StripTrailingSlash(lr.Attr("prefix")),
			cell(lr.Attr("direction")),
			cell(lr.Attr("distribution")),
			cell(lr.Attr("operStatus")),
		})
	}

	rows = SortRows(SortSpec{Headers: headers, Rows: rows, Key: headers[0].Name})
	return tableOutput("Link Routes", headers, rows), nil
}
