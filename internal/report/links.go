package report

import (
	"context"
	"fmt"

	"routerstat/internal/address"
	"routerstat/internal/management"
)

// linkCounters are the numeric link columns and their attributes.
var linkCounters = []struct {
	header string
	attr   string
}{
	{"cap", "capacity"},
	{"undel", "undeliveredCount"},
	{"unsett", "unsettledCount"},
	{"del", "deliveryCount"},
	{"presett", "presettledCount"},
	{"psdrop", "droppedPresettledCount"},
	{"acc", "acceptedCount"},
	{"rej", "rejectedCount"},
	{"rel", "releasedCount"},
	{"mod", "modifiedCount"},
}

func buildLinks(ctx context.Context, client management.Client, opts Options) (Output, error) {
	headers := []Column{
		col("type"),
		col("dir"),
		col("conn id"),
		col("id"),
		col("peer"),
		col("class"),
		col("addr"),
		col("phs"),
	}
	attrs := []string{"linkType", "linkDir", "connectionId", "identity", "peer", "owningAddr"}
	for _, c := range linkCounters {
		headers = append(headers, num(c.header))
		attrs = append(attrs, c.attr)
	}
	headers = append(headers, col("admin"), col("oper"))
	attrs = append(attrs, "adminStatus", "operStatus")
	if opts.Verbose {
		headers = append(headers, col("name"))
		attrs = append(attrs, "linkName")
	}

	links, err := client.Query(ctx, management.TypeLink, attrs, opts.limit())
	if err != nil {
		return Output{}, fmt.Errorf("failed to query %s: %w", management.TypeLink, err)
	}

	rows := make([][]any, 0, len(links))
	for _, link := range links {
		owner := address.Decode(link.Attr("owningAddr").String())
		row := []any{
			cell(link.Attr("linkType")),
			cell(link.Attr("linkDir")),
			cell(link.Attr("connectionId")),
			cell(link.Attr("identity")),
			cell(link.Attr("peer")),
			owner.Class.String(),
			owner.Text,
			owner.Phase,
		}
		for _, c := range linkCounters {
			row = append(row, numCell(link.Attr(c.attr)))
		}
		row = append(row, cell(link.Attr("adminStatus")), cell(link.Attr("operStatus")))
		if opts.Verbose {
			row = append(row, cell(link.Attr("linkName")))
		}
		rows = append(rows, row)
	}

	return tableOutput("Router Links", headers, rows), nil
}
