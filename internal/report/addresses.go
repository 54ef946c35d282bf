package report

import (
	"context"
	"fmt"

	"routerstat/internal/address"
	"routerstat/internal/management"
)

var addressCounters = []struct {
	header string
	attr   string
}{
	{"in-proc", "inProcess"},
	{"local", "subscriberCount"},
	{"remote", "remoteCount"},
	{"cntnr", "containerCount"},
	{"in", "deliveriesIngress"},
	{"out", "deliveriesEgress"},
	{"thru", "deliveriesTransit"},
	{"to-proc", "deliveriesToContainer"},
	{"from-proc", "deliveriesFromContainer"},
}

func buildAddresses(ctx context.Context, client management.Client, opts Options) (Output, error) {
	headers := []Column{col("class"), col("addr"), col("phs"), col("distrib")}
	attrs := []string{"name", "key", "distribution"}
	for _, c := range addressCounters {
		headers = append(headers, num(c.header))
		attrs = append(attrs, c.attr)
	}

	addrs, err := client.Query(ctx, management.TypeAddress, attrs, opts.limit())
	if err != nil {
		return Output{}, fmt.Errorf("failed to query %s: %w", management.TypeAddress, err)
	}

	rows := make([][]any, 0, len(addrs))
	for _, a := range addrs {
		// Older agents report the token as key rather than name.
		token := a.Attr("name")
		if !token.IsSet() {
			token = a.Attr("key")
		}
		decoded := address.Decode(token.String())

		row := []any{
			decoded.Class.String(),
			decoded.Text,
			decoded.Phase,
			cell(a.Attr("distribution")),
		}
		for _, c := range addressCounters {
			row = append(row, numCell(a.Attr(c.attr)))
		}
		rows = append(rows, row)
	}

	rows = SortRows(SortSpec{Headers: headers, Rows: rows, Key: headers[0].Name})
	return tableOutput("Router Addresses", headers, rows), nil
}
