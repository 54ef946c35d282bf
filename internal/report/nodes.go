package report

import (
	"context"
	"fmt"
	"time"

	"routerstat/internal/management"
)

// StandaloneMessage replaces the nodes table when the router knows no
// other routers.
const StandaloneMessage = "Router is Standalone - No Router List"

// topologyTimeLayout renders the last topology change, followed by a
// literal GMT suffix.
const topologyTimeLayout = "Monday Jan 02 15:04:05 2006"

var nodeAttributes = []string{
	"id", "nextHop", "routerLink",
	"protocolVersion", "cost", "linkState", "validOrigins",
	"lastTopoChange",
}

func buildNodes(ctx context.Context, client management.Client, opts Options) (Output, error) {
	headers := []Column{col("router-id"), col("next-hop"), col("link")}
	if opts.Verbose {
		headers = append(headers, col("ver"), col("cost"), col("neighbors"), col("valid-origins"))
	}

	nodes, err := client.Query(ctx, management.TypeNode, nodeAttributes, opts.limit())
	if err != nil {
		return Output{}, fmt.Errorf("failed to query %s: %w", management.TypeNode, err)
	}
	if len(nodes) == 0 {
		return linesOutput(StandaloneMessage), nil
	}

	rows := make([][]any, 0, len(nodes))
	for _, node := range nodes {
		row := []any{cell(node.Attr("id"))}
		if next := node.Attr("nextHop"); next.IsSet() {
			row = append(row, next.String(), "-")
		} else {
			row = append(row, "-", cell(node.Attr("routerLink")))
		}
		if opts.Verbose {
			row = append(row,
				cell(node.Attr("protocolVersion")),
				cell(node.Attr("cost")),
				StringifyList(node.Attr("linkState").List()),
				StringifyList(node.Attr("validOrigins").List()),
			)
		}
		rows = append(rows, row)
	}

	title := "Routers in the Network"
	if clock := TopologyClock(nodes); clock > 0 {
		title += "\nLast Topology Change: " + FormatTopologyTime(clock)
	}

	rows = SortRows(SortSpec{Headers: headers, Rows: rows, Key: "router-id"})
	return tableOutput(title, headers, rows), nil
}

// TopologyClock returns the largest lastTopoChange across nodes. Missing or
// unparsable timestamps count as zero.
func TopologyClock(nodes []management.Entity) float64 {
	var clock float64
	for _, node := range nodes {
		ts, ok := node.Attr("lastTopoChange").Float()
		if !ok {
			continue
		}
		if ts > clock {
			clock = ts
		}
	}
	return clock
}

// FormatTopologyTime renders an epoch-seconds timestamp in UTC.
func FormatTopologyTime(epochSeconds float64) string {
	return time.Unix(int64(epochSeconds), 0).UTC().Format(topologyTimeLayout) + " GMT"
}
