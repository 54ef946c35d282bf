package report

import (
	"context"
	"fmt"

	"routerstat/internal/management"
)

// generalCounters lists the router counters shown under the identity rows,
// in display order.
var generalCounters = []struct {
	label string
	attr  string
}{
	{"Link Routes", "linkRouteCount"},
	{"Auto Links", "autoLinkCount"},
	{"Links", "linkCount"},
	{"Nodes", "nodeCount"},
	{"Addresses", "addrCount"},
	{"Connections", "connectionCount"},
	{"Presettled Count", "presettledDeliveries"},
	{"Dropped Presettled Count", "droppedPresettledDeliveries"},
	{"Accepted Count", "acceptedDeliveries"},
	{"Rejected Count", "rejectedDeliveries"},
	{"Released Count", "releasedDeliveries"},
	{"Modified Count", "modifiedDeliveries"},
	{"Ingress Count", "deliveriesIngress"},
	{"Egress Count", "deliveriesEgress"},
	{"Transit Count", "deliveriesTransit"},
	{"Deliveries from Route Container", "deliveriesIngressRouteContainer"},
	{"Deliveries to Route Container", "deliveriesEgressRouteContainer"},
}

func buildGeneral(ctx context.Context, client management.Client, _ Options) (Output, error) {
	attrs := []string{"identity", "id", "mode", "area"}
	for _, c := range generalCounters {
		attrs = append(attrs, c.attr)
	}

	// The router entity is a singleton, so the query is unbounded.
	routers, err := client.Query(ctx, management.TypeRouter, attrs, 0)
	if err != nil {
		return Output{}, fmt.Errorf("failed to query %s: %w", management.TypeRouter, err)
	}
	if len(routers) == 0 {
		return Output{}, fmt.Errorf("management agent returned no %s entity", management.TypeRouter)
	}
	router := routers[0]

	rows := [][]any{
		{"Mode", cell(router.Attr("mode"))},
		{"Area", cell(router.Attr("area"))},
		{"Router Id", CleanIdentity(router.Attr("identity"), router.Attr("id"))},
	}
	for _, c := range generalCounters {
		rows = append(rows, []any{c.label, numCell(router.Attr(c.attr))})
	}

	// Counters stay numbers; the renderer groups them.
	return tableOutput("Router Statistics", []Column{col("attr"), num("value")}, rows), nil
}
