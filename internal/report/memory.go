package report

import (
	"context"
	"fmt"

	"routerstat/internal/management"
)

// NoMemoryStatsMessage replaces the memory table when the router was built
// without memory pooling.
const NoMemoryStatsMessage = "No memory statistics available"

var memoryCounters = []struct {
	header string
	attr   string
}{
	{"size", "typeSize"},
	{"batch", "transferBatchSize"},
	{"thread-max", "localFreeListMax"},
	{"total", "totalAllocFromHeap"},
	{"in-threads", "heldByThreads"},
	{"rebal-in", "batchesRebalancedToThreads"},
	{"rebal-out", "batchesRebalancedToGlobal"},
}

func buildMemory(ctx context.Context, client management.Client, _ Options) (Output, error) {
	headers := []Column{col("type")}
	attrs := []string{"identity", "typeName"}
	for _, c := range memoryCounters {
		headers = append(headers, num(c.header))
		attrs = append(attrs, c.attr)
	}

	// There is one allocator per pooled type; the set is small and fixed.
	pools, err := client.Query(ctx, management.TypeAllocator, attrs, 0)
	if err != nil {
		return Output{}, fmt.Errorf("failed to query %s: %w", management.TypeAllocator, err)
	}
	if len(pools) == 0 {
		return linesOutput(NoMemoryStatsMessage), nil
	}

	rows := make([][]any, 0, len(pools))
	for _, pool := range pools {
		row := []any{poolName(pool)}
		for _, c := range memoryCounters {
			row = append(row, numCell(pool.Attr(c.attr)))
		}
		rows = append(rows, row)
	}

	rows = SortRows(SortSpec{Headers: headers, Rows: rows, Key: headers[0].Name})
	return tableOutput("Memory Pools", headers, rows), nil
}

// poolName is the pooled type, cleaned like an identity. typeName wins
// over identity when the agent reports both.
func poolName(pool management.Entity) string {
	name := pool.Attr("typeName")
	if !name.IsSet() {
		name = pool.Attr("identity")
	}
	return CleanIdentity(name, management.Value{})
}
