package report

import (
	"context"
	"fmt"

	"routerstat/internal/management"
)

var connectionAttributes = []string{
	"identity", "host", "container", "role", "dir",
	"isAuthenticated", "sasl", "user",
	"isEncrypted", "sslProto", "sslCipher",
	"tenant",
}

func buildConnections(ctx context.Context, client management.Client, opts Options) (Output, error) {
	headers := []Column{
		col("id"),
		col("host"),
		col("container"),
		col("role"),
		col("dir"),
		col("security"),
		col("authentication"),
		col("tenant"),
	}

	conns, err := client.Query(ctx, management.TypeConnection, connectionAttributes, opts.limit())
	if err != nil {
		return Output{}, fmt.Errorf("failed to query %s: %w", management.TypeConnection, err)
	}

	rows := make([][]any, 0, len(conns))
	for _, conn := range conns {
		rows = append(rows, []any{
			cell(conn.Attr("identity")),
			cell(conn.Attr("host")),
			cell(conn.Attr("container")),
			cell(conn.Attr("role")),
			cell(conn.Attr("dir")),
			ConnectionSecurity(conn),
			ConnectionAuth(conn),
			cell(conn.Attr("tenant")),
		})
	}

	return tableOutput("Connections", headers, rows), nil
}
