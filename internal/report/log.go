package report

import (
	"context"
	"fmt"
	"time"

	"routerstat/internal/management"
)

func buildLog(ctx context.Context, client management.Client, opts Options) (Output, error) {
	records, err := client.GetLog(ctx, opts.limit())
	if err != nil {
		return Output{}, fmt.Errorf("failed to read router log: %w", err)
	}

	loc := opts.location()
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, FormatLogRecord(rec, loc))
	}
	return linesOutput(lines...), nil
}

// FormatLogRecord renders one log record as
// "<ctime> <level> (<module>) <message>".
func FormatLogRecord(rec management.LogRecord, loc *time.Location) string {
	return fmt.Sprintf("%s %s (%s) %s",
		rec.Time().In(loc).Format(time.ANSIC), rec.Level(), rec.Module(), rec.Message())
}
