package report

import (
	"sort"
	"strings"

	"routerstat/internal/management"
)

// SortSpec describes one row sort.
type SortSpec struct {
	Headers []Column
	Rows    [][]any
	// Key is the header name to sort on.
	Key string
	// Offset shifts the key's header position to the row position it
	// should read.
	Offset int
	// Descending reverses the order. Equal rows keep their input order
	// either way.
	Descending bool
}

// SortRows returns a stably sorted copy of spec.Rows. If Key is not among
// the headers the rows are returned in their original order.
func SortRows(spec SortSpec) [][]any {
	sorted := make([][]any, len(spec.Rows))
	copy(sorted, spec.Rows)

	idx := -1
	for i, h := range spec.Headers {
		if h.Name == spec.Key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return sorted
	}

	numeric := spec.Headers[idx].Numeric
	idx += spec.Offset
	if idx < 0 {
		return sorted
	}

	less := func(a, b []any) bool {
		if numeric {
			return compareNumeric(at(a, idx), at(b, idx)) < 0
		}
		return sortKey(at(a, idx)) < sortKey(at(b, idx))
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if spec.Descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func at(row []any, i int) any {
	if i >= len(row) {
		return nil
	}
	return row[i]
}

func sortKey(v any) string {
	return strings.ToLower(management.FormatScalar(v))
}

// compareNumeric orders unset and non-numeric cells before numbers.
func compareNumeric(a, b any) int {
	fa, okA := management.NewValue(a).Float()
	fb, okB := management.NewValue(b).Float()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	default:
		return 0
	}
}
