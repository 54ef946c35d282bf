package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortRows(t *testing.T) {
	headers := []Column{num("n"), col("s")}

	tests := []struct {
		name string
		spec SortSpec
		want [][]any
	}{
		{
			name: "stable on equal keys",
			spec: SortSpec{
				Rows: [][]any{{1, "b"}, {2, "a"}, {3, "a"}},
				Key:  "s",
			},
			want: [][]any{{2, "a"}, {3, "a"}, {1, "b"}},
		},
		{
			name: "descending keeps ties in input order",
			spec: SortSpec{
				Rows:       [][]any{{1, "a"}, {2, "b"}, {3, "a"}},
				Key:        "s",
				Descending: true,
			},
			want: [][]any{{2, "b"}, {1, "a"}, {3, "a"}},
		},
		{
			name: "case insensitive",
			spec: SortSpec{
				Rows: [][]any{{1, "beta"}, {2, "Alpha"}, {3, "alpha"}},
				Key:  "s",
			},
			want: [][]any{{2, "Alpha"}, {3, "alpha"}, {1, "beta"}},
		},
		{
			name: "numeric column",
			spec: SortSpec{
				Rows: [][]any{{float64(10), "x"}, {float64(9), "y"}, {nil, "z"}},
				Key:  "n",
			},
			want: [][]any{{nil, "z"}, {float64(9), "y"}, {float64(10), "x"}},
		},
		{
			name: "unknown key keeps order",
			spec: SortSpec{
				Rows: [][]any{{3, "c"}, {1, "a"}},
				Key:  "missing",
			},
			want: [][]any{{3, "c"}, {1, "a"}},
		},
		{
			name: "offset shifts key position",
			spec: SortSpec{
				Rows:   [][]any{{"c", 1, "z"}, {"a", 2, "y"}},
				Key:    "s",
				Offset: 1,
			},
			want: [][]any{{"a", 2, "y"}, {"c", 1, "z"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := tt.spec
			spec.Headers = headers
			assert.Equal(t, tt.want, SortRows(spec))
		})
	}
}

func TestSortRowsDoesNotModifyInput(t *testing.T) {
	rows := [][]any{{2, "b"}, {1, "a"}}
	_ = SortRows(SortSpec{Headers: []Column{num("n"), col("s")}, Rows: rows, Key: "s"})
	assert.Equal(t, [][]any{{2, "b"}, {1, "a"}}, rows)
}
