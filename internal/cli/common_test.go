package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"error", FormatError(errors.New("query failed")), "Error: query failed"},
		{"success", FormatSuccess("Context \"edge\" added."), "✓ Context \"edge\" added."},
		{"warning", FormatWarning("current context unset"), "⚠ current context unset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.got, tt.want)
		})
	}
}
