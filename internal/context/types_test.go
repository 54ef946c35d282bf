package context

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContextName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"simple", "edge", false},
		{"with hyphen", "edge-router", false},
		{"with numbers", "router1", false},
		{"single char", "a", false},
		{"max length", strings.Repeat("a", 63), false},
		{"empty", "", true},
		{"starts with hyphen", "-edge", true},
		{"ends with hyphen", "edge-", true},
		{"uppercase", "Edge", true},
		{"underscore", "edge_router", true},
		{"dot", "edge.router", true},
		{"too long", strings.Repeat("a", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContextName(tt.input)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContextConfig(t *testing.T) {
	config := &ContextConfig{}

	config.AddOrUpdateContext(Context{Name: "edge", Endpoint: "http://a"})
	config.AddOrUpdateContext(Context{Name: "hub", Endpoint: "http://b"})
	config.AddOrUpdateContext(Context{Name: "edge", Endpoint: "http://c"})

	assert.Len(t, config.Contexts, 2)
	assert.Equal(t, "http://c", config.GetContext("edge").Endpoint)
	assert.True(t, config.HasContext("hub"))
	assert.Nil(t, config.GetContext("missing"))

	config.CurrentContext = "hub"
	assert.True(t, config.RemoveContext("hub"))
	assert.Empty(t, config.CurrentContext)
	assert.False(t, config.RemoveContext("hub"))
}

func TestContextNotFoundError(t *testing.T) {
	err := &ContextNotFoundError{Name: "edge"}
	assert.Equal(t, `context "edge" not found`, err.Error())
}
