package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routerctx "routerstat/internal/context"
)

func newTestStorage(t *testing.T) *routerctx.Storage {
	t.Helper()
	storage := routerctx.NewStorageWithPath(t.TempDir())
	require.NoError(t, storage.AddContext(routerctx.Context{
		Name:      "edge",
		Endpoint:  "https://edge.example.com/mcp",
		Transport: "streamable-http",
		Settings:  &routerctx.ContextSettings{Output: "json"},
	}))
	require.NoError(t, storage.AddContext(routerctx.Context{Name: "hub", Endpoint: "http://hub:8672"}))
	return storage
}

func TestResolveEndpoint(t *testing.T) {
	t.Setenv(ContextEnvVar, "")
	storage := newTestStorage(t)

	t.Run("explicit endpoint wins", func(t *testing.T) {
		target, err := ResolveEndpoint(storage, "http://explicit:8672", "edge")
		require.NoError(t, err)
		assert.Equal(t, Target{Endpoint: "http://explicit:8672"}, target)
	})

	t.Run("named context", func(t *testing.T) {
		target, err := ResolveEndpoint(storage, "", "edge")
		require.NoError(t, err)
		assert.Equal(t, "https://edge.example.com/mcp", target.Endpoint)
		assert.Equal(t, "streamable-http", target.Transport)
		assert.Equal(t, "edge", target.Context)
		assert.Equal(t, "json", target.Settings.Output)
	})

	t.Run("missing named context", func(t *testing.T) {
		_, err := ResolveEndpoint(storage, "", "nope")
		var notFound *routerctx.ContextNotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("no current context falls back", func(t *testing.T) {
		target, err := ResolveEndpoint(storage, "", "")
		require.NoError(t, err)
		assert.Equal(t, Target{}, target)
	})

	t.Run("current context", func(t *testing.T) {
		require.NoError(t, storage.SetCurrentContext("hub"))
		target, err := ResolveEndpoint(storage, "", "")
		require.NoError(t, err)
		assert.Equal(t, "http://hub:8672", target.Endpoint)
	})

	t.Run("environment beats current context", func(t *testing.T) {
		t.Setenv(ContextEnvVar, "edge")
		target, err := ResolveEndpoint(storage, "", "")
		require.NoError(t, err)
		assert.Equal(t, "edge", target.Context)
	})
}
