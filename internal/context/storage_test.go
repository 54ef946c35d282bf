package context

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_CRUD(t *testing.T) {
	storage := NewStorageWithPath(t.TempDir())

	t.Run("initial state is empty", func(t *testing.T) {
		contexts, err := storage.ListContexts()
		require.NoError(t, err)
		assert.Empty(t, contexts)

		current, err := storage.GetCurrentContext()
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("add context", func(t *testing.T) {
		err := storage.AddContext(Context{
			Name:      "edge",
			Endpoint:  "https://edge.example.com/mcp",
			Transport: "streamable-http",
			Settings:  &ContextSettings{Output: "json", Limit: 50},
		})
		require.NoError(t, err)

		ctx, err := storage.GetContext("edge")
		require.NoError(t, err)
		require.NotNil(t, ctx)
		assert.Equal(t, "https://edge.example.com/mcp", ctx.Endpoint)
		assert.Equal(t, "streamable-http", ctx.Transport)
		assert.Equal(t, 50, ctx.Settings.Limit)
	})

	t.Run("add duplicate context fails", func(t *testing.T) {
		err := storage.AddContext(Context{Name: "edge", Endpoint: "http://other:8672"})
		assert.Error(t, err)
	})

	t.Run("add rejects empty endpoint", func(t *testing.T) {
		err := storage.AddContext(Context{Name: "hub"})
		assert.Error(t, err)
	})

	t.Run("set current context", func(t *testing.T) {
		require.NoError(t, storage.SetCurrentContext("edge"))

		name, err := storage.GetCurrentContextName()
		require.NoError(t, err)
		assert.Equal(t, "edge", name)

		current, err := storage.GetCurrentContext()
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "edge", current.Name)
	})

	t.Run("set unknown current context fails", func(t *testing.T) {
		err := storage.SetCurrentContext("missing")
		var notFound *ContextNotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("names", func(t *testing.T) {
		require.NoError(t, storage.AddContext(Context{Name: "local", Endpoint: "http://localhost:8672"}))
		names, err := storage.GetContextNames()
		require.NoError(t, err)
		assert.Equal(t, []string{"edge", "local"}, names)
	})

	t.Run("delete current context clears selection", func(t *testing.T) {
		require.NoError(t, storage.DeleteContext("edge"))

		name, err := storage.GetCurrentContextName()
		require.NoError(t, err)
		assert.Empty(t, name)

		err = storage.DeleteContext("edge")
		var notFound *ContextNotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestStorage_Persistence(t *testing.T) {
	dir := t.TempDir()

	first := NewStorageWithPath(dir)
	require.NoError(t, first.AddContext(Context{Name: "local", Endpoint: "http://localhost:8672"}))
	require.NoError(t, first.SetCurrentContext("local"))

	data, err := os.ReadFile(filepath.Join(dir, contextsFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "current-context: local")

	second := NewStorageWithPath(dir)
	current, err := second.GetCurrentContext()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "http://localhost:8672", current.Endpoint)
}

func TestStorage_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, contextsFileName), []byte("contexts: [unclosed"), 0644))

	_, err := NewStorageWithPath(dir).ListContexts()
	assert.Error(t, err)
}
