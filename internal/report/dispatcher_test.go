package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routerstat/internal/management"
)

func TestParseSelector(t *testing.T) {
	for _, sel := range Selectors {
		got, err := ParseSelector(string(sel))
		require.NoError(t, err)
		assert.Equal(t, sel, got)
	}

	got, err := ParseSelector(" LinkRoutes ")
	require.NoError(t, err)
	assert.Equal(t, SelectLinkRoutes, got)

	_, err = ParseSelector("x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "autolinks")
}

func TestDispatcherRendersTable(t *testing.T) {
	client := &fakeClient{entities: map[string][]map[string]any{
		management.TypeLinkRoute: {{"prefix": "org/", "direction": "in"}},
	}}
	renderer := &recordingRenderer{}

	err := NewDispatcher(client, renderer, Options{}).Dispatch(context.Background(), SelectLinkRoutes)
	require.NoError(t, err)

	require.Len(t, renderer.tables, 1)
	assert.Empty(t, renderer.lines)
	assert.Equal(t, "Link Routes", renderer.tables[0].Title)
	assert.Equal(t, "org", renderer.tables[0].Rows[0][0])
}

func TestDispatcherRendersLines(t *testing.T) {
	renderer := &recordingRenderer{}

	err := NewDispatcher(&fakeClient{}, renderer, Options{}).Dispatch(context.Background(), SelectNodes)
	require.NoError(t, err)

	assert.Empty(t, renderer.tables)
	assert.Equal(t, [][]string{{StandaloneMessage}}, renderer.lines)
}

func TestDispatcherRendersNothingOnError(t *testing.T) {
	renderer := &recordingRenderer{}
	client := &fakeClient{err: errors.New("connection refused")}

	err := NewDispatcher(client, renderer, Options{}).Dispatch(context.Background(), SelectConnections)
	require.Error(t, err)

	assert.Empty(t, renderer.tables)
	assert.Empty(t, renderer.lines)
}

func TestDispatcherPassesLimit(t *testing.T) {
	client := &fakeClient{}
	d := NewDispatcher(client, &recordingRenderer{}, Options{Limit: 42})

	_, err := d.Build(context.Background(), SelectAddresses)
	require.NoError(t, err)
	require.Len(t, client.queries, 1)
	assert.Equal(t, 42, client.queries[0].limit)
	assert.Equal(t, management.TypeAddress, client.queries[0].entityType)
}

func TestDispatcherUnknownSelector(t *testing.T) {
	_, err := NewDispatcher(&fakeClient{}, &recordingRenderer{}, Options{}).Build(context.Background(), Selector("zz"))
	assert.Error(t, err)
}
