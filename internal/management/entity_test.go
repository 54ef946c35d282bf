package management

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntity_MissingAttributeIsUnset(t *testing.T) {
	e := NewEntity(map[string]any{"host": "10.0.0.1:5672", "user": nil})

	assert.True(t, e.Attr("host").IsSet())
	assert.False(t, e.Attr("user").IsSet(), "null attribute should be unset")
	assert.False(t, e.Attr("missing").IsSet())
	assert.Equal(t, "", e.Attr("missing").String())
	assert.Nil(t, e.Attr("missing").Raw())
}

func TestEntity_IsImmutableCopy(t *testing.T) {
	attrs := map[string]any{"id": "Router.A"}
	e := NewEntity(attrs)
	attrs["id"] = "changed"

	assert.Equal(t, "Router.A", e.Attr("id").String())
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected string
	}{
		{name: "string", raw: "abc", expected: "abc"},
		{name: "whole float", raw: float64(1000000), expected: "1000000"},
		{name: "fraction", raw: 250.5, expected: "250.5"},
		{name: "int", raw: 7, expected: "7"},
		{name: "bool", raw: true, expected: "true"},
		{name: "list", raw: []any{"a", float64(2)}, expected: "[a, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewValue(tt.raw).String())
		})
	}
}

func TestValue_Bool(t *testing.T) {
	assert.True(t, NewValue(true).Bool())
	assert.False(t, NewValue(false).Bool())
	assert.True(t, NewValue("true").Bool())
	assert.False(t, NewValue("nope").Bool())
	assert.True(t, NewValue(float64(1)).Bool())
	assert.False(t, Value{}.Bool())
}

func TestValue_Float(t *testing.T) {
	f, ok := NewValue("250.5").Float()
	assert.True(t, ok)
	assert.Equal(t, 250.5, f)

	_, ok = NewValue("not a number").Float()
	assert.False(t, ok)

	_, ok = Value{}.Float()
	assert.False(t, ok)
}

func TestValue_List(t *testing.T) {
	assert.Equal(t, []any{"a", "b"}, NewValue([]any{"a", "b"}).List())
	assert.Equal(t, []any{"a"}, NewValue([]string{"a"}).List())
	assert.Equal(t, []any{"solo"}, NewValue("solo").List())
	assert.Nil(t, Value{}.List())
}

func TestLogRecord_Fields(t *testing.T) {
	rec := LogRecord{"info", "ROUTER", "Router started", "router.c", float64(42), 1500000000.25}

	assert.Equal(t, "info", rec.Level())
	assert.Equal(t, "ROUTER", rec.Module())
	assert.Equal(t, "Router started", rec.Message())
	assert.Equal(t, int64(1500000000), rec.Time().Unix())
	assert.Equal(t, 250*time.Millisecond, time.Duration(rec.Time().Nanosecond()))
}

func TestLogRecord_ShortRecord(t *testing.T) {
	rec := LogRecord{"info"}

	assert.Equal(t, "", rec.Module())
	assert.Equal(t, int64(0), rec.Time().Unix())
}
