package management

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entity type names understood by the router's management agent.
const (
	TypeRouter     = "router"
	TypeLink       = "router.link"
	TypeNode       = "router.node"
	TypeAddress    = "router.address"
	TypeAutoLink   = "router.config.autoLink"
	TypeLinkRoute  = "router.config.linkRoute"
	TypeConnection = "connection"
	TypeAllocator  = "allocator"
)

// Value is an optional attribute value. The zero Value is unset.
type Value struct {
	raw any
	set bool
}

// NewValue wraps a raw attribute value. A nil raw value is unset.
func NewValue(raw any) Value {
	return Value{raw: raw, set: raw != nil}
}

// IsSet reports whether the attribute was present with a non-null value.
func (v Value) IsSet() bool {
	return v.set
}

// Raw returns the underlying value, or nil when unset.
func (v Value) Raw() any {
	return v.raw
}

// String returns the value formatted for display, or "" when unset.
func (v Value) String() string {
	if !v.set {
		return ""
	}
	return FormatScalar(v.raw)
}

// Bool interprets the value as a boolean. Unset values are false.
func (v Value) Bool() bool {
	if !v.set {
		return false
	}
	switch b := v.raw.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	default:
		f, ok := v.Float()
		return ok && f != 0
	}
}

// Float interprets the value as a number. The second result is false when
// the value is unset or not numeric.
func (v Value) Float() (float64, bool) {
	if !v.set {
		return 0, false
	}
	return toFloat(v.raw)
}

// List returns the elements of a list-valued attribute. Scalars become a
// single-element list; unset values yield nil.
func (v Value) List() []any {
	if !v.set {
		return nil
	}
	switch l := v.raw.(type) {
	case []any:
		return l
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out
	default:
		return []any{l}
	}
}

// Entity is an immutable record of named attributes returned by a query.
type Entity struct {
	attrs map[string]any
}

// NewEntity copies attrs into a new Entity.
func NewEntity(attrs map[string]any) Entity {
	copied := make(map[string]any, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	return Entity{attrs: copied}
}

// Attr returns the named attribute. Missing attributes are unset.
func (e Entity) Attr(name string) Value {
	raw, ok := e.attrs[name]
	if !ok {
		return Value{}
	}
	return NewValue(raw)
}

// Names returns the attribute names present on the entity.
func (e Entity) Names() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	return names
}

// LogRecord is one entry of the router's in-memory log. Index 0, 1, 2 and 5
// hold level, module, message and the epoch-seconds timestamp.
type LogRecord []any

// Level returns field 0.
func (r LogRecord) Level() string { return r.field(0) }

// Module returns field 1.
func (r LogRecord) Module() string { return r.field(1) }

// Message returns field 2.
func (r LogRecord) Message() string { return r.field(2) }

// Time returns field 5 as a time. Unparsable timestamps yield the epoch.
func (r LogRecord) Time() time.Time {
	if len(r) <= 5 {
		return time.Unix(0, 0)
	}
	secs, _ := toFloat(r[5])
	whole := int64(secs)
	return time.Unix(whole, int64((secs-float64(whole))*float64(time.Second)))
}

func (r LogRecord) field(i int) string {
	if i >= len(r) || r[i] == nil {
		return ""
	}
	return FormatScalar(r[i])
}

// FormatScalar renders a raw attribute value without exponent notation for
// whole numbers.
func FormatScalar(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = FormatScalar(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
