package shape

import (
	"encoding/json"
	"log/slog"
)

// Older rows persisted link and tag collections as keyed objects instead of
// arrays. Every read site goes through this one coercion so the filtering
// cannot drift between callers.

// Predicate decides whether a decoded object belongs in the result.
type Predicate func(map[string]any) bool

// HasID keeps objects carrying a non-empty "id" field.
func HasID(m map[string]any) bool {
	v, ok := m["id"]
	if !ok {
		return false
	}
	switch id := v.(type) {
	case string:
		return id != ""
	case float64:
		return true
	default:
		return false
	}
}

// AnyObject keeps every decoded object.
func AnyObject(m map[string]any) bool { return true }

// CoerceList normalizes an already-decoded JSON value into a list of objects.
// Arrays are filtered in place; keyed objects contribute their values; any
// other shape (nil, string, number) yields an empty list. It never panics.
func CoerceList(v any, keep Predicate) []map[string]any {
	out := []map[string]any{}
	if keep == nil {
		keep = AnyObject
	}

	switch val := v.(type) {
	case []any:
		for _, entry := range val {
			if m, ok := entry.(map[string]any); ok && keep(m) {
				out = append(out, m)
			}
		}
	case map[string]any:
		for _, entry := range val {
			if m, ok := entry.(map[string]any); ok && keep(m) {
				out = append(out, m)
			}
		}
	default:
		if v != nil {
			slog.Warn("unexpected collection shape, coercing to empty list")
		}
	}

	return out
}

// CoerceRaw decodes a stored JSONB column and normalizes it. Undecodable
// bytes degrade to an empty list, logged, never an error.
func CoerceRaw(raw json.RawMessage, keep Predicate) []map[string]any {
	if len(raw) == 0 {
		return []map[string]any{}
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("undecodable collection column", "error", err.Error())
		return []map[string]any{}
	}

	return CoerceList(v, keep)
}
