package shape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceList(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		keep     Predicate
		expected int
	}{
		{
			name:     "empty array",
			input:    []any{},
			keep:     HasID,
			expected: 0,
		},
		{
			name:     "array of tagged objects",
			input:    []any{map[string]any{"id": "a"}, map[string]any{"id": "b"}},
			keep:     HasID,
			expected: 2,
		},
		{
			name:     "keyed object",
			input:    map[string]any{"a": map[string]any{"id": float64(1)}},
			keep:     HasID,
			expected: 1,
		},
		{
			name:     "keyed object with non-object value",
			input:    map[string]any{"a": "notAnObject"},
			keep:     AnyObject,
			expected: 0,
		},
		{
			name:     "nil",
			input:    nil,
			keep:     HasID,
			expected: 0,
		},
		{
			name:     "garbage string",
			input:    "garbage",
			keep:     HasID,
			expected: 0,
		},
		{
			name:     "array mixing objects and scalars",
			input:    []any{map[string]any{"id": "a"}, "junk", float64(3)},
			keep:     HasID,
			expected: 1,
		},
		{
			name:     "missing id dropped by HasID",
			input:    []any{map[string]any{"url": "https://x.test"}},
			keep:     HasID,
			expected: 0,
		},
		{
			name:     "nil predicate keeps all objects",
			input:    []any{map[string]any{"url": "https://x.test"}},
			keep:     nil,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := CoerceList(tt.input, tt.keep)
			require.NotNil(t, out)
			assert.Len(t, out, tt.expected)
		})
	}
}

func TestCoerceRaw(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "array", raw: `[{"id":"x"},{"id":"y"}]`, expected: 2},
		{name: "keyed object", raw: `{"a":{"id":"x"},"b":"junk"}`, expected: 1},
		{name: "json null", raw: `null`, expected: 0},
		{name: "quoted garbage", raw: `"garbage"`, expected: 0},
		{name: "undecodable bytes", raw: `{{{`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := CoerceRaw(json.RawMessage(tt.raw), HasID)
			require.NotNil(t, out)
			assert.Len(t, out, tt.expected)
		})
	}
}

func TestCoerceRawEmpty(t *testing.T) {
	out := CoerceRaw(nil, HasID)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestHasID(t *testing.T) {
	assert.True(t, HasID(map[string]any{"id": "x"}))
	assert.True(t, HasID(map[string]any{"id": float64(7)}))
	assert.False(t, HasID(map[string]any{"id": ""}))
	assert.False(t, HasID(map[string]any{"id": true}))
	assert.False(t, HasID(map[string]any{"url": "x"}))
}
