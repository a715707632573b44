package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelJSON(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced json tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  \n```json\n{\"a\":1}\n```\n", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanModelJSON(tc.input))
		})
	}
}

func TestDecodeModelJSON(t *testing.T) {
	var payload map[string]any
	err := DecodeModelJSON("```json\n{\"trends\": [\"a\"]}\n```", &payload)
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, payload["trends"])

	err = DecodeModelJSON("I cannot help with that.", &payload)
	assert.Error(t, err)
}
