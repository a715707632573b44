package service

import (
	"encoding/json"
	"strings"
)

// CleanModelJSON strips the Markdown code fences models wrap around JSON
// despite instructions not to.
func CleanModelJSON(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	return s
}

// DecodeModelJSON cleans a model response and unmarshals it into v.
func DecodeModelJSON(text string, v any) error {
	return json.Unmarshal([]byte(CleanModelJSON(text)), v)
}
