package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerationService overrides only the methods a test exercises.
type stubGenerationService struct {
	service.GenerationService
	trends map[string]any
}

func (s *stubGenerationService) Trends(ctx context.Context, userID int64, req *transfer.TrendsRequest) map[string]any {
	return s.trends
}

func trendsApp(stub *stubGenerationService) *fiber.App {
	app := fiber.New()
	h := NewGenerateHandler(stub, nil)
	app.Post("/api/generate/trends", h.Trends)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestTrendsRejectsBadPosts(t *testing.T) {
	app := trendsApp(&stubGenerationService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing posts", `{}`},
		{"empty array", `{"posts": []}`},
		{"blank element", `{"posts": ["ok", "  "]}`},
		{"wrong type", `{"posts": "not an array"}`},
		{"not json", `garbage`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := postJSON(t, app, "/api/generate/trends", tc.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "Expected 'posts' to be a non-empty array of strings", payload["error"])
		})
	}
}

func TestTrendsReturnsServicePayload(t *testing.T) {
	stub := &stubGenerationService{trends: map[string]any{
		"trends":  []any{map[string]any{"name": "loops"}},
		"summary": "short form keeps winning",
	}}
	app := trendsApp(stub)

	status, payload := postJSON(t, app, "/api/generate/trends", `{"posts": ["post one", "post two"]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "short form keeps winning", payload["summary"])
	assert.Len(t, payload["trends"], 1)
}
