package service

import (
	"context"
	"errors"
	"testing"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/internal/router"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/echofluxai/echoflux-api/pkg/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	model string
	text  string
	err   error
}

func (g *stubGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return g.text, g.err
}

func (g *stubGenerator) Model() string { return g.model }

// resolverWith answers every model with the same canned response.
func resolverWith(text string, err error) *router.Resolver {
	return router.NewResolver(func(model string, jsonMode bool) ai.TextGenerator {
		return &stubGenerator{model: model, text: text, err: err}
	}, nil)
}

type mockContentRepo struct {
	created []*models.GeneratedContent
	listed  []*models.GeneratedContent
	err     error
}

func (m *mockContentRepo) Create(ctx context.Context, content *models.GeneratedContent) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.created = append(m.created, content)
	return int64(len(m.created)), nil
}

func (m *mockContentRepo) ListByUser(ctx context.Context, userID int64, taskType string, limit int) ([]*models.GeneratedContent, error) {
	return m.listed, m.err
}

func TestTrendsReturnsModelPayload(t *testing.T) {
	cr := &mockContentRepo{}
	s := NewGenerationService(resolverWith("```json\n{\"trends\":[{\"name\":\"loops\"}],\"summary\":\"ok\"}\n```", nil), cr, nil)

	payload := s.Trends(context.Background(), 7, &transfer.TrendsRequest{Posts: []string{"post one"}})
	assert.Equal(t, "ok", payload["summary"])
	assert.Len(t, payload["trends"], 1)
	_, degraded := payload["note"]
	assert.False(t, degraded)

	require.Len(t, cr.created, 1)
	assert.Equal(t, "trends", cr.created[0].TaskType)
	assert.False(t, cr.created[0].Degraded)
	assert.NotEmpty(t, cr.created[0].ServedModel)
}

func TestTrendsDegradesOnUnparseableResponse(t *testing.T) {
	cr := &mockContentRepo{}
	s := NewGenerationService(resolverWith("I cannot produce that.", nil), cr, nil)

	payload := s.Trends(context.Background(), 7, &transfer.TrendsRequest{Posts: []string{"post one"}})
	assert.Equal(t, []any{}, payload["trends"])
	assert.Equal(t, "I cannot produce that.", payload["summary"])

	require.Len(t, cr.created, 1)
	assert.True(t, cr.created[0].Degraded)
}

func TestGenerationDegradesWhenAllModelsFail(t *testing.T) {
	cr := &mockContentRepo{}
	s := NewGenerationService(resolverWith("", errors.New("upstream down")), cr, nil)

	payload := s.Caption(context.Background(), 7, &transfer.CaptionRequest{Topic: "coffee"})
	assert.Equal(t, []any{}, payload["captions"])
	assert.Equal(t, "generation temporarily unavailable", payload["note"])

	require.Len(t, cr.created, 1)
	assert.True(t, cr.created[0].Degraded)
	assert.Empty(t, cr.created[0].ServedModel)
}

func TestChatbotIsPlainText(t *testing.T) {
	cr := &mockContentRepo{}
	s := NewGenerationService(resolverWith("Sure, here is an idea.", nil), cr, nil)

	payload := s.Chatbot(context.Background(), 7, &transfer.ChatbotRequest{Message: "help"})
	assert.Equal(t, "Sure, here is an idea.", payload["reply"])

	require.Len(t, cr.created, 1)
	assert.Equal(t, "chatbot", cr.created[0].TaskType)
}

func TestChatbotDegradesWithoutHistory(t *testing.T) {
	cr := &mockContentRepo{}
	s := NewGenerationService(resolverWith("", errors.New("down")), cr, nil)

	payload := s.Chatbot(context.Background(), 7, &transfer.ChatbotRequest{Message: "help"})
	assert.Equal(t, "", payload["reply"])
	assert.Equal(t, "generation temporarily unavailable", payload["note"])
	assert.Empty(t, cr.created)
}

func TestAnonymousGenerationSkipsHistory(t *testing.T) {
	cr := &mockContentRepo{}
	s := NewGenerationService(resolverWith(`{"hashtags":["#go"]}`, nil), cr, nil)

	payload := s.Hashtags(context.Background(), 0, &transfer.HashtagsRequest{Topic: "go"})
	assert.Len(t, payload["hashtags"], 1)
	assert.Empty(t, cr.created)
}

type stubStats struct{ stats *transfer.SocialStats }

func (s *stubStats) GetStats(ctx context.Context, userID int64) *transfer.SocialStats {
	return s.stats
}

func TestAnalyticsReportWithStatsProvider(t *testing.T) {
	cr := &mockContentRepo{}
	provider := &stubStats{stats: &transfer.SocialStats{
		Platform:    models.PlatformYoutube,
		Subscribers: 1200,
		Views:       50000,
		Videos:      34,
	}}
	s := NewGenerationService(resolverWith(`{"headline":"up","highlights":[],"recommendations":[],"summary":""}`, nil), cr, provider)

	payload := s.AnalyticsReport(context.Background(), 7, &transfer.AnalyticsReportRequest{Period: "last 7 days"})
	assert.Equal(t, "up", payload["headline"])
	require.Len(t, cr.created, 1)
	assert.Equal(t, "analytics", cr.created[0].TaskType)
}

func TestHistoryPassesThrough(t *testing.T) {
	cr := &mockContentRepo{listed: []*models.GeneratedContent{{ID: 1, TaskType: "caption"}}}
	s := NewGenerationService(resolverWith("", nil), cr, nil)

	items, err := s.History(context.Background(), 7, "caption", 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
