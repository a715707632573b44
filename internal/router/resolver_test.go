package router

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/pkg/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	model string
	text  string
	err   error
}

func (g *fakeGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return g.text, g.err
}

func (g *fakeGenerator) Model() string { return g.model }

type fakeRecorder struct {
	err      error
	recorded chan *models.ModelUsageLog
}

func newFakeRecorder(err error) *fakeRecorder {
	return &fakeRecorder{err: err, recorded: make(chan *models.ModelUsageLog, 8)}
}

func (r *fakeRecorder) Record(ctx context.Context, rec *models.ModelUsageLog) error {
	r.recorded <- rec
	return r.err
}

func (r *fakeRecorder) wait(t *testing.T) *models.ModelUsageLog {
	t.Helper()
	select {
	case rec := <-r.recorded:
		return rec
	case <-time.After(2 * time.Second):
		t.Fatal("no usage record arrived")
		return nil
	}
}

func factoryFrom(gens map[string]*fakeGenerator) GeneratorFactory {
	return func(model string, jsonMode bool) ai.TextGenerator {
		if g, ok := gens[model]; ok {
			return g
		}
		return &fakeGenerator{model: model, err: errors.New("unavailable")}
	}
}

func TestResolveReturnsRegistryConfig(t *testing.T) {
	r := NewResolver(factoryFrom(nil), nil)

	h := r.Resolve("strategy", 0)
	assert.Equal(t, TaskStrategy, h.TaskType)
	assert.Equal(t, Lookup(TaskStrategy), h.Config)

	h = r.Resolve("nonsense", 0)
	assert.Equal(t, Lookup(TaskChatbot).Model, h.Config.Model)
}

func TestResolveJSONModePerTask(t *testing.T) {
	var modes []bool
	factory := func(model string, jsonMode bool) ai.TextGenerator {
		modes = append(modes, jsonMode)
		return &fakeGenerator{model: model}
	}
	r := NewResolver(factory, nil)

	modes = nil
	r.Resolve("strategy", 0)
	for _, m := range modes {
		assert.True(t, m)
	}

	modes = nil
	r.Resolve("chatbot", 0)
	for _, m := range modes {
		assert.False(t, m)
	}
}

func TestGeneratePrimarySucceeds(t *testing.T) {
	rec := newFakeRecorder(nil)
	r := NewResolver(factoryFrom(map[string]*fakeGenerator{
		"gpt-4o": {model: "gpt-4o", text: `{"ok":true}`},
	}), rec)

	res, err := r.Resolve("critique", 42).Generate(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, res.Text)
	assert.Equal(t, "gpt-4o", res.ServedModel)

	logged := rec.wait(t)
	assert.Equal(t, int64(42), logged.UserID)
	assert.Equal(t, "critique", logged.TaskType)
	assert.Equal(t, "gpt-4o", logged.ModelName)
	assert.True(t, logged.Success)
	assert.Equal(t, EstimatedCost(TierHigh), logged.EstimatedCost)
}

func TestGenerateFallsBackInOrder(t *testing.T) {
	rec := newFakeRecorder(nil)
	r := NewResolver(factoryFrom(map[string]*fakeGenerator{
		"gpt-4o":        {model: "gpt-4o", err: errors.New("rate limited")},
		"gpt-4o-mini":   {model: "gpt-4o-mini", err: errors.New("down")},
		"gpt-3.5-turbo": {model: "gpt-3.5-turbo", text: "rescued"},
	}), rec)

	res, err := r.Resolve("strategy", 7).Generate(context.Background(), "", "p")
	require.NoError(t, err)
	assert.Equal(t, "rescued", res.Text)
	assert.Equal(t, "gpt-3.5-turbo", res.ServedModel)

	logged := rec.wait(t)
	assert.Equal(t, "gpt-3.5-turbo", logged.ModelName)
	assert.True(t, logged.Success)
}

func TestGenerateAllModelsFail(t *testing.T) {
	rec := newFakeRecorder(nil)
	r := NewResolver(factoryFrom(map[string]*fakeGenerator{}), rec)

	res, err := r.Resolve("caption", 7).Generate(context.Background(), "", "p")
	require.Error(t, err)
	assert.Nil(t, res)

	logged := rec.wait(t)
	assert.False(t, logged.Success)
	assert.Equal(t, "gpt-4o-mini", logged.ModelName)
}

func TestUsageRecorderFailureNeverPropagates(t *testing.T) {
	rec := newFakeRecorder(errors.New("redis unreachable"))
	r := NewResolver(factoryFrom(map[string]*fakeGenerator{
		"gpt-4o-mini": {model: "gpt-4o-mini", text: "hi"},
	}), rec)

	res, err := r.Resolve("chatbot", 9).Generate(context.Background(), "", "p")
	require.NoError(t, err)
	assert.Equal(t, "hi", res.Text)
	rec.wait(t)
}

func TestAnonymousCallsSkipUsageLogging(t *testing.T) {
	rec := newFakeRecorder(nil)
	r := NewResolver(factoryFrom(map[string]*fakeGenerator{
		"gpt-4o-mini": {model: "gpt-4o-mini", text: "hi"},
	}), rec)

	_, err := r.Resolve("chatbot", 0).Generate(context.Background(), "", "p")
	require.NoError(t, err)

	select {
	case <-rec.recorded:
		t.Fatal("anonymous call should not be usage logged")
	case <-time.After(100 * time.Millisecond):
	}
}
