package router

import (
	"context"
	"log/slog"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/pkg/ai"
)

// GeneratorFactory builds a text generator bound to one model identifier.
// jsonMode requests structured output from providers that support it.
type GeneratorFactory func(model string, jsonMode bool) ai.TextGenerator

// UsageRecorder appends a usage log record. Implementations must be safe to
// call from the request path; the resolver never waits on the result.
type UsageRecorder interface {
	Record(ctx context.Context, rec *models.ModelUsageLog) error
}

// Resolver maps task types to configured model clients and accounts their
// usage. Dependencies are injected at construction, there is no package
// state beyond the static registry.
type Resolver struct {
	newGenerator GeneratorFactory
	usage        UsageRecorder
}

func NewResolver(factory GeneratorFactory, usage UsageRecorder) *Resolver {
	return &Resolver{
		newGenerator: factory,
		usage:        usage,
	}
}

// ModelHandle is a resolved client for one task, carrying the primary model
// and its fallback chain.
type ModelHandle struct {
	TaskType TaskType
	Config   ModelConfig

	userID     int64
	generators []ai.TextGenerator
	resolver   *Resolver
}

// Result is a completed generation, tagged with the model that actually
// served it (the primary, or a fallback).
type Result struct {
	Text        string
	ServedModel string
}

// Resolve looks up the task's model config and returns a bound handle.
// Unknown task types silently route to the chatbot config. A userID of 0
// means anonymous and disables usage accounting.
func (r *Resolver) Resolve(taskType string, userID int64) *ModelHandle {
	t := TaskType(taskType)
	cfg := Lookup(t)

	// Every task except the chatbot expects a JSON reply.
	jsonMode := t != TaskChatbot

	generators := []ai.TextGenerator{r.newGenerator(cfg.Model, jsonMode)}
	for _, alt := range Fallbacks(cfg.Model) {
		generators = append(generators, r.newGenerator(alt, jsonMode))
	}

	return &ModelHandle{
		TaskType:   t,
		Config:     cfg,
		userID:     userID,
		generators: generators,
		resolver:   r,
	}
}

// Generate runs the prompt against the primary model, then each fallback in
// order until one succeeds. The attempt outcome is usage-logged
// fire-and-forget either way; logging can never fail the caller.
func (h *ModelHandle) Generate(ctx context.Context, systemPrompt, userPrompt string) (*Result, error) {
	var lastErr error
	for _, gen := range h.generators {
		text, err := gen.GenerateText(ctx, systemPrompt, userPrompt)
		if err == nil {
			if gen.Model() != h.Config.Model {
				slog.Warn("primary model failed, fallback served",
					"task_type", string(h.TaskType),
					"primary", h.Config.Model,
					"served", gen.Model())
			}
			h.trackUsage(gen.Model(), true)
			return &Result{Text: text, ServedModel: gen.Model()}, nil
		}
		slog.Warn("model call failed",
			"task_type", string(h.TaskType),
			"model", gen.Model(),
			"error", err.Error())
		lastErr = err
	}

	h.trackUsage(h.Config.Model, false)
	return nil, lastErr
}

func (h *ModelHandle) trackUsage(model string, success bool) {
	if h.userID == 0 || h.resolver.usage == nil {
		return
	}

	rec := &models.ModelUsageLog{
		UserID:        h.userID,
		TaskType:      string(h.TaskType),
		ModelName:     model,
		CostTier:      string(h.Config.Tier),
		Success:       success,
		EstimatedCost: EstimatedCost(h.Config.Tier),
	}

	go func() {
		if err := h.resolver.usage.Record(context.Background(), rec); err != nil {
			slog.Info("usage record dropped: " + err.Error())
		}
	}()
}
