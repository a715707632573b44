package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/internal/repository"
	"github.com/echofluxai/echoflux-api/internal/router"
	"github.com/echofluxai/echoflux-api/internal/transfer"
)

// SocialStatsProvider feeds platform stats into the analytics report.
type SocialStatsProvider interface {
	GetStats(ctx context.Context, userID int64) *transfer.SocialStats
}

type GenerationService interface {
	Strategy(ctx context.Context, userID int64, req *transfer.StrategyRequest) map[string]any
	Critique(ctx context.Context, userID int64, req *transfer.CritiqueRequest) map[string]any
	Trends(ctx context.Context, userID int64, req *transfer.TrendsRequest) map[string]any
	CRMSummary(ctx context.Context, userID int64, req *transfer.CRMSummaryRequest) map[string]any
	AnalyticsReport(ctx context.Context, userID int64, req *transfer.AnalyticsReportRequest) map[string]any
	Autopilot(ctx context.Context, userID int64, req *transfer.AutopilotRequest) map[string]any
	Caption(ctx context.Context, userID int64, req *transfer.CaptionRequest) map[string]any
	Reply(ctx context.Context, userID int64, req *transfer.ReplyRequest) map[string]any
	Categorize(ctx context.Context, userID int64, req *transfer.CategorizeRequest) map[string]any
	Hashtags(ctx context.Context, userID int64, req *transfer.HashtagsRequest) map[string]any
	Brand(ctx context.Context, userID int64, req *transfer.BrandRequest) map[string]any
	Chatbot(ctx context.Context, userID int64, req *transfer.ChatbotRequest) map[string]any
	ImagePrompt(ctx context.Context, userID int64, req *transfer.ImagePromptRequest) map[string]any
	ContentGap(ctx context.Context, userID int64, req *transfer.ContentGapRequest) map[string]any
	CaptionOptimization(ctx context.Context, userID int64, req *transfer.CaptionOptimizationRequest) map[string]any
	PerformancePrediction(ctx context.Context, userID int64, req *transfer.PerformancePredictionRequest) map[string]any
	ContentRepurposing(ctx context.Context, userID int64, req *transfer.ContentRepurposingRequest) map[string]any
	History(ctx context.Context, userID int64, taskType string, limit int) ([]*models.GeneratedContent, error)
}

type generationService struct {
	resolver *router.Resolver
	cr       repository.ContentRepository
	stats    SocialStatsProvider
}

func NewGenerationService(resolver *router.Resolver, cr repository.ContentRepository, stats SocialStatsProvider) GenerationService {
	return &generationService{
		resolver: resolver,
		cr:       cr,
		stats:    stats,
	}
}

// run is the shared generation path: resolve the task's model, generate with
// the fallback chain, parse the JSON, and degrade to the feature's fallback
// shape instead of erroring. A degraded response is still history-logged so
// failures stay visible to monitoring even though the client sees a 200.
func (s *generationService) run(ctx context.Context, userID int64, task router.TaskType, systemPrompt, userPrompt string, fallback func(raw string) map[string]any) map[string]any {
	handle := s.resolver.Resolve(string(task), userID)

	res, err := handle.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		slog.Error("generation failed",
			"task_type", string(task),
			"error", err.Error())
		payload := fallback("")
		payload["note"] = "generation temporarily unavailable"
		s.saveHistory(ctx, userID, task, "", payload, true)
		return payload
	}

	var payload map[string]any
	if perr := DecodeModelJSON(res.Text, &payload); perr != nil || payload == nil {
		slog.Warn("model response was not valid JSON",
			"task_type", string(task),
			"served_model", res.ServedModel)
		payload = fallback(res.Text)
		s.saveHistory(ctx, userID, task, res.ServedModel, payload, true)
		return payload
	}

	s.saveHistory(ctx, userID, task, res.ServedModel, payload, false)
	return payload
}

func (s *generationService) saveHistory(ctx context.Context, userID int64, task router.TaskType, servedModel string, payload map[string]any, degraded bool) {
	if s.cr == nil || userID == 0 {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	_, err = s.cr.Create(ctx, &models.GeneratedContent{
		UserID:      userID,
		TaskType:    string(task),
		ServedModel: servedModel,
		Payload:     raw,
		Degraded:    degraded,
	})
	if err != nil {
		slog.Info("history write failed: " + err.Error())
	}
}

func (s *generationService) Strategy(ctx context.Context, userID int64, req *transfer.StrategyRequest) map[string]any {
	system, user := strategyPrompt(req.Niche, req.Goals, req.Platforms)
	return s.run(ctx, userID, router.TaskStrategy, system, user, func(raw string) map[string]any {
		return map[string]any{"pillars": []any{}, "posting_schedule": []any{}, "summary": raw}
	})
}

func (s *generationService) Critique(ctx context.Context, userID int64, req *transfer.CritiqueRequest) map[string]any {
	system, user := critiquePrompt(req.Bio, req.Captions)
	return s.run(ctx, userID, router.TaskCritique, system, user, func(raw string) map[string]any {
		return map[string]any{"strengths": []any{}, "weaknesses": []any{}, "suggestions": []any{}, "score": 0, "summary": raw}
	})
}

func (s *generationService) Trends(ctx context.Context, userID int64, req *transfer.TrendsRequest) map[string]any {
	system, user := trendsPrompt(req.Posts)
	return s.run(ctx, userID, router.TaskTrends, system, user, func(raw string) map[string]any {
		return map[string]any{"trends": []any{}, "summary": raw}
	})
}

func (s *generationService) CRMSummary(ctx context.Context, userID int64, req *transfer.CRMSummaryRequest) map[string]any {
	system, user := crmSummaryPrompt(req.Interactions)
	return s.run(ctx, userID, router.TaskCRMSummary, system, user, func(raw string) map[string]any {
		return map[string]any{"summary": raw, "sentiment": "", "follow_ups": []any{}}
	})
}

func (s *generationService) AnalyticsReport(ctx context.Context, userID int64, req *transfer.AnalyticsReportRequest) map[string]any {
	statsLine := "no connected accounts"
	if s.stats != nil {
		if stats := s.stats.GetStats(ctx, userID); stats != nil {
			statsLine = stats.Line()
		}
	}

	system, user := analyticsReportPrompt(req.Period, req.Notes, statsLine)
	return s.run(ctx, userID, router.TaskAnalytics, system, user, func(raw string) map[string]any {
		return map[string]any{"headline": "", "highlights": []any{}, "recommendations": []any{}, "summary": raw}
	})
}

func (s *generationService) Autopilot(ctx context.Context, userID int64, req *transfer.AutopilotRequest) map[string]any {
	count := req.Count
	if count <= 0 || count > 10 {
		count = 5
	}
	system, user := autopilotPrompt(req.Niche, count)
	return s.run(ctx, userID, router.TaskAutopilot, system, user, func(raw string) map[string]any {
		return map[string]any{"ideas": []any{}}
	})
}

func (s *generationService) Caption(ctx context.Context, userID int64, req *transfer.CaptionRequest) map[string]any {
	tone := req.Tone
	if tone == "" {
		tone = "casual"
	}
	system, user := captionPrompt(req.Topic, tone)
	return s.run(ctx, userID, router.TaskCaption, system, user, func(raw string) map[string]any {
		if raw != "" {
			return map[string]any{"captions": []any{raw}}
		}
		return map[string]any{"captions": []any{}}
	})
}

func (s *generationService) Reply(ctx context.Context, userID int64, req *transfer.ReplyRequest) map[string]any {
	tone := req.Tone
	if tone == "" {
		tone = "friendly"
	}
	system, user := replyPrompt(req.Comment, tone)
	return s.run(ctx, userID, router.TaskReply, system, user, func(raw string) map[string]any {
		return map[string]any{"reply": raw}
	})
}

func (s *generationService) Categorize(ctx context.Context, userID int64, req *transfer.CategorizeRequest) map[string]any {
	system, user := categorizePrompt(req.Posts)
	return s.run(ctx, userID, router.TaskCategorize, system, user, func(raw string) map[string]any {
		return map[string]any{"categories": []any{}}
	})
}

func (s *generationService) Hashtags(ctx context.Context, userID int64, req *transfer.HashtagsRequest) map[string]any {
	system, user := hashtagsPrompt(req.Topic)
	return s.run(ctx, userID, router.TaskHashtags, system, user, func(raw string) map[string]any {
		return map[string]any{"hashtags": []any{}}
	})
}

func (s *generationService) Brand(ctx context.Context, userID int64, req *transfer.BrandRequest) map[string]any {
	system, user := brandPrompt(req.Description, req.Audience)
	return s.run(ctx, userID, router.TaskBrand, system, user, func(raw string) map[string]any {
		return map[string]any{"voice": raw, "dos": []any{}, "donts": []any{}, "example_phrases": []any{}}
	})
}

// Chatbot is plain text in, plain text out; there is no JSON contract to
// parse, so only a total model failure degrades.
func (s *generationService) Chatbot(ctx context.Context, userID int64, req *transfer.ChatbotRequest) map[string]any {
	system, user := chatbotPrompt(req.Message)
	handle := s.resolver.Resolve(string(router.TaskChatbot), userID)

	res, err := handle.Generate(ctx, system, user)
	if err != nil {
		slog.Error("generation failed",
			"task_type", string(router.TaskChatbot),
			"error", err.Error())
		return map[string]any{"reply": "", "note": "generation temporarily unavailable"}
	}

	payload := map[string]any{"reply": res.Text}
	s.saveHistory(ctx, userID, router.TaskChatbot, res.ServedModel, payload, false)
	return payload
}

func (s *generationService) ImagePrompt(ctx context.Context, userID int64, req *transfer.ImagePromptRequest) map[string]any {
	style := req.Style
	if style == "" {
		style = "photorealistic"
	}
	system, user := imagePromptPrompt(req.Concept, style)
	return s.run(ctx, userID, router.TaskImagePrompt, system, user, func(raw string) map[string]any {
		return map[string]any{"prompt": raw, "negative_prompt": ""}
	})
}

func (s *generationService) ContentGap(ctx context.Context, userID int64, req *transfer.ContentGapRequest) map[string]any {
	system, user := contentGapPrompt(req.Posts, req.Niche)
	return s.run(ctx, userID, router.TaskContentGapAnalysis, system, user, func(raw string) map[string]any {
		return map[string]any{"gaps": []any{}}
	})
}

func (s *generationService) CaptionOptimization(ctx context.Context, userID int64, req *transfer.CaptionOptimizationRequest) map[string]any {
	system, user := captionOptimizationPrompt(req.Caption)
	return s.run(ctx, userID, router.TaskCaptionOptimization, system, user, func(raw string) map[string]any {
		return map[string]any{"optimized": raw, "changes": []any{}}
	})
}

func (s *generationService) PerformancePrediction(ctx context.Context, userID int64, req *transfer.PerformancePredictionRequest) map[string]any {
	platform := req.Platform
	if platform == "" {
		platform = "instagram"
	}
	system, user := performancePredictionPrompt(req.Caption, platform)
	return s.run(ctx, userID, router.TaskPerformancePrediction, system, user, func(raw string) map[string]any {
		return map[string]any{"prediction": raw, "confidence": "low", "factors": []any{}}
	})
}

func (s *generationService) ContentRepurposing(ctx context.Context, userID int64, req *transfer.ContentRepurposingRequest) map[string]any {
	system, user := contentRepurposingPrompt(req.Content, req.TargetPlatform)
	return s.run(ctx, userID, router.TaskContentRepurposing, system, user, func(raw string) map[string]any {
		return map[string]any{"repurposed": raw, "notes": []any{}}
	})
}

func (s *generationService) History(ctx context.Context, userID int64, taskType string, limit int) ([]*models.GeneratedContent, error) {
	return s.cr.ListByUser(ctx, userID, taskType, limit)
}
