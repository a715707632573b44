package router

import "log/slog"

// TaskType labels what kind of generation a request wants. Routing is a
// static table fixed at process start.
type TaskType string

const (
	TaskCaption               TaskType = "caption"
	TaskReply                 TaskType = "reply"
	TaskCategorize            TaskType = "categorize"
	TaskHashtags              TaskType = "hashtags"
	TaskAnalytics             TaskType = "analytics"
	TaskTrends                TaskType = "trends"
	TaskStrategy              TaskType = "strategy"
	TaskAutopilot             TaskType = "autopilot"
	TaskBrand                 TaskType = "brand"
	TaskCritique              TaskType = "critique"
	TaskCRMSummary            TaskType = "crm-summary"
	TaskChatbot               TaskType = "chatbot"
	TaskImagePrompt           TaskType = "image-prompt"
	TaskContentGapAnalysis    TaskType = "content_gap_analysis"
	TaskCaptionOptimization   TaskType = "caption_optimization"
	TaskPerformancePrediction TaskType = "performance_prediction"
	TaskContentRepurposing    TaskType = "content_repurposing"
)

type CostTier string

const (
	TierLow    CostTier = "low"
	TierMedium CostTier = "medium"
	TierHigh   CostTier = "high"
)

type ModelConfig struct {
	Model       string
	Description string
	Tier        CostTier
}

var registry = map[TaskType]ModelConfig{
	TaskCaption:               {Model: "gpt-4o-mini", Description: "Short caption generation", Tier: TierLow},
	TaskReply:                 {Model: "gpt-4o-mini", Description: "Comment and DM replies", Tier: TierLow},
	TaskCategorize:            {Model: "gpt-4o-mini", Description: "Content categorization", Tier: TierLow},
	TaskHashtags:              {Model: "gpt-4o-mini", Description: "Hashtag suggestions", Tier: TierLow},
	TaskChatbot:               {Model: "gpt-4o-mini", Description: "General assistant chat", Tier: TierLow},
	TaskTrends:                {Model: "gpt-4o-mini", Description: "Trend spotting over recent posts", Tier: TierMedium},
	TaskAutopilot:             {Model: "gpt-4o-mini", Description: "Autopilot content ideas", Tier: TierMedium},
	TaskImagePrompt:           {Model: "gpt-4o-mini", Description: "Image generation prompts", Tier: TierMedium},
	TaskCaptionOptimization:   {Model: "gpt-4o", Description: "Caption rewrite for engagement", Tier: TierMedium},
	TaskContentRepurposing:    {Model: "gpt-4o", Description: "Cross-platform repurposing", Tier: TierMedium},
	TaskAnalytics:             {Model: "gpt-4o", Description: "Analytics report narration", Tier: TierHigh},
	TaskStrategy:              {Model: "gpt-4o", Description: "Full content strategy", Tier: TierHigh},
	TaskBrand:                 {Model: "gpt-4o", Description: "Brand voice definition", Tier: TierHigh},
	TaskCritique:              {Model: "gpt-4o", Description: "Profile critique", Tier: TierHigh},
	TaskCRMSummary:            {Model: "gpt-4o", Description: "CRM interaction summaries", Tier: TierHigh},
	TaskContentGapAnalysis:    {Model: "gpt-4o", Description: "Content gap analysis", Tier: TierHigh},
	TaskPerformancePrediction: {Model: "gpt-4o", Description: "Post performance prediction", Tier: TierHigh},
}

// fallbackChains lists alternates tried in order when a primary model fails.
var fallbackChains = map[string][]string{
	"gpt-4o":      {"gpt-4o-mini", "gpt-3.5-turbo"},
	"gpt-4o-mini": {"gpt-3.5-turbo"},
}

// estimatedTierCost is a coarse per-call accounting bucket, not a price.
var estimatedTierCost = map[CostTier]float64{
	TierLow:    0.0005,
	TierMedium: 0.002,
	TierHigh:   0.01,
}

// Lookup returns the config for a task type. Unknown labels resolve to the
// chatbot config rather than erroring; the substitution is logged so it
// stays visible to operators.
func Lookup(t TaskType) ModelConfig {
	if cfg, ok := registry[t]; ok {
		return cfg
	}
	slog.Warn("unknown task type, routing to chatbot", "task_type", string(t))
	return registry[TaskChatbot]
}

// Fallbacks returns the alternates for a model, outermost first.
func Fallbacks(model string) []string {
	return fallbackChains[model]
}

// EstimatedCost returns the accounting cost for one call at a tier.
func EstimatedCost(tier CostTier) float64 {
	return estimatedTierCost[tier]
}

// TaskTypes lists every registered task type.
func TaskTypes() []TaskType {
	types := make([]TaskType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	return types
}
