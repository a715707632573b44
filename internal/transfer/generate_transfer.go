package transfer

// Request bodies for the generation endpoints. Each handler validates its
// own required fields and reports the first missing one by name.

type StrategyRequest struct {
	Niche     string   `json:"niche"`
	Goals     string   `json:"goals"`
	Platforms []string `json:"platforms"`
}

type CritiqueRequest struct {
	Bio      string   `json:"bio"`
	Captions []string `json:"captions"`
}

type TrendsRequest struct {
	Posts []string `json:"posts"`
}

type CRMSummaryRequest struct {
	Interactions []string `json:"interactions"`
}

type AnalyticsReportRequest struct {
	Period string `json:"period"`
	Notes  string `json:"notes"`
}

type AutopilotRequest struct {
	Niche string `json:"niche"`
	Count int    `json:"count"`
}

type CaptionRequest struct {
	Topic string `json:"topic"`
	Tone  string `json:"tone"`
}

type ReplyRequest struct {
	Comment string `json:"comment"`
	Tone    string `json:"tone"`
}

type CategorizeRequest struct {
	Posts []string `json:"posts"`
}

type HashtagsRequest struct {
	Topic string `json:"topic"`
}

type BrandRequest struct {
	Description string `json:"description"`
	Audience    string `json:"audience"`
}

type ChatbotRequest struct {
	Message string `json:"message"`
}

type ImagePromptRequest struct {
	Concept string `json:"concept"`
	Style   string `json:"style"`
}

type ContentGapRequest struct {
	Posts []string `json:"posts"`
	Niche string   `json:"niche"`
}

type CaptionOptimizationRequest struct {
	Caption string `json:"caption"`
}

type PerformancePredictionRequest struct {
	Caption  string `json:"caption"`
	Platform string `json:"platform"`
}

type ContentRepurposingRequest struct {
	Content        string `json:"content"`
	TargetPlatform string `json:"target_platform"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

type UsageTierSummary struct {
	Tier          string  `json:"tier"`
	Calls         int64   `json:"calls"`
	Failures      int64   `json:"failures"`
	EstimatedCost float64 `json:"estimated_cost"`
}
