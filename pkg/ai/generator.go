package ai

import "context"

// TextGenerator produces text for a system prompt and user prompt against a
// single model. The model routing layer composes these with fallback chains.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}
