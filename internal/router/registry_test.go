package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupAllRegisteredTypes(t *testing.T) {
	for _, tt := range TaskTypes() {
		cfg := Lookup(tt)
		assert.NotEmpty(t, cfg.Model, "task %s has no model", tt)
		assert.Contains(t, []CostTier{TierLow, TierMedium, TierHigh}, cfg.Tier, "task %s has bad tier", tt)
	}
}

func TestLookupUnknownDefaultsToChatbot(t *testing.T) {
	cfg := Lookup(TaskType("definitely-not-a-task"))
	assert.Equal(t, registry[TaskChatbot], cfg)

	cfg = Lookup(TaskType(""))
	assert.Equal(t, registry[TaskChatbot], cfg)
}

func TestLookupSpecificRoutes(t *testing.T) {
	assert.Equal(t, TierLow, Lookup(TaskCaption).Tier)
	assert.Equal(t, TierHigh, Lookup(TaskStrategy).Tier)
	assert.Equal(t, TierMedium, Lookup(TaskTrends).Tier)
	assert.Equal(t, "gpt-4o", Lookup(TaskCritique).Model)
}

func TestFallbacksOrdered(t *testing.T) {
	chain := Fallbacks("gpt-4o")
	assert.Equal(t, []string{"gpt-4o-mini", "gpt-3.5-turbo"}, chain)

	assert.Empty(t, Fallbacks("model-with-no-chain"))
}

func TestEstimatedCostByTier(t *testing.T) {
	assert.Greater(t, EstimatedCost(TierHigh), EstimatedCost(TierMedium))
	assert.Greater(t, EstimatedCost(TierMedium), EstimatedCost(TierLow))
	assert.Greater(t, EstimatedCost(TierLow), 0.0)
}
