package service

import (
	"fmt"
	"strings"
)

// Prompt templates for the generation features. Each is a deterministic
// string build over validated input, ending with the JSON shape the model
// must return. Handlers have already validated required fields.

const jsonOnlyInstruction = "Respond with a single JSON object only. No Markdown, no code fences, no commentary."

func strategyPrompt(niche, goals string, platforms []string) (string, string) {
	system := "You are a social media strategist for creators and small businesses. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Create a content strategy for a creator in the "%s" niche with these goals: %s. Target platforms: %s.
Return JSON of shape {"pillars": [{"name": string, "description": string}], "posting_schedule": [{"day": string, "content_type": string}], "summary": string}.`,
		niche, goals, strings.Join(platforms, ", "))
	return system, user
}

func critiquePrompt(bio string, captions []string) (string, string) {
	system := "You are a blunt but constructive social media profile critic. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Critique this profile. Bio: %q. Recent captions: %s.
Return JSON of shape {"strengths": [string], "weaknesses": [string], "suggestions": [string], "score": number}.`,
		bio, strings.Join(captions, " | "))
	return system, user
}

func trendsPrompt(posts []string) (string, string) {
	system := "You are a social media trend analyst. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Analyze these recent posts and identify emerging trends: %s.
Return JSON of shape {"trends": [{"name": string, "description": string, "relevance": string}], "summary": string}.`,
		strings.Join(posts, " | "))
	return system, user
}

func crmSummaryPrompt(interactions []string) (string, string) {
	system := "You summarize audience interactions for a creator CRM. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Summarize these interactions: %s.
Return JSON of shape {"summary": string, "sentiment": string, "follow_ups": [string]}.`,
		strings.Join(interactions, " | "))
	return system, user
}

func analyticsReportPrompt(period, notes string, statsLine string) (string, string) {
	system := "You write concise analytics narratives for creator dashboards. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Write an analytics report for the period %q. Platform stats: %s. Operator notes: %s.
Return JSON of shape {"headline": string, "highlights": [string], "recommendations": [string]}.`,
		period, statsLine, notes)
	return system, user
}

func autopilotPrompt(niche string, count int) (string, string) {
	system := "You generate ready-to-post content ideas. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Generate %d content ideas for the "%s" niche.
Return JSON of shape {"ideas": [{"title": string, "hook": string, "format": string}]}.`,
		count, niche)
	return system, user
}

func captionPrompt(topic, tone string) (string, string) {
	system := "You write scroll-stopping social media captions. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Write 3 caption options about %q in a %s tone.
Return JSON of shape {"captions": [string]}.`,
		topic, tone)
	return system, user
}

func replyPrompt(comment, tone string) (string, string) {
	system := "You draft replies to comments and DMs on behalf of a creator. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Draft a reply to this comment: %q. Tone: %s.
Return JSON of shape {"reply": string}.`,
		comment, tone)
	return system, user
}

func categorizePrompt(posts []string) (string, string) {
	system := "You categorize social media content. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Categorize each of these posts: %s.
Return JSON of shape {"categories": [{"post": string, "category": string}]}.`,
		strings.Join(posts, " | "))
	return system, user
}

func hashtagsPrompt(topic string) (string, string) {
	system := "You suggest effective hashtags. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Suggest hashtags for a post about %q, mixing broad and niche tags.
Return JSON of shape {"hashtags": [string]}.`,
		topic)
	return system, user
}

func brandPrompt(description, audience string) (string, string) {
	system := "You define brand voice guidelines for creators. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Define a brand voice for: %s. Audience: %s.
Return JSON of shape {"voice": string, "dos": [string], "donts": [string], "example_phrases": [string]}.`,
		description, audience)
	return system, user
}

func imagePromptPrompt(concept, style string) (string, string) {
	system := "You write detailed prompts for image generation models. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Write an image generation prompt for the concept %q in the style %q.
Return JSON of shape {"prompt": string, "negative_prompt": string}.`,
		concept, style)
	return system, user
}

func contentGapPrompt(posts []string, niche string) (string, string) {
	system := "You find content gaps a creator is not covering. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Given these recent posts in the "%s" niche: %s — identify topics the creator should cover but has not.
Return JSON of shape {"gaps": [{"topic": string, "rationale": string}]}.`,
		niche, strings.Join(posts, " | "))
	return system, user
}

func captionOptimizationPrompt(caption string) (string, string) {
	system := "You rewrite captions to maximize engagement. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Rewrite this caption for better engagement: %q.
Return JSON of shape {"optimized": string, "changes": [string]}.`,
		caption)
	return system, user
}

func performancePredictionPrompt(caption, platform string) (string, string) {
	system := "You estimate how social media posts will perform. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Predict the performance of this %s post: %q.
Return JSON of shape {"prediction": string, "confidence": string, "factors": [string]}.`,
		platform, caption)
	return system, user
}

func contentRepurposingPrompt(content, targetPlatform string) (string, string) {
	system := "You repurpose content across platforms. " + jsonOnlyInstruction
	user := fmt.Sprintf(
		`Repurpose this content for %s: %q.
Return JSON of shape {"repurposed": string, "notes": [string]}.`,
		targetPlatform, content)
	return system, user
}

func chatbotPrompt(message string) (string, string) {
	system := "You are EchoFlux, a helpful assistant for content creators. Answer in plain text."
	return system, message
}
