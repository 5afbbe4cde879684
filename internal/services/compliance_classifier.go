package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"brandlink_backend/internal/config"
	"brandlink_backend/internal/models"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ClassifierInput is everything the model sees about a campaign.
type ClassifierInput struct {
	Name        string
	Description string
	Platforms   []string
	Rules       []models.PlatformRule
}

// ClassifierVerdict is the parsed model output.
type ClassifierVerdict struct {
	Decision        models.ReviewDecision
	Score           float64
	Issues          []models.ComplianceIssue
	Recommendations []string
	Summary         string
}

// ComplianceClassifier scores a campaign against platform rules.
type ComplianceClassifier interface {
	ClassifyCampaign(ctx context.Context, input ClassifierInput) (*ClassifierVerdict, error)
}

const classifierSystemPrompt = `You are a compliance reviewer for an influencer marketing platform.
Assess the campaign below against the provided platform rules.
Respond with a single JSON object and nothing else:
{"decision": "approved" | "rejected" | "needs_review", "confidence_score": 0.0-1.0, "issues": [{"type": "...", "severity": "low"|"medium"|"high", "description": "..."}], "recommendations": ["..."], "summary": "one-sentence rationale"}
The confidence_score is your confidence that the campaign violates a rule (1.0 = certain violation).
Use "needs_review" whenever you are not confident either way.`

type openAIClassifier struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
}

func NewOpenAIClassifier(cfg *config.Config) ComplianceClassifier {
	var client openai.Client
	if cfg.AI.BaseURL != "" {
		client = openai.NewClient(
			option.WithAPIKey(cfg.AI.APIKey),
			option.WithBaseURL(cfg.AI.BaseURL),
		)
	} else {
		client = openai.NewClient(
			option.WithAPIKey(cfg.AI.APIKey),
		)
	}
	return &openAIClassifier{
		client:      client,
		model:       cfg.AI.Model,
		temperature: cfg.AI.Temperature,
		maxTokens:   cfg.AI.MaxTokens,
	}
}

func (c *openAIClassifier) ClassifyCampaign(ctx context.Context, input ClassifierInput) (*ClassifierVerdict, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(classifierSystemPrompt),
		openai.UserMessage(buildClassifierPrompt(input)),
	}

	response, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		return nil, err
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("classifier returned no choices")
	}

	return parseVerdict(response.Choices[0].Message.Content), nil
}

func buildClassifierPrompt(input ClassifierInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Campaign: %s\n", input.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Description)
	fmt.Fprintf(&b, "Target platforms: %s\n", strings.Join(input.Platforms, ", "))

	b.WriteString("\nPlatform rules:\n")
	if len(input.Rules) == 0 {
		b.WriteString("(no specific rules; use general advertising compliance standards)\n")
	}
	for _, rule := range input.Rules {
		fmt.Fprintf(&b, "- [%s/%s, severity %s] %s\n", rule.Platform, rule.RuleType, rule.Severity, rule.Description)
	}
	return b.String()
}

// parseVerdict is tolerant of model chatter around the JSON object. Anything
// that cannot be parsed falls back to a needs_review verdict at score 0.5 so a
// broken model answer always lands in the human queue instead of auto-passing.
// Older prompts named the confidence field "score"; both spellings are read.
func parseVerdict(content string) *ClassifierVerdict {
	fallback := &ClassifierVerdict{
		Decision: models.ReviewDecisionNeedsReview,
		Score:    0.5,
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return fallback
	}

	var raw struct {
		Decision        models.ReviewDecision    `json:"decision"`
		ConfidenceScore *float64                 `json:"confidence_score"`
		Score           *float64                 `json:"score"`
		Issues          []models.ComplianceIssue `json:"issues"`
		Recommendations []string                 `json:"recommendations"`
		Summary         string                   `json:"summary"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return fallback
	}

	switch raw.Decision {
	case models.ReviewDecisionApproved, models.ReviewDecisionRejected, models.ReviewDecisionNeedsReview:
	default:
		return fallback
	}

	verdict := &ClassifierVerdict{
		Decision:        raw.Decision,
		Issues:          raw.Issues,
		Recommendations: raw.Recommendations,
		Summary:         raw.Summary,
	}
	switch {
	case raw.ConfidenceScore != nil:
		verdict.Score = *raw.ConfidenceScore
	case raw.Score != nil:
		verdict.Score = *raw.Score
	default:
		// A decision without a confidence is not trustworthy enough to act on.
		verdict.Score = 0.5
		verdict.Decision = models.ReviewDecisionNeedsReview
	}
	if verdict.Score < 0 || verdict.Score > 1 {
		verdict.Score = 0.5
		verdict.Decision = models.ReviewDecisionNeedsReview
	}
	return verdict
}
