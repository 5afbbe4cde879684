package services

import (
	"testing"

	"brandlink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdictCleanJSON(t *testing.T) {
	verdict := parseVerdict(`{"decision": "rejected", "confidence_score": 0.92, "issues": [{"type": "prohibited_content", "severity": "high", "description": "promotes gambling to minors"}], "recommendations": ["restrict audience to 18+"], "summary": "targets minors with gambling content"}`)

	assert.Equal(t, models.ReviewDecisionRejected, verdict.Decision)
	assert.Equal(t, 0.92, verdict.Score)
	require.Len(t, verdict.Issues, 1)
	assert.Equal(t, "high", verdict.Issues[0].Severity)
	assert.Equal(t, []string{"restrict audience to 18+"}, verdict.Recommendations)
	assert.Equal(t, "targets minors with gambling content", verdict.Summary)
}

func TestParseVerdictConfidenceScoreField(t *testing.T) {
	verdict := parseVerdict(`{"decision": "needs_review", "confidence_score": 0.9, "summary": "likely violation"}`)

	assert.Equal(t, models.ReviewDecisionNeedsReview, verdict.Decision)
	assert.Equal(t, 0.9, verdict.Score)
	assert.Equal(t, "likely violation", verdict.Summary)
}

func TestParseVerdictAcceptsLegacyScoreAlias(t *testing.T) {
	verdict := parseVerdict(`{"decision": "rejected", "score": 0.7}`)

	assert.Equal(t, models.ReviewDecisionRejected, verdict.Decision)
	assert.Equal(t, 0.7, verdict.Score)
}

func TestParseVerdictWithModelChatter(t *testing.T) {
	verdict := parseVerdict("Sure, here is my assessment:\n```json\n{\"decision\": \"approved\", \"confidence_score\": 0.05}\n```\nLet me know if you need anything else.")

	assert.Equal(t, models.ReviewDecisionApproved, verdict.Decision)
	assert.Equal(t, 0.05, verdict.Score)
}

func TestParseVerdictFallsBackToHumanQueue(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"no json":          "I cannot assess this campaign.",
		"broken json":      `{"decision": "approved", "confidence_score":`,
		"unknown decision": `{"decision": "maybe", "confidence_score": 0.3}`,
		"no confidence":    `{"decision": "approved"}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			verdict := parseVerdict(content)
			assert.Equal(t, models.ReviewDecisionNeedsReview, verdict.Decision)
			assert.Equal(t, 0.5, verdict.Score)
		})
	}
}

func TestParseVerdictClampsOutOfRangeScore(t *testing.T) {
	verdict := parseVerdict(`{"decision": "approved", "confidence_score": 7.5}`)

	// a nonsense score downgrades the whole verdict, never auto-approves
	assert.Equal(t, models.ReviewDecisionNeedsReview, verdict.Decision)
	assert.Equal(t, 0.5, verdict.Score)
}

func TestBuildClassifierPromptIncludesRules(t *testing.T) {
	prompt := buildClassifierPrompt(ClassifierInput{
		Name:        "Summer Launch",
		Description: "New energy drink promo",
		Platforms:   []string{"instagram", "tiktok"},
		Rules: []models.PlatformRule{
			{Platform: "instagram", RuleType: "disclosure", Severity: "high", Description: "Paid partnerships must be labelled"},
		},
	})

	assert.Contains(t, prompt, "Summer Launch")
	assert.Contains(t, prompt, "instagram, tiktok")
	assert.Contains(t, prompt, "Paid partnerships must be labelled")
}

func TestBuildClassifierPromptWithoutRules(t *testing.T) {
	prompt := buildClassifierPrompt(ClassifierInput{Name: "Bare", Description: "d"})
	assert.Contains(t, prompt, "no specific rules")
}

func TestPriorityForScore(t *testing.T) {
	assert.Equal(t, 3, priorityForScore(0.95))
	assert.Equal(t, 3, priorityForScore(0.8))
	assert.Equal(t, 2, priorityForScore(0.6))
	assert.Equal(t, 1, priorityForScore(0.3))
	assert.Equal(t, 0, priorityForScore(0.1))
	assert.Equal(t, 0, priorityForScore(0))
}
