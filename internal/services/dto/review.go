package dto

import (
	"time"

	"brandlink_backend/internal/models"
)

// --- Review Requests ---

type ReviewSubmissionRequest struct {
	Action   models.ReviewAction `json:"action" validate:"required,is-review-action"`
	Feedback string              `json:"feedback" validate:"omitempty,max=5000"`
}

// DecideCampaignRequest - решение ревьюера по кампании в статусе under_review.
type DecideCampaignRequest struct {
	Decision models.CampaignReviewStatus `json:"decision" validate:"required,oneof=approved rejected needs_revision"`
	Summary  string                      `json:"summary" validate:"omitempty,max=5000"`
}

// --- Review Responses ---

type ReviewResponse struct {
	ID                string                   `json:"id"`
	SubjectType       string                   `json:"subject_type"`
	SubjectID         string                   `json:"subject_id"`
	ReviewerID        *string                  `json:"reviewer_id,omitempty"` // null для AI-классификатора
	Action            string                   `json:"action,omitempty"`
	AIDecision        models.ReviewDecision    `json:"ai_decision,omitempty"`
	HumanDecision     models.ReviewDecision    `json:"human_decision,omitempty"`
	AIScore           float64                  `json:"ai_score,omitempty"`
	AIIssues          []models.ComplianceIssue `json:"ai_issues,omitempty"`
	AIRecommendations []string                 `json:"ai_recommendations,omitempty"`
	Summary           string                   `json:"summary,omitempty"`
	Feedback          string                   `json:"feedback,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
}

// TriageResponse - итог AI-триажа кампании.
type TriageResponse struct {
	CampaignID     string                      `json:"campaign_id"`
	Decision       models.ReviewDecision       `json:"decision"`
	Score          float64                     `json:"score"`
	Issues         []models.ComplianceIssue    `json:"issues,omitempty"`
	Summary        string                      `json:"summary,omitempty"`
	ReviewStatus   models.CampaignReviewStatus `json:"review_status"`
	ReviewPriority int                         `json:"review_priority"`
}
