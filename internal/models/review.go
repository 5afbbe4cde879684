package models

import "gorm.io/datatypes"

const (
	ReviewSubjectCampaign   = "campaign"
	ReviewSubjectSubmission = "submission"
)

// Review is the append-only audit trail of review activity. Rows are inserted
// and never updated; the current state lives on the reviewed entity itself.
type Review struct {
	BaseModel
	SubjectType       string  `gorm:"not null;index:idx_review_subject"`
	SubjectID         string  `gorm:"not null;index:idx_review_subject"`
	ReviewerID        *string `gorm:"index"` // nil means the AI classifier
	Action            string
	AIDecision        ReviewDecision `gorm:"default:''"`
	HumanDecision     ReviewDecision `gorm:"default:''"`
	AIScore           float64        `gorm:"default:0"`
	AIIssues          datatypes.JSON `gorm:"type:jsonb"` // [{type, severity, description}]
	AIRecommendations datatypes.JSON `gorm:"type:jsonb"`
	Summary           string
	Feedback          string
}

type ComplianceIssue struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}
