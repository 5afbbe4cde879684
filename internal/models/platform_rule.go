package models

// PlatformRule is an admin-managed compliance rule fed into the AI triage
// prompt for campaigns targeting the rule's platform.
type PlatformRule struct {
	BaseModel
	Platform    string `gorm:"not null;index"`
	RuleType    string `gorm:"not null"` // "disclosure", "prohibited_content", ...
	Description string `gorm:"not null"`
	Severity    string `gorm:"default:'medium'"`
	IsActive    bool   `gorm:"default:true"`
}
