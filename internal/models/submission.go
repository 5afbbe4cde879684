package models

type Submission struct {
	BaseModel
	CampaignID  string `gorm:"not null;index"`
	CreatorID   string `gorm:"not null;index"`
	BriefID     string `gorm:"not null;index"`
	FileURL     string `gorm:"not null"`
	FileName    string
	FileSize    int64
	ContentType string
	Platform    string
	Caption     string
	Status      SubmissionStatus `gorm:"not null;default:'submitted';index"`
	Revisions   int              `gorm:"default:0"`

	Campaign Campaign `gorm:"foreignKey:CampaignID"`
	Creator  User     `gorm:"foreignKey:CreatorID"`
	Brief    Brief    `gorm:"foreignKey:BriefID"`
}
