package dto

import "time"

// SearchCreatorsRequest - параметры поиска креаторов (query string).
type SearchCreatorsRequest struct {
	Query        string `form:"q" validate:"omitempty,max=200"`
	Platform     string `form:"platform" validate:"omitempty,oneof=instagram tiktok youtube twitter twitch"`
	Category     string `form:"category" validate:"omitempty,max=100"`
	MinFollowers int64  `form:"min_followers" validate:"omitempty,min=0"`
	MaxFollowers int64  `form:"max_followers" validate:"omitempty,min=0"`
	SortBy       string `form:"sort_by" validate:"omitempty,oneof=followers engagement created_at"`
	Page         int    `form:"page" validate:"omitempty,min=1"`
	Limit        int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type CreatorSearchResult struct {
	UserID         string    `json:"user_id"`
	DisplayName    string    `json:"display_name"`
	Bio            string    `json:"bio,omitempty"`
	City           string    `json:"city,omitempty"`
	Platforms      []string  `json:"platforms"`
	Categories     []string  `json:"categories"`
	FollowerCount  int64     `json:"follower_count"`
	EngagementRate float64   `json:"engagement_rate"`
	MemberSince    time.Time `json:"member_since"`
}

type SearchCreatorsResponse struct {
	Results []CreatorSearchResult `json:"results"`
	Total   int64                 `json:"total"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
}
