package dto

// --- Profile Requests ---

type UpdateBrandProfileRequest struct {
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,min=2,max=150"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

type UpdateCreatorProfileRequest struct {
	DisplayName *string  `json:"display_name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio         *string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	City        *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Platforms   []string `json:"platforms,omitempty" validate:"omitempty,dive,oneof=instagram tiktok youtube twitter twitch"`
	Categories  []string `json:"categories,omitempty" validate:"omitempty,dive,max=100"`
}

// --- Profile Responses ---

type BrandProfileResponse struct {
	UserID      string `json:"user_id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	City        string `json:"city,omitempty"`
	IsVerified  bool   `json:"is_verified"`
}

type CreatorProfileResponse struct {
	UserID         string   `json:"user_id"`
	DisplayName    string   `json:"display_name"`
	Bio            string   `json:"bio,omitempty"`
	City           string   `json:"city,omitempty"`
	Platforms      []string `json:"platforms"`
	Categories     []string `json:"categories"`
	FollowerCount  int64    `json:"follower_count"`
	EngagementRate float64  `json:"engagement_rate"`
}
