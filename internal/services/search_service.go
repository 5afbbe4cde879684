package services

import (
	"encoding/json"

	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"gorm.io/gorm"
)

type SearchService interface {
	SearchCreators(db *gorm.DB, req *dto.SearchCreatorsRequest) (*dto.SearchCreatorsResponse, error)
}

type searchServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewSearchService(profileRepo repositories.ProfileRepository) SearchService {
	return &searchServiceImpl{profileRepo: profileRepo}
}

func (s *searchServiceImpl) SearchCreators(db *gorm.DB, req *dto.SearchCreatorsRequest) (*dto.SearchCreatorsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	criteria := repositories.CreatorSearchCriteria{
		Query:        req.Query,
		Platform:     req.Platform,
		Category:     req.Category,
		MinFollowers: req.MinFollowers,
		MaxFollowers: req.MaxFollowers,
		Page:         page,
		PageSize:     limit,
		SortBy:       req.SortBy,
	}

	profiles, total, err := s.profileRepo.SearchCreators(db, criteria)
	if err != nil {
		return nil, err
	}

	results := make([]dto.CreatorSearchResult, 0, len(profiles))
	for i := range profiles {
		results = append(results, toSearchResult(&profiles[i]))
	}

	return &dto.SearchCreatorsResponse{
		Results: results,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

func toSearchResult(profile *models.CreatorProfile) dto.CreatorSearchResult {
	var platforms, categories []string
	if len(profile.Platforms) > 0 {
		_ = json.Unmarshal(profile.Platforms, &platforms)
	}
	if len(profile.Categories) > 0 {
		_ = json.Unmarshal(profile.Categories, &categories)
	}

	return dto.CreatorSearchResult{
		UserID:         profile.UserID,
		DisplayName:    profile.DisplayName,
		Bio:            profile.Bio,
		City:           profile.City,
		Platforms:      platforms,
		Categories:     categories,
		FollowerCount:  profile.FollowerCount,
		EngagementRate: profile.EngagementRate,
		MemberSince:    profile.CreatedAt,
	}
}
