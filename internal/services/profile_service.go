package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetBrandProfile(db *gorm.DB, userID string) (*dto.BrandProfileResponse, error)
	GetCreatorProfile(db *gorm.DB, userID string) (*dto.CreatorProfileResponse, error)
	UpdateBrandProfile(db *gorm.DB, userID string, req *dto.UpdateBrandProfileRequest) (*dto.BrandProfileResponse, error)
	UpdateCreatorProfile(db *gorm.DB, userID string, req *dto.UpdateCreatorProfileRequest) (*dto.CreatorProfileResponse, error)
}

type profileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileServiceImpl{profileRepo: profileRepo}
}

func (s *profileServiceImpl) GetBrandProfile(db *gorm.DB, userID string) (*dto.BrandProfileResponse, error) {
	profile, err := s.profileRepo.FindBrandProfileByUser(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Brand profile")
		}
		return nil, err
	}
	return toBrandProfileResponse(profile), nil
}

func (s *profileServiceImpl) GetCreatorProfile(db *gorm.DB, userID string) (*dto.CreatorProfileResponse, error) {
	profile, err := s.profileRepo.FindCreatorProfileByUser(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Creator profile")
		}
		return nil, err
	}
	return toCreatorProfileResponse(profile), nil
}

func (s *profileServiceImpl) UpdateBrandProfile(db *gorm.DB, userID string, req *dto.UpdateBrandProfileRequest) (*dto.BrandProfileResponse, error) {
	profile, err := s.profileRepo.FindBrandProfileByUser(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Brand profile")
		}
		return nil, err
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.City != nil {
		profile.City = *req.City
	}

	if err := db.Save(profile).Error; err != nil {
		return nil, err
	}
	return toBrandProfileResponse(profile), nil
}

func (s *profileServiceImpl) UpdateCreatorProfile(db *gorm.DB, userID string, req *dto.UpdateCreatorProfileRequest) (*dto.CreatorProfileResponse, error) {
	profile, err := s.profileRepo.FindCreatorProfileByUser(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Creator profile")
		}
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if len(req.Platforms) > 0 {
		payload, err := json.Marshal(req.Platforms)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal platforms: %w", err)
		}
		profile.Platforms = datatypes.JSON(payload)
	}
	if len(req.Categories) > 0 {
		payload, err := json.Marshal(req.Categories)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal categories: %w", err)
		}
		profile.Categories = datatypes.JSON(payload)
	}

	if err := s.profileRepo.UpdateCreatorProfile(db, profile); err != nil {
		return nil, err
	}
	return toCreatorProfileResponse(profile), nil
}

func toBrandProfileResponse(profile *models.BrandProfile) *dto.BrandProfileResponse {
	return &dto.BrandProfileResponse{
		UserID:      profile.UserID,
		CompanyName: profile.CompanyName,
		Website:     profile.Website,
		Industry:    profile.Industry,
		City:        profile.City,
		IsVerified:  profile.IsVerified,
	}
}

func toCreatorProfileResponse(profile *models.CreatorProfile) *dto.CreatorProfileResponse {
	var platforms, categories []string
	if len(profile.Platforms) > 0 {
		_ = json.Unmarshal(profile.Platforms, &platforms)
	}
	if len(profile.Categories) > 0 {
		_ = json.Unmarshal(profile.Categories, &categories)
	}

	return &dto.CreatorProfileResponse{
		UserID:         profile.UserID,
		DisplayName:    profile.DisplayName,
		Bio:            profile.Bio,
		City:           profile.City,
		Platforms:      platforms,
		Categories:     categories,
		FollowerCount:  profile.FollowerCount,
		EngagementRate: profile.EngagementRate,
	}
}
