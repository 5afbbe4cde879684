package services

import (
	"errors"
	"time"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/auth"
	"brandlink_backend/internal/config"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetMe(db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type authServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *authServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}

	// Пользователь и профиль создаются в одной транзакции.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrEmailAlreadyExists
			}
			return err
		}

		switch user.Role {
		case models.UserRoleBrand:
			return s.profileRepo.CreateBrandProfile(tx, &models.BrandProfile{
				UserID:      user.ID,
				CompanyName: req.CompanyName,
			})
		case models.UserRoleCreator:
			return s.profileRepo.CreateCreatorProfile(tx, &models.CreatorProfile{
				UserID:      user.ID,
				DisplayName: req.DisplayName,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusSuspended || user.Status == models.UserStatusBanned {
		return nil, apperrors.ErrForbidden
	}

	if err := s.userRepo.UpdateLastLogin(db, user.ID); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authServiceImpl) GetMe(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *authServiceImpl) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ttl := time.Duration(config.AppConfig.JWT.TTL) * time.Minute
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(ttl),
		User:        dto.ToUserResponse(user),
	}, nil
}
