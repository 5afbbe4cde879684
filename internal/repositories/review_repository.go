package repositories

import (
	"brandlink_backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	// CreateReview only inserts; review rows are never updated afterwards.
	CreateReview(db *gorm.DB, review *models.Review) error
	FindReviewByID(db *gorm.DB, id string) (*models.Review, error)
	FindReviewsBySubject(db *gorm.DB, subjectType, subjectID string) ([]models.Review, error)
	FindLatestBySubject(db *gorm.DB, subjectType, subjectID string) (*models.Review, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindReviewByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindReviewsBySubject(db *gorm.DB, subjectType, subjectID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindLatestBySubject(db *gorm.DB, subjectType, subjectID string) (*models.Review, error) {
	var review models.Review
	err := db.Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("created_at DESC").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}
