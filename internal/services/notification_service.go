package services

import (
	"errors"

	"brandlink_backend/internal/apperrors"
	"brandlink_backend/internal/email"
	"brandlink_backend/internal/logger"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/queue"
	"brandlink_backend/internal/repositories"
	"brandlink_backend/internal/services/dto"

	"gorm.io/gorm"
)

type NotificationService interface {
	ListNotifications(db *gorm.DB, userID string, unreadOnly bool, limit, offset int) (*dto.NotificationListResponse, error)
	MarkRead(db *gorm.DB, notificationID, userID string) error
	MarkAllRead(db *gorm.DB, userID string) error

	// DeliverPending claims a batch of due outbox rows and pushes them out.
	// Each row is resolved independently: a failed send costs one attempt and
	// either reschedules or lands in terminal failed, it never blocks the rest
	// of the batch. Returns how many rows were delivered.
	DeliverPending(db *gorm.DB, batchSize int) (int, error)
}

type notificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
	publisher        queue.Publisher // nil когда брокер не настроен
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	publisher queue.Publisher,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
		publisher:        publisher,
	}
}

func (s *notificationServiceImpl) ListNotifications(db *gorm.DB, userID string, unreadOnly bool, limit, offset int) (*dto.NotificationListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	notifications, total, err := s.notificationRepo.FindUserNotifications(db, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.UnreadCount(db, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.ToNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationServiceImpl) MarkRead(db *gorm.DB, notificationID, userID string) error {
	return s.notificationRepo.MarkAsRead(db, notificationID, userID)
}

func (s *notificationServiceImpl) MarkAllRead(db *gorm.DB, userID string) error {
	return s.notificationRepo.MarkAllAsRead(db, userID)
}

func (s *notificationServiceImpl) DeliverPending(db *gorm.DB, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 50
	}

	claimed, err := s.notificationRepo.ClaimDue(db, batchSize)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for i := range claimed {
		notification := &claimed[i]

		if err := s.deliverOne(db, notification); err != nil {
			logger.Warn("notification delivery failed",
				"notification_id", notification.ID, "attempt", notification.Attempts, "error", err)
			if markErr := s.notificationRepo.MarkFailedAttempt(db, notification.ID, err.Error()); markErr != nil {
				return delivered, markErr
			}
			continue
		}

		if err := s.notificationRepo.MarkSent(db, notification.ID); err != nil {
			return delivered, err
		}
		delivered++
	}
	return delivered, nil
}

func (s *notificationServiceImpl) deliverOne(db *gorm.DB, notification *models.Notification) error {
	user, err := s.userRepo.FindByID(db, notification.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.emailProvider.Send(&email.Email{
		To:      []string{user.Email},
		Subject: notification.Title,
		Body:    notification.Message,
	}); err != nil {
		return err
	}

	// Брокер - best effort поверх email: событие для внешних консьюмеров.
	if s.publisher != nil {
		if err := s.publisher.Publish(notification.Type, dto.ToNotificationResponse(notification)); err != nil {
			logger.Warn("notification event publish failed", "notification_id", notification.ID, "error", err)
		}
	}
	return nil
}
