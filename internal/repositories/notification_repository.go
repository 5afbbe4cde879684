package repositories

import (
	"brandlink_backend/internal/models"

	"gorm.io/gorm"
)

const maxDeliveryAttempts = 3

type NotificationRepository interface {
	CreateNotification(db *gorm.DB, notification *models.Notification) error
	CreateNotifications(db *gorm.DB, notifications []models.Notification) error

	// ClaimDue атомарно захватывает партию pending-строк, готовых к отправке.
	// FOR UPDATE SKIP LOCKED - конкурирующие воркеры не блокируют друг друга
	// и не забирают одну и ту же строку дважды.
	ClaimDue(db *gorm.DB, limit int) ([]models.Notification, error)
	MarkSent(db *gorm.DB, id string) error
	// MarkFailedAttempt возвращает строку в pending до исчерпания попыток,
	// после третьей неудачи переводит в терминальный failed.
	MarkFailedAttempt(db *gorm.DB, id string, deliveryErr string) error

	FindUserNotifications(db *gorm.DB, userID string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	MarkAsRead(db *gorm.DB, id, userID string) error
	MarkAllAsRead(db *gorm.DB, userID string) error
	UnreadCount(db *gorm.DB, userID string) (int64, error)
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) CreateNotification(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) CreateNotifications(db *gorm.DB, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return db.Create(&notifications).Error
}

func (r *NotificationRepositoryImpl) ClaimDue(db *gorm.DB, limit int) ([]models.Notification, error) {
	var claimed []models.Notification
	err := db.Raw(`
		UPDATE notifications
		SET status = ?, attempts = attempts + 1, updated_at = NOW()
		WHERE id IN (
			SELECT id FROM notifications
			WHERE status = ? AND scheduled_for <= NOW()
			ORDER BY priority DESC, scheduled_for ASC
			LIMIT ?
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`,
		models.NotificationStatusProcessing, models.NotificationStatusPending, limit,
	).Scan(&claimed).Error
	return claimed, err
}

func (r *NotificationRepositoryImpl) MarkSent(db *gorm.DB, id string) error {
	return db.Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  models.NotificationStatusSent,
			"sent_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

func (r *NotificationRepositoryImpl) MarkFailedAttempt(db *gorm.DB, id string, deliveryErr string) error {
	return db.Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": gorm.Expr(
				"CASE WHEN attempts >= ? THEN ? ELSE ? END",
				maxDeliveryAttempts, models.NotificationStatusFailed, models.NotificationStatusPending,
			),
			"last_error": deliveryErr,
		}).Error
}

func (r *NotificationRepositoryImpl) FindUserNotifications(db *gorm.DB, userID string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	query := db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(db *gorm.DB, id, userID string) error {
	return db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(db *gorm.DB, userID string) error {
	return db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

func (r *NotificationRepositoryImpl) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
