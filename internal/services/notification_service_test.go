package services

import (
	"errors"
	"testing"

	"brandlink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationFixture() (*fakeNotificationRepo, *fakeUserRepo, *fakeEmailProvider, *fakePublisher, NotificationService) {
	notificationRepo := &fakeNotificationRepo{}
	userRepo := newFakeUserRepo()
	emailProvider := &fakeEmailProvider{}
	publisher := &fakePublisher{}
	service := NewNotificationService(notificationRepo, userRepo, emailProvider, publisher)
	return notificationRepo, userRepo, emailProvider, publisher, service
}

func TestDeliverPendingSendsAndMarksSent(t *testing.T) {
	notificationRepo, userRepo, emailProvider, publisher, service := newNotificationFixture()
	user := userRepo.put(&models.User{Email: "creator@example.com"})
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{
		UserID:  user.ID,
		Type:    NotificationCampaignLaunched,
		Title:   "Campaign is live",
		Message: "Your campaign is now live.",
		Status:  models.NotificationStatusPending,
	}))

	delivered, err := service.DeliverPending(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)

	assert.Equal(t, models.NotificationStatusSent, notificationRepo.rows[0].Status)
	require.Len(t, emailProvider.sent, 1)
	assert.Equal(t, []string{"creator@example.com"}, emailProvider.sent[0].To)
	assert.Equal(t, "Campaign is live", emailProvider.sent[0].Subject)
	assert.Equal(t, []string{NotificationCampaignLaunched}, publisher.events)
}

func TestDeliverPendingRetriesThenFails(t *testing.T) {
	notificationRepo, userRepo, emailProvider, _, service := newNotificationFixture()
	user := userRepo.put(&models.User{Email: "creator@example.com"})
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{
		UserID: user.ID,
		Type:   NotificationContentReviewed,
		Title:  "Reviewed",
		Status: models.NotificationStatusPending,
	}))
	emailProvider.failWith = errors.New("smtp unavailable")

	// first two failures put the row back into pending
	for attempt := 1; attempt <= 2; attempt++ {
		delivered, err := service.DeliverPending(nil, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, delivered)
		assert.Equal(t, models.NotificationStatusPending, notificationRepo.rows[0].Status)
		assert.Equal(t, attempt, notificationRepo.rows[0].Attempts)
	}

	// third failure is terminal
	delivered, err := service.DeliverPending(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, delivered)
	assert.Equal(t, models.NotificationStatusFailed, notificationRepo.rows[0].Status)
	assert.Equal(t, "smtp unavailable", notificationRepo.rows[0].LastError)

	// a failed row is never claimed again
	delivered, err = service.DeliverPending(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, delivered)
	assert.Equal(t, 3, notificationRepo.rows[0].Attempts)
}

func TestDeliverPendingOneBadRowDoesNotBlockBatch(t *testing.T) {
	notificationRepo, userRepo, emailProvider, _, service := newNotificationFixture()
	user := userRepo.put(&models.User{Email: "creator@example.com"})

	// row for a deleted user fails, the valid one still goes out
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{
		UserID: "gone",
		Type:   NotificationContentReviewed,
		Title:  "Reviewed",
		Status: models.NotificationStatusPending,
	}))
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{
		UserID: user.ID,
		Type:   NotificationContentReviewed,
		Title:  "Reviewed",
		Status: models.NotificationStatusPending,
	}))

	delivered, err := service.DeliverPending(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
	assert.Equal(t, models.NotificationStatusPending, notificationRepo.rows[0].Status)
	assert.Equal(t, models.NotificationStatusSent, notificationRepo.rows[1].Status)
	assert.Len(t, emailProvider.sent, 1)
}

func TestDeliverPendingPublisherFailureIsBestEffort(t *testing.T) {
	notificationRepo, userRepo, _, publisher, service := newNotificationFixture()
	user := userRepo.put(&models.User{Email: "creator@example.com"})
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{
		UserID: user.ID,
		Type:   NotificationContentReviewed,
		Title:  "Reviewed",
		Status: models.NotificationStatusPending,
	}))
	publisher.failWith = errors.New("broker down")

	delivered, err := service.DeliverPending(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
	assert.Equal(t, models.NotificationStatusSent, notificationRepo.rows[0].Status)
}

func TestDeliverPendingWithoutPublisher(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	userRepo := newFakeUserRepo()
	user := userRepo.put(&models.User{Email: "creator@example.com"})
	service := NewNotificationService(notificationRepo, userRepo, &fakeEmailProvider{}, nil)

	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{
		UserID: user.ID,
		Type:   NotificationContentReviewed,
		Title:  "Reviewed",
		Status: models.NotificationStatusPending,
	}))

	delivered, err := service.DeliverPending(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
}

func TestListNotificationsCountsUnread(t *testing.T) {
	notificationRepo, userRepo, _, _, service := newNotificationFixture()
	user := userRepo.put(&models.User{Email: "creator@example.com"})
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{UserID: user.ID, Title: "a", Status: models.NotificationStatusSent}))
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{UserID: user.ID, Title: "b", Status: models.NotificationStatusSent, IsRead: true}))
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{UserID: "other", Title: "c", Status: models.NotificationStatusSent}))

	list, err := service.ListNotifications(nil, user.ID, false, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, int64(1), list.UnreadCount)
	assert.Len(t, list.Notifications, 2)

	unreadOnly, err := service.ListNotifications(nil, user.ID, true, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unreadOnly.Total)
}

func TestMarkAllRead(t *testing.T) {
	notificationRepo, userRepo, _, _, service := newNotificationFixture()
	user := userRepo.put(&models.User{Email: "creator@example.com"})
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{UserID: user.ID, Title: "a", Status: models.NotificationStatusSent}))
	require.NoError(t, notificationRepo.CreateNotification(nil, &models.Notification{UserID: user.ID, Title: "b", Status: models.NotificationStatusSent}))

	require.NoError(t, service.MarkAllRead(nil, user.ID))

	unread, err := notificationRepo.UnreadCount(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}
