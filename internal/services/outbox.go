package services

import (
	"encoding/json"
	"time"

	"brandlink_backend/internal/models"

	"gorm.io/datatypes"
)

// Notification types emitted by the services below. The dispatcher worker only
// delivers rows; the meaning of a type lives with the consumers.
const (
	NotificationCampaignApproved     = "campaign_approved"
	NotificationCampaignRejected     = "campaign_rejected"
	NotificationCampaignNeedsChanges = "campaign_needs_changes"
	NotificationCampaignLaunched     = "campaign_launched"
	NotificationCreatorInvited       = "creator_invited"
	NotificationInvitationAnswered   = "invitation_answered"
	NotificationContentSubmitted     = "content_submitted"
	NotificationContentReviewed      = "content_reviewed"
)

// outboxRow builds a pending notification scheduled for immediate delivery.
// Callers insert it inside the same transaction as the state change it
// announces, so a committed change always has its notification row.
func outboxRow(userID, notificationType, title, message string, data map[string]interface{}, priority int) models.Notification {
	row := models.Notification{
		UserID:       userID,
		Type:         notificationType,
		Title:        title,
		Message:      message,
		Status:       models.NotificationStatusPending,
		Priority:     priority,
		ScheduledFor: time.Now(),
	}
	if len(data) > 0 {
		if payload, err := json.Marshal(data); err == nil {
			row.Data = datatypes.JSON(payload)
		}
	}
	return row
}
