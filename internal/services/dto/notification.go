package dto

import (
	"encoding/json"
	"time"

	"brandlink_backend/internal/models"
)

type NotificationResponse struct {
	ID        string                    `json:"id"`
	Type      string                    `json:"type"`
	Title     string                    `json:"title"`
	Message   string                    `json:"message,omitempty"`
	Data      map[string]interface{}    `json:"data,omitempty"`
	Status    models.NotificationStatus `json:"status"`
	IsRead    bool                      `json:"is_read"`
	ReadAt    *time.Time                `json:"read_at,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

func ToNotificationResponse(n *models.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Status:    n.Status,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(n.Data, &data); err == nil {
			resp.Data = data
		}
	}
	return resp
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	UnreadCount   int64                  `json:"unread_count"`
}
