package dto

import (
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// ListNotificationsParams holds filters for listing a user's notifications.
type ListNotificationsParams struct {
	UnreadOnly bool `form:"unreadOnly"`
	Limit      int  `form:"limit"`
	Offset     int  `form:"offset"`
}

// NotificationResponse defines the data returned for one notification.
type NotificationResponse struct {
	NotificationID string         `json:"notificationID"`
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Priority       string         `json:"priority"`
	ReferenceType  string         `json:"referenceType,omitempty"`
	ReferenceID    string         `json:"referenceID,omitempty"`
	Data           map[string]any `json:"data,omitempty"`
	ReadAt         *time.Time     `json:"readAt,omitempty"`
	ExpiresAt      *time.Time     `json:"expiresAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// ListNotificationsResponse wraps a page of notifications with the unread count.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

// MarkAllReadResponse reports how many notifications were marked read.
type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		Priority:       string(n.Priority),
		ReferenceType:  n.ReferenceType,
		ReferenceID:    n.ReferenceID,
		Data:           n.Data,
		ReadAt:         n.ReadAt,
		ExpiresAt:      n.ExpiresAt,
		CreatedAt:      n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of domain.Notification to []NotificationResponse.
func ToNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = ToNotificationResponse(&notifications[i])
	}
	return responses
}
