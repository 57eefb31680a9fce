package domain

import "time"

// NotificationPriority orders how urgently a notification should surface.
type NotificationPriority string

const (
	PriorityLow      NotificationPriority = "LOW"
	PriorityMedium   NotificationPriority = "MEDIUM"
	PriorityHigh     NotificationPriority = "HIGH"
	PriorityCritical NotificationPriority = "CRITICAL"
)

// Notification types emitted by the scanner and CRUD actions.
const (
	NotifPolicyExpiryWarning  = "POLICY_EXPIRY_WARNING"
	NotifPolicyExpired        = "POLICY_EXPIRED"
	NotifEndorsementPending   = "ENDORSEMENT_PENDING"
	NotifEndorsementEffective = "ENDORSEMENT_EFFECTIVE"
	NotifPolicyCreated        = "POLICY_CREATED"
	NotifPolicyUpdated        = "POLICY_UPDATED"
	NotifPolicyDeleted        = "POLICY_DELETED"
)

// Notification is a user-facing alert. Created by the expiry scanner or by
// CRUD actions, marked read by the user, pruned by the cleanup pass.
type Notification struct {
	NotificationID string               `json:"notificationID"`
	UserID         string               `json:"userID"`
	Type           string               `json:"type"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	Priority       NotificationPriority `json:"priority"`
	ReferenceType  string               `json:"referenceType,omitempty"`
	ReferenceID    string               `json:"referenceID,omitempty"`
	Data           map[string]any       `json:"data,omitempty"`
	ReadAt         *time.Time           `json:"readAt,omitempty"`
	ExpiresAt      *time.Time           `json:"expiresAt,omitempty"`
	IsActive       bool                 `json:"isActive"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// Read reports whether the notification has been read.
func (n Notification) Read() bool {
	return n.ReadAt != nil
}

// NotificationStats summarises a user's notification inbox.
type NotificationStats struct {
	Total      int            `json:"total"`
	Unread     int            `json:"unread"`
	ByPriority map[string]int `json:"byPriority"`
}
