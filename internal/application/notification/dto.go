package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/greenhub/backend/internal/domain/notification"
)

// SendNotificationRequest targets a single vendor
type SendNotificationRequest struct {
	VendorID uuid.UUID      `json:"vendor_id" binding:"required"`
	Type     string         `json:"type" binding:"required,oneof=SYSTEM MESSAGE BEST_SELLER PROMOTION"`
	Title    string         `json:"title" binding:"required,max=200"`
	Message  string         `json:"message" binding:"required"`
	Payload  map[string]any `json:"payload"`
}

// BroadcastRequest fans a notification out to every approved vendor
type BroadcastRequest struct {
	Type    string         `json:"type" binding:"required,oneof=SYSTEM MESSAGE BEST_SELLER PROMOTION"`
	Title   string         `json:"title" binding:"required,max=200"`
	Message string         `json:"message" binding:"required"`
	Payload map[string]any `json:"payload"`
}

// NotificationResponse is the API representation of a vendor notification
type NotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	VendorID  uuid.UUID      `json:"vendor_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	IsRead    bool           `json:"is_read"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// AdminNotificationResponse is the API representation of an admin alert
type AdminNotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	IsRead    bool           `json:"is_read"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// BroadcastResult reports how many vendors a broadcast reached
type BroadcastResult struct {
	Recipients int `json:"recipients"`
}

// UnreadCountResponse carries a vendor's unread counter
type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// MarkReadResult reports how many notifications were flipped to read
type MarkReadResult struct {
	Updated int64 `json:"updated"`
}

// ToNotificationResponse maps a domain notification
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		VendorID:  n.VendorID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		Payload:   n.Payload,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationResponses maps a slice of domain notifications
func ToNotificationResponses(ns []notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(ns))
	for i := range ns {
		out[i] = ToNotificationResponse(&ns[i])
	}
	return out
}

// ToAdminNotificationResponse maps a domain admin alert
func ToAdminNotificationResponse(n *notification.AdminNotification) AdminNotificationResponse {
	return AdminNotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		Payload:   n.Payload,
		CreatedAt: n.CreatedAt,
	}
}

// ToAdminNotificationResponses maps a slice of domain admin alerts
func ToAdminNotificationResponses(ns []notification.AdminNotification) []AdminNotificationResponse {
	out := make([]AdminNotificationResponse, len(ns))
	for i := range ns {
		out[i] = ToAdminNotificationResponse(&ns[i])
	}
	return out
}
