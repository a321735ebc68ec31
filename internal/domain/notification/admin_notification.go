package notification

import (
	"time"

	"gorm.io/datatypes"

	"github.com/greenhub/backend/internal/domain/shared"
)

// AdminType classifies admin-facing alerts
type AdminType string

const (
	AdminTypeNewVendor  AdminType = "NEW_VENDOR"
	AdminTypeNewProduct AdminType = "NEW_PRODUCT"
	AdminTypeNewOrder   AdminType = "NEW_ORDER"
)

// AdminNotification is an alert addressed to the administrator dashboard.
// Unlike Notification it is not owned by any vendor.
type AdminNotification struct {
	shared.BaseEntity
	Type    AdminType         `gorm:"type:varchar(20);not null"`
	Title   string            `gorm:"type:varchar(200);not null"`
	Message string            `gorm:"type:text;not null"`
	IsRead  bool              `gorm:"not null;default:false"`
	Payload datatypes.JSONMap `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (AdminNotification) TableName() string {
	return "admin_notifications"
}

// NewAdmin creates an admin-facing alert
func NewAdmin(typ AdminType, title, message string, payload map[string]any) (*AdminNotification, error) {
	switch typ {
	case AdminTypeNewVendor, AdminTypeNewProduct, AdminTypeNewOrder:
	default:
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid admin notification type")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Notification message cannot be empty")
	}

	return &AdminNotification{
		BaseEntity: shared.NewBaseEntity(),
		Type:       typ,
		Title:      title,
		Message:    message,
		IsRead:     false,
		Payload:    datatypes.JSONMap(payload),
	}, nil
}

// MarkRead flips the read flag
func (n *AdminNotification) MarkRead() {
	if n.IsRead {
		return
	}
	n.IsRead = true
	n.UpdatedAt = time.Now()
}
