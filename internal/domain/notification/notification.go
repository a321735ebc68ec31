package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/greenhub/backend/internal/domain/shared"
)

// Type classifies vendor-facing notifications
type Type string

const (
	TypeSystem     Type = "SYSTEM"
	TypeMessage    Type = "MESSAGE"
	TypeBestSeller Type = "BEST_SELLER"
	TypePromotion  Type = "PROMOTION"
)

// Notification is a message addressed to a single vendor. Rows are owned by
// the vendor and removed when the vendor is deleted.
type Notification struct {
	shared.BaseEntity
	VendorID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Type     Type              `gorm:"type:varchar(20);not null;default:'SYSTEM'"`
	Title    string            `gorm:"type:varchar(200);not null"`
	Message  string            `gorm:"type:text;not null"`
	IsRead   bool              `gorm:"not null;default:false"`
	Payload  datatypes.JSONMap `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// New creates a notification for one vendor
func New(vendorID uuid.UUID, typ Type, title, message string, payload map[string]any) (*Notification, error) {
	if err := validateType(typ); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Notification message cannot be empty")
	}

	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		VendorID:   vendorID,
		Type:       typ,
		Title:      title,
		Message:    message,
		IsRead:     false,
		Payload:    datatypes.JSONMap(payload),
	}, nil
}

// MarkRead flips the read flag. The flag is never reset to false.
func (n *Notification) MarkRead() {
	if n.IsRead {
		return
	}
	n.IsRead = true
	n.UpdatedAt = time.Now()
}

func validateType(t Type) error {
	switch t {
	case TypeSystem, TypeMessage, TypeBestSeller, TypePromotion:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Invalid notification type")
	}
}
