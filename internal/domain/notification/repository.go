package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenhub/backend/internal/domain/shared"
)

// Repository defines the interface for vendor notification persistence
type Repository interface {
	// WithTx returns a repository bound to the given transaction handle
	WithTx(tx any) Repository

	// FindByID finds a notification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)

	// FindByVendor lists a vendor's notifications, most recent first
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Notification, error)

	// CountUnread counts a vendor's unread notifications
	CountUnread(ctx context.Context, vendorID uuid.UUID) (int64, error)

	// Create persists a single notification
	Create(ctx context.Context, n *Notification) error

	// CreateBatch persists many notifications at once (broadcast fan-out)
	CreateBatch(ctx context.Context, ns []*Notification) error

	// Save updates an existing notification
	Save(ctx context.Context, n *Notification) error

	// MarkAllRead flips the read flag on every unread notification owned by
	// the vendor and returns the number of rows changed
	MarkAllRead(ctx context.Context, vendorID uuid.UUID) (int64, error)

	// FindRecent lists the most recent notifications across all vendors
	FindRecent(ctx context.Context, limit int) ([]Notification, error)

	// DeleteByVendor removes every notification owned by the vendor
	DeleteByVendor(ctx context.Context, vendorID uuid.UUID) error

	// CountByVendor counts all notifications owned by the vendor
	CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)
}

// AdminRepository defines the interface for admin notification persistence
type AdminRepository interface {
	// WithTx returns a repository bound to the given transaction handle
	WithTx(tx any) AdminRepository

	// FindByID finds an admin notification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*AdminNotification, error)

	// FindAll lists admin notifications, most recent first
	FindAll(ctx context.Context, filter shared.Filter) ([]AdminNotification, error)

	// CountUnread counts unread admin notifications
	CountUnread(ctx context.Context) (int64, error)

	// Create persists an admin notification
	Create(ctx context.Context, n *AdminNotification) error

	// Save updates an existing admin notification
	Save(ctx context.Context, n *AdminNotification) error

	// MarkAllRead flips the read flag on every unread admin notification
	MarkAllRead(ctx context.Context) (int64, error)
}
