package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormNotificationRepository) WithTx(tx any) notification.Repository {
	return &GormNotificationRepository{db: toGorm(tx, r.db)}
}

// FindByID finds a notification by its ID
func (r *GormNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var n notification.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindByVendor lists a vendor's notifications, most recent first
func (r *GormNotificationRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]notification.Notification, error) {
	var ns []notification.Notification
	query := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

// CountUnread counts a vendor's unread notifications
func (r *GormNotificationRepository) CountUnread(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("vendor_id = ? AND is_read = ?", vendorID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists a single notification
func (r *GormNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// CreateBatch persists many notifications at once
func (r *GormNotificationRepository) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(ns, 100).Error
}

// Save updates an existing notification
func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

// MarkAllRead flips the read flag on every unread notification owned by the vendor
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("vendor_id = ? AND is_read = ?", vendorID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// FindRecent lists the most recent notifications across all vendors
func (r *GormNotificationRepository) FindRecent(ctx context.Context, limit int) ([]notification.Notification, error) {
	var ns []notification.Notification
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

// DeleteByVendor removes every notification owned by the vendor
func (r *GormNotificationRepository) DeleteByVendor(ctx context.Context, vendorID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Delete(&notification.Notification{}).Error
}

// CountByVendor counts all notifications owned by the vendor
func (r *GormNotificationRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ notification.Repository = (*GormNotificationRepository)(nil)

// GormAdminNotificationRepository implements notification.AdminRepository using GORM
type GormAdminNotificationRepository struct {
	db *gorm.DB
}

// NewGormAdminNotificationRepository creates a new GormAdminNotificationRepository
func NewGormAdminNotificationRepository(db *gorm.DB) *GormAdminNotificationRepository {
	return &GormAdminNotificationRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormAdminNotificationRepository) WithTx(tx any) notification.AdminRepository {
	return &GormAdminNotificationRepository{db: toGorm(tx, r.db)}
}

// FindByID finds an admin notification by its ID
func (r *GormAdminNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.AdminNotification, error) {
	var n notification.AdminNotification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindAll lists admin notifications, most recent first
func (r *GormAdminNotificationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]notification.AdminNotification, error) {
	var ns []notification.AdminNotification
	query := r.db.WithContext(ctx).
		Model(&notification.AdminNotification{}).
		Order("created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

// CountUnread counts unread admin notifications
func (r *GormAdminNotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&notification.AdminNotification{}).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists an admin notification
func (r *GormAdminNotificationRepository) Create(ctx context.Context, n *notification.AdminNotification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// Save updates an existing admin notification
func (r *GormAdminNotificationRepository) Save(ctx context.Context, n *notification.AdminNotification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

// MarkAllRead flips the read flag on every unread admin notification
func (r *GormAdminNotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&notification.AdminNotification{}).
		Where("is_read = ?", false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

var _ notification.AdminRepository = (*GormAdminNotificationRepository)(nil)
