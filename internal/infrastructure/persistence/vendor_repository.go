package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/shared"
	"github.com/greenhub/backend/internal/domain/vendor"
	"gorm.io/gorm"
)

// GormVendorRepository implements vendor.Repository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormVendorRepository) WithTx(tx any) vendor.Repository {
	return &GormVendorRepository{db: toGorm(tx, r.db)}
}

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	var v vendor.Vendor
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// FindByEmail finds a vendor by contact email
func (r *GormVendorRepository) FindByEmail(ctx context.Context, email string) (*vendor.Vendor, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var v vendor.Vendor
	if err := r.db.WithContext(ctx).
		Where("contact_email = ?", strings.ToLower(email)).
		First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// FindByAuthUserID finds a vendor by its linked external identity id
func (r *GormVendorRepository) FindByAuthUserID(ctx context.Context, authUserID uuid.UUID) (*vendor.Vendor, error) {
	var v vendor.Vendor
	if err := r.db.WithContext(ctx).
		Where("auth_user_id = ?", authUserID).
		First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// FindAll finds all vendors matching the filter
func (r *GormVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]vendor.Vendor, error) {
	var vendors []vendor.Vendor
	query := applyFilter(r.db.WithContext(ctx).Model(&vendor.Vendor{}), filter)
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(business_name) LIKE ? OR contact_email LIKE ?", pattern, pattern)
	}
	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// FindByStatus finds vendors in the given lifecycle state
func (r *GormVendorRepository) FindByStatus(ctx context.Context, status vendor.Status, filter shared.Filter) ([]vendor.Vendor, error) {
	var vendors []vendor.Vendor
	query := applyFilter(
		r.db.WithContext(ctx).Model(&vendor.Vendor{}).Where("status = ?", status),
		filter,
	)
	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// FindApproved returns every currently approved vendor
func (r *GormVendorRepository) FindApproved(ctx context.Context) ([]vendor.Vendor, error) {
	var vendors []vendor.Vendor
	if err := r.db.WithContext(ctx).
		Where("status = ?", vendor.StatusApproved).
		Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// ExistsByEmail checks whether a vendor with the given email exists
func (r *GormVendorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&vendor.Vendor{}).
		Where("contact_email = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a vendor
func (r *GormVendorRepository) Save(ctx context.Context, v *vendor.Vendor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// ApprovePending flips a PENDING vendor to APPROVED with a single conditional
// update. The status guard in the WHERE clause makes concurrent approvals
// race-safe: only one statement can see the PENDING row.
func (r *GormVendorRepository) ApprovePending(ctx context.Context, id, authUserID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&vendor.Vendor{}).
		Where("id = ? AND status = ?", id, vendor.StatusPending).
		Updates(map[string]any{
			"status":       vendor.StatusApproved,
			"is_verified":  true,
			"auth_user_id": authUserID,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a vendor and its notifications in one transaction
func (r *GormVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_id = ?", id).Delete(&notification.Notification{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&vendor.Vendor{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts vendors matching the filter
func (r *GormVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&vendor.Vendor{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(business_name) LIKE ? OR contact_email LIKE ?", pattern, pattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts vendors in the given lifecycle state
func (r *GormVendorRepository) CountByStatus(ctx context.Context, status vendor.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&vendor.Vendor{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ vendor.Repository = (*GormVendorRepository)(nil)
