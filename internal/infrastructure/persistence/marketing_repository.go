package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/greenhub/backend/internal/domain/marketing"
	"github.com/greenhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBannerRepository implements marketing.BannerRepository using GORM
type GormBannerRepository struct {
	db *gorm.DB
}

// NewGormBannerRepository creates a new GormBannerRepository
func NewGormBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormBannerRepository) WithTx(tx any) marketing.BannerRepository {
	return &GormBannerRepository{db: toGorm(tx, r.db)}
}

// FindByID finds a banner by its ID
func (r *GormBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Banner, error) {
	var b marketing.Banner
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindActive lists active banners, newest first
func (r *GormBannerRepository) FindActive(ctx context.Context) ([]marketing.Banner, error) {
	var banners []marketing.Banner
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// FindAll lists all banners, newest first
func (r *GormBannerRepository) FindAll(ctx context.Context) ([]marketing.Banner, error) {
	var banners []marketing.Banner
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// Save creates or updates a banner
func (r *GormBannerRepository) Save(ctx context.Context, b *marketing.Banner) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Delete removes a banner
func (r *GormBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&marketing.Banner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ marketing.BannerRepository = (*GormBannerRepository)(nil)

// GormOfferRepository implements marketing.OfferRepository using GORM
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GormOfferRepository
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormOfferRepository) WithTx(tx any) marketing.OfferRepository {
	return &GormOfferRepository{db: toGorm(tx, r.db)}
}

// FindByID finds an offer by its ID
func (r *GormOfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Offer, error) {
	var o marketing.Offer
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByCoupon finds an offer by coupon code
func (r *GormOfferRepository) FindByCoupon(ctx context.Context, code string) (*marketing.Offer, error) {
	var o marketing.Offer
	if err := r.db.WithContext(ctx).Where("coupon_code = ?", code).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindActive lists active offers, newest first
func (r *GormOfferRepository) FindActive(ctx context.Context) ([]marketing.Offer, error) {
	var offers []marketing.Offer
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// FindAll lists all offers, newest first
func (r *GormOfferRepository) FindAll(ctx context.Context) ([]marketing.Offer, error) {
	var offers []marketing.Offer
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// Save creates or updates an offer
func (r *GormOfferRepository) Save(ctx context.Context, o *marketing.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// Delete removes an offer
func (r *GormOfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&marketing.Offer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ marketing.OfferRepository = (*GormOfferRepository)(nil)
