package marketing

import (
	"context"

	"github.com/google/uuid"
)

// BannerRepository defines the interface for banner persistence
type BannerRepository interface {
	WithTx(tx any) BannerRepository
	FindByID(ctx context.Context, id uuid.UUID) (*Banner, error)
	FindActive(ctx context.Context) ([]Banner, error)
	FindAll(ctx context.Context) ([]Banner, error)
	Save(ctx context.Context, b *Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OfferRepository defines the interface for offer persistence
type OfferRepository interface {
	WithTx(tx any) OfferRepository
	FindByID(ctx context.Context, id uuid.UUID) (*Offer, error)
	FindByCoupon(ctx context.Context, code string) (*Offer, error)
	FindActive(ctx context.Context) ([]Offer, error)
	FindAll(ctx context.Context) ([]Offer, error)
	Save(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
