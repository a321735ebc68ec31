package marketing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenhub/backend/internal/domain/shared"
)

// Offer is a storewide discount campaign
type Offer struct {
	shared.BaseEntity
	Title           string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CouponCode      string          `gorm:"type:varchar(50);uniqueIndex"`
	ValidUntil      *time.Time
	IsActive        bool `gorm:"not null;default:true"`
}

func (Offer) TableName() string {
	return "offers"
}

// NewOffer creates an active offer
func NewOffer(title, description, couponCode string, discountPercent decimal.Decimal, validUntil *time.Time) (*Offer, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Offer title cannot be empty")
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount must be between 0 and 100 percent")
	}
	return &Offer{
		BaseEntity:      shared.NewBaseEntity(),
		Title:           title,
		Description:     description,
		DiscountPercent: discountPercent,
		CouponCode:      couponCode,
		ValidUntil:      validUntil,
		IsActive:        true,
	}, nil
}

// Expired reports whether the offer's validity window has passed
func (o *Offer) Expired(now time.Time) bool {
	return o.ValidUntil != nil && now.After(*o.ValidUntil)
}

// Deactivate retires the offer
func (o *Offer) Deactivate() {
	o.IsActive = false
	o.UpdatedAt = time.Now()
}
