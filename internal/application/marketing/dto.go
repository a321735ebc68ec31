package marketing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenhub/backend/internal/domain/marketing"
)

// CreateBannerRequest creates a homepage banner
type CreateBannerRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Subtitle string `json:"subtitle" binding:"max=300"`
	ImageURL string `json:"image_url" binding:"required,max=500"`
	LinkURL  string `json:"link_url" binding:"max=500"`
}

// CreateOfferRequest creates a discount campaign
type CreateOfferRequest struct {
	Title           string          `json:"title" binding:"required,max=200"`
	Description     string          `json:"description"`
	DiscountPercent decimal.Decimal `json:"discount_percent" binding:"required"`
	CouponCode      string          `json:"coupon_code" binding:"max=50"`
	ValidUntil      *time.Time      `json:"valid_until"`
}

// BannerResponse is the API representation of a banner
type BannerResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBannerResult is a created banner plus the size of its promotion
// fan-out
type CreateBannerResult struct {
	Banner   BannerResponse `json:"banner"`
	Notified int            `json:"notified"`
}

// OfferResponse is the API representation of an offer
type OfferResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	ValidUntil      *time.Time      `json:"valid_until,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToBannerResponse maps a domain banner
func ToBannerResponse(b *marketing.Banner) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		Subtitle:  b.Subtitle,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

// ToBannerResponses maps a slice of domain banners
func ToBannerResponses(banners []marketing.Banner) []BannerResponse {
	out := make([]BannerResponse, len(banners))
	for i := range banners {
		out[i] = ToBannerResponse(&banners[i])
	}
	return out
}

// ToOfferResponse maps a domain offer
func ToOfferResponse(o *marketing.Offer) OfferResponse {
	return OfferResponse{
		ID:              o.ID,
		Title:           o.Title,
		Description:     o.Description,
		DiscountPercent: o.DiscountPercent,
		CouponCode:      o.CouponCode,
		ValidUntil:      o.ValidUntil,
		IsActive:        o.IsActive,
		CreatedAt:       o.CreatedAt,
	}
}

// ToOfferResponses maps a slice of domain offers
func ToOfferResponses(offers []marketing.Offer) []OfferResponse {
	out := make([]OfferResponse, len(offers))
	for i := range offers {
		out[i] = ToOfferResponse(&offers[i])
	}
	return out
}
